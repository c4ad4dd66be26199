package controllers

import (
	"time"

	"github.com/Adarsh-736/CurioKart/models"
	"github.com/Adarsh-736/CurioKart/utils"
	"github.com/gin-gonic/gin"
)

// SignupRequest represents the signup request body
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Signup handles user registration: creates an identity with the auth
// provider, writes the profile document, and issues a short-lived token.
func (h *Handler) Signup(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Signup failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	req.Email = utils.SanitizeString(req.Email)
	req.FirstName = utils.SanitizeString(req.FirstName)
	req.LastName = utils.SanitizeString(req.LastName)

	var fieldErrors utils.FieldValidationErrors
	for field, value := range map[string]string{
		"email":     req.Email,
		"password":  req.Password,
		"firstName": req.FirstName,
		"lastName":  req.LastName,
	} {
		if value == "" {
			fieldErrors = append(fieldErrors, utils.FieldValidationError{Field: field, Message: "is required"})
		}
	}
	if len(fieldErrors) > 0 {
		utils.LogError("Signup failed - Missing fields: %v", fieldErrors)
		utils.BadRequest(c, "All fields are required", fieldErrors)
		return
	}

	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.LogError("Signup failed - Invalid email format: %s", req.Email)
		utils.BadRequest(c, "Invalid email", msg)
		return
	}
	if valid, msg := utils.ValidateName(req.FirstName); !valid {
		utils.LogError("Signup failed - Invalid first name")
		utils.BadRequest(c, "Invalid first name", msg)
		return
	}
	if valid, msg := utils.ValidateName(req.LastName); !valid {
		utils.LogError("Signup failed - Invalid last name")
		utils.BadRequest(c, "Invalid last name", msg)
		return
	}

	displayName := req.FirstName + " " + req.LastName
	user, err := h.Identity.CreateUser(c.Request.Context(), req.Email, req.Password, displayName)
	if err != nil {
		utils.LogError("Signup failed - Could not create identity for %s: %v", req.Email, err)
		utils.HandleError(c, err)
		return
	}
	utils.LogInfo("Created identity %s for %s", user.UID, req.Email)

	now := time.Now()
	profile := &models.Profile{
		UID:       user.UID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CreatedAt: now,
		LastLogin: now,
	}
	if err := h.Profiles.CreateProfile(c.Request.Context(), profile); err != nil {
		utils.LogError("Signup failed - Could not store profile for %s: %v", user.UID, err)
		utils.HandleError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.UID, req.Email, h.Config.JWTSecret)
	if err != nil {
		utils.LogError("Signup failed - Could not issue token for %s: %v", user.UID, err)
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	utils.LogInfo("User registered successfully: %s", req.Email)
	utils.Created(c, "User created successfully", gin.H{
		"user": gin.H{
			"uid":       user.UID,
			"email":     req.Email,
			"firstName": req.FirstName,
			"lastName":  req.LastName,
		},
		"token": token,
	})
}
