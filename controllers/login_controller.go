package controllers

import (
	"time"

	"github.com/Adarsh-736/CurioKart/utils"
	"github.com/gin-gonic/gin"
)

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials with the identity provider, refreshes the
// profile's lastLogin timestamp, and issues a fresh token. Login never
// creates a profile; a missing document despite a valid identity is a 404.
func (h *Handler) Login(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Login failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	req.Email = utils.SanitizeString(req.Email)
	if req.Email == "" || req.Password == "" {
		utils.LogError("Login failed - Missing email or password")
		utils.BadRequest(c, "Email and password are required", nil)
		return
	}

	user, err := h.Identity.VerifyPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.LogError("Login failed for %s: %v", req.Email, err)
		utils.HandleError(c, err)
		return
	}

	profile, err := h.Profiles.GetProfile(c.Request.Context(), user.UID)
	if err != nil {
		if utils.IsNotFoundError(err) {
			// Identity exists but the signup-time document is gone
			utils.LogError("Login failed - Profile missing for identity %s", user.UID)
			utils.NotFound(c, "User data not found")
			return
		}
		utils.LogError("Login failed - Could not fetch profile for %s: %v", user.UID, err)
		utils.HandleError(c, err)
		return
	}

	if err := h.Profiles.TouchLastLogin(c.Request.Context(), user.UID, time.Now()); err != nil {
		utils.LogError("Login failed - Could not update last login for %s: %v", user.UID, err)
		utils.HandleError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.UID, user.Email, h.Config.JWTSecret)
	if err != nil {
		utils.LogError("Login failed - Could not issue token for %s: %v", user.UID, err)
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	utils.LogInfo("User logged in successfully: %s", req.Email)
	utils.Success(c, "Login successful", gin.H{
		"user": gin.H{
			"uid":       user.UID,
			"email":     user.Email,
			"firstName": profile.FirstName,
			"lastName":  profile.LastName,
		},
		"token": token,
	})
}
