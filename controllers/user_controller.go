package controllers

import (
	"github.com/Adarsh-736/CurioKart/utils"
	"github.com/gin-gonic/gin"
)

// GetUser returns the stored profile document for a user id
func (h *Handler) GetUser(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	uid := c.Param("uid")
	profile, err := h.Profiles.GetProfile(c.Request.Context(), uid)
	if err != nil {
		utils.LogError("Profile lookup failed for %s: %v", uid, err)
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo("Profile retrieved for %s", uid)
	utils.Success(c, "Profile retrieved successfully", gin.H{
		"user": profile,
	})
}
