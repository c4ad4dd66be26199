package controllers

import (
	"context"
	"time"

	"github.com/Adarsh-736/CurioKart/config"
	"github.com/Adarsh-736/CurioKart/models"
	"github.com/Adarsh-736/CurioKart/utils"
	"github.com/gin-gonic/gin"
)

// IdentityProvider is the slice of the external auth provider the
// handlers use
type IdentityProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

// ProfileStore is the slice of the external document store the handlers use
type ProfileStore interface {
	CreateProfile(ctx context.Context, profile *models.Profile) error
	GetProfile(ctx context.Context, uid string) (*models.Profile, error)
	TouchLastLogin(ctx context.Context, uid string, at time.Time) error
}

// PaymentGateway is the slice of the payment provider the handlers use
type PaymentGateway interface {
	CreateOrder(ctx context.Context, payload *models.OrderPayload) (string, error)
	GetOrder(ctx context.Context, orderID string) (*models.OrderResult, error)
}

// Handler carries the long-lived adapter clients and configuration.
// Handlers hold no other state; every request is independent.
type Handler struct {
	Identity IdentityProvider
	Profiles ProfileStore
	Payments PaymentGateway
	Config   *config.Config
}

// NewHandler creates a Handler with its adapter dependencies
func NewHandler(identity IdentityProvider, profiles ProfileStore, payments PaymentGateway, cfg *config.Config) *Handler {
	return &Handler{
		Identity: identity,
		Profiles: profiles,
		Payments: payments,
		Config:   cfg,
	}
}

// ready short-circuits with a 500 when a backing client failed to
// initialize, before any dependency is touched
func (h *Handler) ready(c *gin.Context) bool {
	if h.Identity == nil || h.Profiles == nil || h.Payments == nil || h.Config == nil {
		utils.LogError("Handler invoked with uninitialized backing clients")
		utils.InternalServerError(c, "Service not initialized", nil)
		return false
	}
	return true
}
