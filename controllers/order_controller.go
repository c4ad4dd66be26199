package controllers

import (
	"fmt"
	"strings"

	"github.com/Adarsh-736/CurioKart/models"
	"github.com/Adarsh-736/CurioKart/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// placeholderPhone stands in for the customer phone the gateway requires;
// phone numbers are not collected at signup.
const placeholderPhone = "9999999999"

// CreateOrderRequest represents the payment order request body
type CreateOrderRequest struct {
	UID    string   `json:"uid"`
	Amount *float64 `json:"amount"`
}

// CreateOrder assembles a payment order for an existing user and forwards
// it to the payment gateway, relaying back the hosted payment session id.
// The order is not recorded locally; the gateway owns it from here on.
func (h *Handler) CreateOrder(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Order creation failed - Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if req.UID == "" || req.Amount == nil {
		utils.LogError("Order creation failed - Missing uid or amount")
		utils.BadRequest(c, "User ID and amount are required", nil)
		return
	}
	if err := utils.ValidateAmount(*req.Amount); err != nil {
		utils.LogError("Order creation failed - Invalid amount %.2f", *req.Amount)
		utils.BadRequest(c, "Invalid amount", err.Error())
		return
	}

	// The profile must exist before anything leaves for the gateway
	profile, err := h.Profiles.GetProfile(c.Request.Context(), req.UID)
	if err != nil {
		utils.LogError("Order creation failed - Profile lookup for %s: %v", req.UID, err)
		utils.HandleError(c, err)
		return
	}

	orderID := "order_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	payload := &models.OrderPayload{
		OrderID:       orderID,
		OrderAmount:   *req.Amount,
		OrderCurrency: "INR",
		CustomerDetails: models.CustomerDetails{
			CustomerID:    req.UID,
			CustomerEmail: profile.Email,
			CustomerPhone: placeholderPhone,
		},
		OrderMeta: models.OrderMeta{
			// {order_id} is a template token the gateway substitutes
			ReturnURL: fmt.Sprintf("%s/payment/status?order_id={order_id}", h.Config.ReturnURLBase),
		},
	}

	sessionID, err := h.Payments.CreateOrder(c.Request.Context(), payload)
	if err != nil {
		utils.LogError("Order creation failed for %s (order %s): %v", req.UID, orderID, err)
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo("Payment order %s created for %s", orderID, req.UID)
	utils.Success(c, "Payment order created successfully", gin.H{
		"payment_session_id": sessionID,
		"order_id":           orderID,
	})
}
