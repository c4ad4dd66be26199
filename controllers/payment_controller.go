package controllers

import (
	"github.com/Adarsh-736/CurioKart/utils"
	"github.com/gin-gonic/gin"
)

// PaymentStatus looks up an order with the payment gateway and returns its
// current status alongside the submitted order id.
func (h *Handler) PaymentStatus(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	orderID := c.Query("order_id")
	if orderID == "" {
		utils.LogError("Payment status failed - Missing order_id")
		utils.BadRequest(c, "order_id is required", nil)
		return
	}

	order, err := h.Payments.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		utils.LogError("Payment status lookup failed for %s: %v", orderID, err)
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo("Payment status for %s: %s", orderID, order.OrderStatus)
	utils.Success(c, "Payment status retrieved", gin.H{
		"order_id":     orderID,
		"order_status": order.OrderStatus,
	})
}
