// Package gateway submits payment orders to the Cashfree PG REST API.
// Orders are never persisted locally; once submitted, the gateway owns them.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Adarsh-736/CurioKart/models"
	"github.com/Adarsh-736/CurioKart/utils"
)

// Client calls the payment gateway's order API
type Client struct {
	apiURL     string
	appID      string
	secretKey  string
	apiVersion string
	httpClient *http.Client
}

// NewClient creates a payment gateway client. The client-id/secret pair and
// API version ride on every request as headers, per the gateway contract.
func NewClient(apiURL, appID, secretKey, apiVersion string) *Client {
	return &Client{
		apiURL:     apiURL,
		appID:      appID,
		secretKey:  secretKey,
		apiVersion: apiVersion,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreateOrder submits an order payload and returns the gateway-issued
// payment session id. All failure modes surface as GatewayErrors: non-2xx
// statuses are relayed with the gateway's error body, a 2xx response missing
// the session id gets a generic message, and transport failures map to 502.
func (c *Client) CreateOrder(ctx context.Context, payload *models.OrderPayload) (string, error) {
	result, err := c.doJSON(ctx, http.MethodPost, c.apiURL, payload, "Failed to create payment order")
	if err != nil {
		return "", err
	}

	sessionID, _ := result["payment_session_id"].(string)
	if sessionID == "" {
		return "", utils.GatewayError(http.StatusBadGateway, "Could not get payment session ID from gateway", nil)
	}
	return sessionID, nil
}

// GetOrder fetches the current state of an order from the gateway
func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.OrderResult, error) {
	result, err := c.doJSON(ctx, http.MethodGet, c.apiURL+"/"+orderID, nil, "Failed to fetch payment order")
	if err != nil {
		return nil, err
	}

	order := &models.OrderResult{}
	if v, ok := result["order_id"].(string); ok {
		order.OrderID = v
	}
	if v, ok := result["order_status"].(string); ok {
		order.OrderStatus = v
	}
	if v, ok := result["payment_session_id"].(string); ok {
		order.PaymentSessionID = v
	}
	return order, nil
}

func (c *Client) doJSON(ctx context.Context, method, url string, payload interface{}, failMessage string) (map[string]interface{}, error) {
	reqBody := bytes.NewBuffer(nil)
	if payload != nil {
		if err := json.NewEncoder(reqBody).Encode(payload); err != nil {
			return nil, utils.InternalError("Failed to encode order payload", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, utils.InternalError("Failed to build gateway request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-version", c.apiVersion)
	req.Header.Set("x-client-id", c.appID)
	req.Header.Set("x-client-secret", c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, utils.GatewayError(http.StatusBadGateway, "Payment gateway unreachable", err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, utils.GatewayError(http.StatusBadGateway, "Failed to read gateway response", nil)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var details interface{}
		if err := json.Unmarshal(respBody, &details); err != nil {
			details = string(respBody)
		}
		return nil, utils.GatewayError(resp.StatusCode, failMessage, details)
	}

	result := map[string]interface{}{}
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &result); err != nil {
			return nil, utils.GatewayError(http.StatusBadGateway, "Failed to decode gateway response", nil)
		}
	}
	return result, nil
}
