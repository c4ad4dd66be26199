// Package identity wraps the external auth provider's account API.
// The provider owns credentials; this system never stores passwords.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Adarsh-736/CurioKart/models"
	"github.com/Adarsh-736/CurioKart/utils"
)

// Client calls the identity provider's REST API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an identity provider client. Every call carries an
// explicit timeout so a stalled provider cannot block handlers indefinitely.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// account is the provider's wire representation of an identity
type account struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

func (a *account) toUser() *models.User {
	return &models.User{
		UID:         a.LocalID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
	}
}

// CreateUser registers a new identity with the provider.
// Returns a ConflictError when the email is already registered.
func (c *Client) CreateUser(ctx context.Context, email, password, displayName string) (*models.User, error) {
	body := map[string]string{
		"email":       email,
		"password":    password,
		"displayName": displayName,
	}

	var acct account
	status, err := c.doJSON(ctx, http.MethodPost, "/v1/accounts", body, &acct)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusConflict:
		return nil, utils.ConflictError("Email already exists", nil)
	case status < 200 || status >= 300:
		return nil, utils.InternalError("Failed to create user", fmt.Errorf("identity provider returned status %d", status))
	}

	return acct.toUser(), nil
}

// GetUserByEmail looks up an identity by email address
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	path := "/v1/accounts?email=" + url.QueryEscape(email)

	var acct account
	status, err := c.doJSON(ctx, http.MethodGet, path, nil, &acct)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, utils.NotFoundError("User not found", nil)
	case status < 200 || status >= 300:
		return nil, utils.InternalError("Failed to look up user", fmt.Errorf("identity provider returned status %d", status))
	}

	return acct.toUser(), nil
}

// VerifyPassword checks the credentials with the provider and returns the
// matching identity. Unknown email yields NotFoundError; a wrong password
// yields UnauthorizedError.
func (c *Client) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var acct account
	status, err := c.doJSON(ctx, http.MethodPost, "/v1/accounts:verifyPassword", body, &acct)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, utils.NotFoundError("User not found", nil)
	case status == http.StatusUnauthorized || status == http.StatusBadRequest:
		return nil, utils.UnauthorizedError("Invalid credentials", nil)
	case status < 200 || status >= 300:
		return nil, utils.InternalError("Failed to verify credentials", fmt.Errorf("identity provider returned status %d", status))
	}

	return acct.toUser(), nil
}

// doJSON performs a request against the provider and decodes a 2xx body
// into result. Non-2xx statuses are returned to the caller for mapping.
func (c *Client) doJSON(ctx context.Context, method, path string, body, result interface{}) (int, error) {
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return 0, utils.InternalError("Failed to encode request", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, utils.InternalError("Failed to build identity request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, utils.InternalError("Identity provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return 0, utils.InternalError("Failed to decode identity response", err)
		}
	}

	return resp.StatusCode, nil
}
