// Package store wraps the external document store holding per-user profile
// documents. Profiles live under users/{uid}; no other collection is touched.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Adarsh-736/CurioKart/models"
	"github.com/Adarsh-736/CurioKart/utils"
)

// Client calls the document store's REST API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a document store client with an explicit request timeout
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) documentPath(uid string) string {
	return c.baseURL + "/v1/documents/users/" + uid
}

// CreateProfile writes a new profile document for the given identity.
// Called exactly once, at signup.
func (c *Client) CreateProfile(ctx context.Context, profile *models.Profile) error {
	status, err := c.do(ctx, http.MethodPut, c.documentPath(profile.UID), profile, nil)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return utils.InternalError("Failed to store user profile", fmt.Errorf("document store returned status %d", status))
	}
	return nil
}

// GetProfile fetches the profile document for uid.
// Returns a NotFoundError when no document exists.
func (c *Client) GetProfile(ctx context.Context, uid string) (*models.Profile, error) {
	var profile models.Profile
	status, err := c.do(ctx, http.MethodGet, c.documentPath(uid), nil, &profile)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, utils.NotFoundError("User not found", nil)
	case status < 200 || status >= 300:
		return nil, utils.InternalError("Failed to fetch user profile", fmt.Errorf("document store returned status %d", status))
	}
	return &profile, nil
}

// TouchLastLogin overwrites the profile's lastLogin timestamp
func (c *Client) TouchLastLogin(ctx context.Context, uid string, at time.Time) error {
	patch := map[string]interface{}{
		"lastLogin": at,
	}
	status, err := c.do(ctx, http.MethodPatch, c.documentPath(uid), patch, nil)
	if err != nil {
		return err
	}
	switch {
	case status == http.StatusNotFound:
		return utils.NotFoundError("User not found", nil)
	case status < 200 || status >= 300:
		return utils.InternalError("Failed to update last login", fmt.Errorf("document store returned status %d", status))
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, url string, body, result interface{}) (int, error) {
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return 0, utils.InternalError("Failed to encode document", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, utils.InternalError("Failed to build store request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, utils.InternalError("Document store unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return 0, utils.InternalError("Failed to decode document", err)
		}
	}

	return resp.StatusCode, nil
}
