package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("IDENTITY_BASE_URL", "http://identity.local")
	t.Setenv("IDENTITY_API_KEY", "id-key")
	t.Setenv("STORE_BASE_URL", "http://store.local")
	t.Setenv("STORE_API_KEY", "store-key")
	t.Setenv("CASHFREE_APP_ID", "app-id")
	t.Setenv("CASHFREE_SECRET_KEY", "cf-secret")
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "http://identity.local", cfg.IdentityBaseURL)
	assert.Equal(t, "app-id", cfg.CashfreeAppID)

	// Defaults apply when optional variables are unset
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "2023-08-01", cfg.CashfreeAPIVersion)
	assert.True(t, strings.HasPrefix(cfg.CashfreeAPIURL, "https://sandbox.cashfree.com"))
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CASHFREE_API_URL", "https://api.cashfree.com/pg/orders")
	t.Setenv("RETURN_URL_BASE", "https://shop.example.com")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://api.cashfree.com/pg/orders", cfg.CashfreeAPIURL)
	assert.Equal(t, "https://shop.example.com", cfg.ReturnURLBase)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CASHFREE_APP_ID", "")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error for missing required variables")
	}
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "CASHFREE_APP_ID")
	assert.NotContains(t, err.Error(), "STORE_API_KEY")
}
