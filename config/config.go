package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	// Identity provider (external auth service)
	IdentityBaseURL string
	IdentityAPIKey  string

	// Document store (external profile storage)
	StoreBaseURL string
	StoreAPIKey  string

	// Cashfree payment gateway
	CashfreeAppID      string
	CashfreeSecretKey  string
	CashfreeAPIURL     string
	CashfreeAPIVersion string

	// Base URL the gateway redirects back to after payment
	ReturnURLBase string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// .env is optional; deployments may inject variables directly
	_ = godotenv.Load()

	config := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		IdentityBaseURL:    os.Getenv("IDENTITY_BASE_URL"),
		IdentityAPIKey:     os.Getenv("IDENTITY_API_KEY"),
		StoreBaseURL:       os.Getenv("STORE_BASE_URL"),
		StoreAPIKey:        os.Getenv("STORE_API_KEY"),
		CashfreeAppID:      os.Getenv("CASHFREE_APP_ID"),
		CashfreeSecretKey:  os.Getenv("CASHFREE_SECRET_KEY"),
		CashfreeAPIURL:     getEnv("CASHFREE_API_URL", "https://sandbox.cashfree.com/pg/orders"),
		CashfreeAPIVersion: getEnv("CASHFREE_API_VERSION", "2023-08-01"),
		ReturnURLBase:      getEnv("RETURN_URL_BASE", "http://localhost:5174"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports every required variable that is missing
func (c *Config) Validate() error {
	required := map[string]string{
		"JWT_SECRET":          c.JWTSecret,
		"IDENTITY_BASE_URL":   c.IdentityBaseURL,
		"IDENTITY_API_KEY":    c.IdentityAPIKey,
		"STORE_BASE_URL":      c.StoreBaseURL,
		"STORE_API_KEY":       c.StoreAPIKey,
		"CASHFREE_APP_ID":     c.CashfreeAppID,
		"CASHFREE_SECRET_KEY": c.CashfreeSecretKey,
	}

	var missing []string
	for name, value := range required {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
