package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	nameRegex    = regexp.MustCompile(`[0-9!@#$%^&*(),.?":{}|<>]`)
)

// SanitizeString escapes HTML special characters and strips tags
func SanitizeString(input string) string {
	sanitized := html.EscapeString(input)
	sanitized = htmlTagRegex.ReplaceAllString(sanitized, "")
	return strings.TrimSpace(sanitized)
}

// ValidateEmail checks if the email is valid
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(email) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// ValidateName checks if the name is non-empty and free of digits and symbols
func ValidateName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if len(name) < 1 {
		return false, "Name is required"
	}
	if nameRegex.MatchString(name) {
		return false, "Name cannot contain numbers or special characters"
	}
	return true, ""
}

// ValidateAmount validates a payment amount
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be greater than 0")
	}
	return nil
}
