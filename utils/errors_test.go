package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorTaxonomy(t *testing.T) {
	cases := []struct {
		err  *AppError
		code int
	}{
		{ValidationError("bad input", nil), http.StatusBadRequest},
		{UnauthorizedError("nope", nil), http.StatusUnauthorized},
		{NotFoundError("missing", nil), http.StatusNotFound},
		{ConflictError("duplicate", nil), http.StatusConflict},
		{InternalError("boom", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code, tc.err.Message)
	}
}

func TestGatewayErrorCarriesDetails(t *testing.T) {
	details := map[string]string{"code": "order_amount_invalid"}
	err := GatewayError(http.StatusBadRequest, "Failed to create payment order", details)

	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, details, err.Details)
}

func TestAsAppErrorUnwraps(t *testing.T) {
	inner := NotFoundError("missing", nil)
	wrapped := WrapError(inner, "looking up profile")

	appErr := AsAppError(wrapped)
	if appErr == nil {
		t.Fatalf("expected AppError through wrap, got %v", wrapped)
	}
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.True(t, IsNotFoundError(wrapped))
}

func TestAsAppErrorPlainError(t *testing.T) {
	assert.Nil(t, AsAppError(errors.New("plain")))
	assert.False(t, IsNotFoundError(errors.New("plain")))
	assert.Nil(t, WrapError(nil, "context"))
}

func TestAppErrorMessage(t *testing.T) {
	err := NotFoundError("User not found", errors.New("status 404"))
	assert.Contains(t, err.Error(), "User not found")
	assert.Contains(t, err.Error(), "status 404")
}
