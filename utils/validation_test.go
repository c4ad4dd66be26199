package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@x.com", "first.last+tag@sub.example.co"}
	for _, email := range valid {
		ok, _ := ValidateEmail(email)
		assert.True(t, ok, "expected %q to be valid", email)
	}

	invalid := []string{"", "plain", "@x.com", "a@", "a@x", "a b@x.com"}
	for _, email := range invalid {
		ok, msg := ValidateEmail(email)
		assert.False(t, ok, "expected %q to be invalid", email)
		assert.NotEmpty(t, msg)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.NotContains(t, SanitizeString("<script>alert(1)</script>hi"), "<script>")
	assert.Equal(t, "plain", SanitizeString("plain"))
}

func TestValidateName(t *testing.T) {
	ok, _ := ValidateName("Anita")
	assert.True(t, ok)

	for _, name := range []string{"", "  ", "A1", "A!"} {
		ok, msg := ValidateName(name)
		assert.False(t, ok, "expected %q to be invalid", name)
		assert.NotEmpty(t, msg)
	}
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(100))
	assert.NoError(t, ValidateAmount(0.5))
	assert.Error(t, ValidateAmount(0))
	assert.Error(t, ValidateAmount(-10))
}
