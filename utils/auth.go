package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenTTL is how long an issued token stays valid. Tokens are short-lived;
// clients exchange them with the identity provider for a session.
const TokenTTL = time.Hour

// GenerateToken creates a short-lived signed token bound to an identity
func GenerateToken(uid, email, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   uid,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(TokenTTL).Unix(),
	})

	return token.SignedString([]byte(secret))
}

// ValidateToken validates a signed token and returns the bound user ID
func ValidateToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		uid, ok := claims["uid"].(string)
		if !ok || uid == "" {
			return "", errors.New("invalid user ID in token")
		}
		return uid, nil
	}

	return "", errors.New("invalid token")
}
