package userservice

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidAuthToken = errors.New("invalid authentication token")

// newAccessToken signs a bearer token carrying the user id claim with the
// server secret.
func newAccessToken(userID int, username string, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"id":       userID,
		"username": username,
		"exp":      time.Now().Add(AccessTokenTime).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseAccessToken verifies the token signature against the shared secret and
// returns the user id claim. Malformed, tampered, expired and claimless tokens
// all map to ErrInvalidAuthToken.
func ParseAccessToken(token string, secret []byte) (int, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidAuthToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidAuthToken
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return 0, ErrInvalidAuthToken
	}

	return int(id), nil
}
