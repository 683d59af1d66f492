package userservice

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := newAccessToken(42, "root", secret)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	id, err := ParseAccessToken(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	token, err := newAccessToken(42, "root", []byte("test-secret"))
	assert.NoError(t, err)

	_, err = ParseAccessToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, ErrInvalidAuthToken)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	_, err := ParseAccessToken("not-a-token", []byte("test-secret"))
	assert.ErrorIs(t, err, ErrInvalidAuthToken)
}

func TestParseAccessToken_MissingIDClaim(t *testing.T) {
	secret := []byte("test-secret")

	claims := jwt.MapClaims{
		"username": "root",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	assert.NoError(t, err)

	_, err = ParseAccessToken(token, secret)
	assert.ErrorIs(t, err, ErrInvalidAuthToken)
}

func TestParseAccessToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	claims := jwt.MapClaims{
		"id":  42,
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	assert.NoError(t, err)

	_, err = ParseAccessToken(token, secret)
	assert.ErrorIs(t, err, ErrInvalidAuthToken)
}
