package auth

import (
	"testing"

	"adcards-backend/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "adcards-backend/internal/domain/users"
)

func TestIsPasswordStrong(t *testing.T) {
	strong := []string{"abc12345", "Password1", "x1y2z3w4"}
	weak := []string{"", "short1", "onlyletters", "12345678"}

	for _, p := range strong {
		assert.True(t, isPasswordStrong(p), "password %q", p)
	}
	for _, p := range weak {
		assert.False(t, isPasswordStrong(p), "password %q", p)
	}
}

func TestIsEmailValid(t *testing.T) {
	valid := []string{"a@b.co", "owner+tag@shop.example.com", "first.last@sub.domain.io"}
	invalid := []string{"", "plain", "@nohost.com", "user@", "user@host", "user@host."}

	for _, e := range valid {
		assert.True(t, isEmailValid(e), "email %q", e)
	}
	for _, e := range invalid {
		assert.False(t, isEmailValid(e), "email %q", e)
	}
}

func TestGenerateVerificationTokenShape(t *testing.T) {
	a := generateVerificationToken()
	b := generateVerificationToken()

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestIssueAppJWTCarriesClaims(t *testing.T) {
	config.JWT_SECRET = "test-secret"

	user := domain.User{ID: 9, Email: "owner@shop.example.com", Role: "user"}
	tokenString, err := issueAppJWT(user)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.JWT_SECRET), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(9), claims["user_id"])
	assert.Equal(t, "owner@shop.example.com", claims["email"])
	assert.Equal(t, "user", claims["role"])
}
