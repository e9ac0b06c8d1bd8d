package auth

import (
	"time"

	"adcards-backend/config"
	"adcards-backend/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
)

func issueAppJWT(user users.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString([]byte(config.JWT_SECRET))
}
