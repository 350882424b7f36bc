// internals/features/users/auth/service/token_service.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"ebarangay_backend/internals/configs"
	userModel "ebarangay_backend/internals/features/users/auth/model"
)

// accessTTL is the signed assertion lifetime per the portal's session
// policy.
const accessTTL = 2 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

// GenerateAccessToken signs a 2h HS256 assertion of {id, role}.
func GenerateAccessToken(user *userModel.UserModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"sub":       user.ID.String(),
		"role":      user.Role,
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
