// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ebarangay_backend/internals/configs"
	userModel "ebarangay_backend/internals/features/users/auth/model"
	helper "ebarangay_backend/internals/helpers"
)

// AuthMiddleware verifies the bearer token and stashes the caller's
// identity (user_id, user_role, user_name) into Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing token")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		// 30s leeway absorbs clock skew between issuer and verifier
		claims := jwt.MapClaims{}
		parser := jwt.NewParser(jwt.WithLeeway(30 * time.Second))
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if _, ok := claims["exp"]; !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing expiry claim")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
		}

		c.Locals("user_id", userID.String())
		storeBasicClaimsToLocals(c, claims)
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	// "id" is the primary claim; "sub" kept as fallback
	if v, ok := claims["id"].(string); ok {
		return uuid.Parse(v)
	}
	if v, ok := claims["sub"].(string); ok {
		return uuid.Parse(v)
	}
	return uuid.Nil, errors.New("user id claim missing")
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var user userModel.UserModel
	err := db.Select("is_active").
		Where("id = ?", userID).
		Take(&user).Error
	if err != nil {
		return err
	}
	if !user.IsActive {
		return errors.New("user inactive")
	}
	return nil
}

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}
	if name, ok := claims["user_name"].(string); ok {
		c.Locals("user_name", name)
	}
}
