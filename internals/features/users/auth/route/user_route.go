// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "ebarangay_backend/internals/features/users/auth/controller"
	rateLimiter "ebarangay_backend/internals/middlewares"
	authMiddleware "ebarangay_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// ==========================
	// PUBLIC
	// Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/reset-password", authController.ResetPassword)

	// ==========================
	// PROTECTED
	// ==========================
	protectedAuth := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))

	protectedAuth.Get("/me", authController.Me)
	protectedAuth.Post("/change-password", authController.ChangePassword)
}
