// file: internals/features/residents/registration/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/residents/registration/controller"
	rateLimiter "ebarangay_backend/internals/middlewares"
	"ebarangay_backend/internals/notifier"
)

// RegistrationPublicRoutes: applicant-facing intake + lookup, no auth.
func RegistrationPublicRoutes(app *fiber.App, db *gorm.DB, n *notifier.Service) {
	ctrl := controller.NewRegistrationController(db, n)

	public := app.Group("/api/registration-requests")
	public.Post("/", rateLimiter.RegisterRateLimiter(), ctrl.Submit)
	public.Get("/", ctrl.Lookup)
}
