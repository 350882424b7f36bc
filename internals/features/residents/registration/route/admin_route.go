package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/residents/registration/controller"
	"ebarangay_backend/internals/notifier"
)

// RegistrationAdminRoutes: back-office listing + decisions. The caller
// mounts this on a group that already enforces staff/admin roles.
func RegistrationAdminRoutes(admin fiber.Router, db *gorm.DB, n *notifier.Service) {
	ctrl := controller.NewRegistrationController(db, n)

	admin.Get("/registration-requests", ctrl.List)
	admin.Post("/registration-decisions", ctrl.Decide)
}
