package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/residents/resident/controller"
)

// ResidentUserRoutes: the caller mounts this on the authenticated user
// group.
func ResidentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResidentController(db)
	user.Get("/residents/me", ctrl.Me)
}

// ResidentAdminRoutes: back-office browsing, staff/admin group.
func ResidentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResidentController(db)
	admin.Get("/residents", ctrl.List)
	admin.Get("/residents/:id", ctrl.GetByID)
}
