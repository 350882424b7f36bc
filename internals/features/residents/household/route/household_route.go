package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/residents/household/controller"
)

// HouseholdAdminRoutes: back-office registry browsing.
func HouseholdAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHouseholdController(db)
	admin.Get("/households", ctrl.List)
	admin.Get("/households/:id/members", ctrl.Members)
}
