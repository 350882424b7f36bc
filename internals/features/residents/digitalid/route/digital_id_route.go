package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/residents/digitalid/controller"
)

// DigitalIDUserRoutes: resident-facing credential views.
func DigitalIDUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDigitalIDController(db)
	user.Get("/digital-id", ctrl.Mine)
	user.Get("/digital-id/qr.png", ctrl.QRPNG)
}
