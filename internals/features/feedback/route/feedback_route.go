package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/feedback/controller"
)

// FeedbackUserRoutes: resident submission + own history.
func FeedbackUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeedbackController(db)
	user.Post("/feedback", ctrl.Submit)
	user.Get("/feedback", ctrl.ListMine)
}

// FeedbackAdminRoutes: triage, staff/admin group.
func FeedbackAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeedbackController(db)
	admin.Get("/feedback", ctrl.List)
	admin.Patch("/feedback/:id", ctrl.Respond)
}
