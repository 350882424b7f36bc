package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/announcements/controller"
)

// AnnouncementPublicRoutes: resident/visitor-facing listing.
func AnnouncementPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)
	public.Get("/announcements", ctrl.List)
}

// AnnouncementAdminRoutes: posting, staff/admin group.
func AnnouncementAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)
	admin.Post("/announcements", ctrl.Create)
	admin.Put("/announcements/:id", ctrl.Update)
	admin.Delete("/announcements/:id", ctrl.Delete)
}
