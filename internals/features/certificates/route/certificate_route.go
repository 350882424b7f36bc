package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/certificates/controller"
)

// CertificateUserRoutes: resident requesting + own history.
func CertificateUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCertificateController(db)
	user.Post("/certificate-requests", ctrl.Submit)
	user.Get("/certificate-requests", ctrl.ListMine)
}

// CertificateAdminRoutes: processing, staff/admin group.
func CertificateAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCertificateController(db)
	admin.Get("/certificate-requests", ctrl.List)
	admin.Patch("/certificate-requests/:id", ctrl.Process)
}
