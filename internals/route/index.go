// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ebarangay_backend/internals/constants"
	announcementRoute "ebarangay_backend/internals/features/announcements/route"
	certificateRoute "ebarangay_backend/internals/features/certificates/route"
	feedbackRoute "ebarangay_backend/internals/features/feedback/route"
	digitalIDRoute "ebarangay_backend/internals/features/residents/digitalid/route"
	householdRoute "ebarangay_backend/internals/features/residents/household/route"
	registrationRoute "ebarangay_backend/internals/features/residents/registration/route"
	residentRoute "ebarangay_backend/internals/features/residents/resident/route"
	authRoute "ebarangay_backend/internals/features/users/auth/route"
	authMiddleware "ebarangay_backend/internals/middlewares/auth"
	"ebarangay_backend/internals/notifier"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, n *notifier.Service) {
	startTime = time.Now()

	// ===================== AUTH / PUBLIC BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up RegistrationPublicRoutes...")
	registrationRoute.RegistrationPublicRoutes(app, db, n)

	// ===================== GROUPS =====================

	// PUBLIC → no JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	announcementRoute.AnnouncementPublicRoutes(public, db)

	// PRIVATE (any authenticated user)
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)
	residentRoute.ResidentUserRoutes(private, db)
	digitalIDRoute.DigitalIDUserRoutes(private, db)
	feedbackRoute.FeedbackUserRoutes(private, db)
	certificateRoute.CertificateUserRoutes(private, db)

	// ADMIN (staff + admin back office)
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorStaff("the back office"),
			constants.StaffAndAbove...,
		),
	)
	registrationRoute.RegistrationAdminRoutes(admin, db, n)
	residentRoute.ResidentAdminRoutes(admin, db)
	householdRoute.HouseholdAdminRoutes(admin, db)
	announcementRoute.AnnouncementAdminRoutes(admin, db)
	feedbackRoute.FeedbackAdminRoutes(admin, db)
	certificateRoute.CertificateAdminRoutes(admin, db)

	BaseRoutes(app, db)
}
