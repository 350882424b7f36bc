package database

import (
	"log"

	"gorm.io/gorm"

	announcementModel "ebarangay_backend/internals/features/announcements/model"
	certificateModel "ebarangay_backend/internals/features/certificates/model"
	feedbackModel "ebarangay_backend/internals/features/feedback/model"
	digitalIDModel "ebarangay_backend/internals/features/residents/digitalid/model"
	householdModel "ebarangay_backend/internals/features/residents/household/model"
	registrationModel "ebarangay_backend/internals/features/residents/registration/model"
	residentModel "ebarangay_backend/internals/features/residents/resident/model"
	userModel "ebarangay_backend/internals/features/users/auth/model"
)

// Migrate keeps the schema in sync. Order matters: referenced tables first.
func Migrate(db *gorm.DB) error {
	log.Println("[INFO] Running migrations...")
	return db.AutoMigrate(
		&userModel.UserModel{},
		&householdModel.HouseholdModel{},
		&residentModel.ResidentModel{},
		&residentModel.StaffModel{},
		&digitalIDModel.DigitalIDModel{},
		&registrationModel.RegistrationRequestModel{},
		&announcementModel.AnnouncementModel{},
		&feedbackModel.FeedbackModel{},
		&certificateModel.CertificateRequestModel{},
	)
}
