package service

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ebarangay_backend/internals/configs"
	"ebarangay_backend/internals/constants"
	userModel "ebarangay_backend/internals/features/users/auth/model"
)

// EnsureAdminAccount seeds the first admin from ADMIN_USERNAME /
// ADMIN_PASSWORD so a fresh deployment has a working back office.
// Does nothing when the account already exists or no password is set.
func EnsureAdminAccount(db *gorm.DB) error {
	if configs.AdminPassword == "" {
		return nil
	}

	var existing userModel.UserModel
	err := db.Where("user_name = ?", configs.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(configs.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := userModel.UserModel{
		UserName: configs.AdminUsername,
		Password: string(hash),
		Role:     constants.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("✅ Admin account %q bootstrapped", configs.AdminUsername)
	return nil
}
