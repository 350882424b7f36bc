// internals/features/users/auth/repository/repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "ebarangay_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

func FindUserByUsername(db *gorm.DB, username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_name = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(db *gorm.DB, id uuid.UUID, hashed string) error {
	return db.Model(&userModel.UserModel{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}
