package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ebarangay_backend/internals/constants"
	residentModel "ebarangay_backend/internals/features/residents/resident/model"
	"ebarangay_backend/internals/features/users/auth/dto"
	authRepo "ebarangay_backend/internals/features/users/auth/repository"
	helper "ebarangay_backend/internals/helpers"
)

var validateAuth = validator.New()

// ========================== RESET PASSWORD ==========================
// Recovery authorizes solely by matching the supplied household number
// against the resident/staff profile linked to the username. A weak,
// shared-secret-style mechanism, kept as the product defines it.
func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.ResetPasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(&input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authRepo.FindUserByUsername(db, input.UserName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same answer as a household mismatch, no account probing
			return helper.JsonError(c, fiber.StatusForbidden, "Household number does not match")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Reset failed")
	}

	matched, err := householdNumberMatches(db, user.ID, user.Role, input.HouseholdNumber)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Reset failed")
	}
	if !matched {
		return helper.JsonError(c, fiber.StatusForbidden, "Household number does not match")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := authRepo.UpdateUserPassword(db, user.ID, string(hashed)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password reset successfully", nil)
}

func householdNumberMatches(db *gorm.DB, userID uuid.UUID, role, supplied string) (bool, error) {
	supplied = strings.TrimSpace(supplied)
	if supplied == "" {
		return false, nil
	}

	if role == constants.RoleResident {
		var resident residentModel.ResidentModel
		err := db.Where("resident_user_id = ?", userID).First(&resident).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		return resident.ResidentHouseholdNumber != nil &&
			strings.EqualFold(*resident.ResidentHouseholdNumber, supplied), nil
	}

	var staff residentModel.StaffModel
	err := db.Where("staff_user_id = ?", userID).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return staff.StaffHouseholdNumber != nil &&
		strings.EqualFold(*staff.StaffHouseholdNumber, supplied), nil
}

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.ChangePasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validateAuth.Struct(&input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	v := c.Locals("user_id")
	userIDStr, ok := v.(string)
	if !ok || userIDStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}
	if err := authRepo.UpdateUserPassword(db, userID, string(newHash)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
