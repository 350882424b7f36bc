package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ebarangay_backend/internals/constants"
	residentModel "ebarangay_backend/internals/features/residents/resident/model"
	models "ebarangay_backend/internals/features/users/auth/model"
	"ebarangay_backend/internals/features/users/auth/service"
	helper "ebarangay_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}

func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	return service.ResetPassword(ac.DB, c)
}

// Me returns the caller's account plus the linked profile summary.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid UUID format")
	}

	var user models.UserModel
	if err := ac.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	resp := fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"role":      user.Role,
		"is_active": user.IsActive,
	}

	if user.Role == constants.RoleResident {
		var resident residentModel.ResidentModel
		err := ac.DB.Where("resident_user_id = ?", user.ID).First(&resident).Error
		switch {
		case err == nil:
			resp["resident"] = resident
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load resident profile")
		}
	} else {
		var staff residentModel.StaffModel
		err := ac.DB.Where("staff_user_id = ?", user.ID).First(&staff).Error
		switch {
		case err == nil:
			resp["staff"] = staff
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load staff profile")
		}
	}

	return helper.JsonOK(c, "OK", resp)
}
