package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/users/auth/dto"
	authRepo "ebarangay_backend/internals/features/users/auth/repository"
	helper "ebarangay_backend/internals/helpers"
)

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(&input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authRepo.FindUserByUsername(db, input.UserName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same answer as a wrong password, no account probing
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := GenerateAccessToken(user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		Token: token,
		User:  dto.ToUserDTO(*user),
	})
}
