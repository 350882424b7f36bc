package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/residents/digitalid/model"
	residentModel "ebarangay_backend/internals/features/residents/resident/model"
	helper "ebarangay_backend/internals/helpers"
)

type DigitalIDController struct {
	DB *gorm.DB
}

func NewDigitalIDController(db *gorm.DB) *DigitalIDController {
	return &DigitalIDController{DB: db}
}

// =======================
// 🪪 My digital ID (resident)
// GET /api/u/digital-id
// =======================
func (ctrl *DigitalIDController) Mine(c *fiber.Ctx) error {
	did, err := ctrl.findMine(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", did)
}

// =======================
// 🖼 QR render (resident)
// GET /api/u/digital-id/qr.png
// =======================
func (ctrl *DigitalIDController) QRPNG(c *fiber.Ctx) error {
	did, err := ctrl.findMine(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	png, err := qrcode.Encode(string(did.DigitalIDQRPayload), qrcode.Medium, 256)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to render QR code")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (ctrl *DigitalIDController) findMine(c *fiber.Ctx) (*model.DigitalIDModel, error) {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in token")
	}

	var resident residentModel.ResidentModel
	if err := ctrl.DB.Where("resident_user_id = ?", userID).First(&resident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Resident profile not found")
		}
		return nil, err
	}

	var did model.DigitalIDModel
	if err := ctrl.DB.Where("digital_id_resident_id = ?", resident.ResidentID).First(&did).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Digital ID not found")
		}
		return nil, err
	}
	return &did, nil
}
