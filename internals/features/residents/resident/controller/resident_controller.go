package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/residents/resident/dto"
	"ebarangay_backend/internals/features/residents/resident/model"
	helper "ebarangay_backend/internals/helpers"
)

type ResidentController struct {
	DB *gorm.DB
}

func NewResidentController(db *gorm.DB) *ResidentController {
	return &ResidentController{DB: db}
}

// =======================
// 👤 My profile (resident)
// GET /api/u/residents/me
// =======================
func (ctrl *ResidentController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var resident model.ResidentModel
	if err := ctrl.DB.Where("resident_user_id = ?", userID).First(&resident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Resident profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	return helper.JsonOK(c, "OK", dto.ToResidentDTO(resident))
}

// =======================
// 📄 List residents (staff/admin, paginated + demographic filters)
// GET /api/a/residents?pwd=true&four_ps=true&senior=true...
// =======================
func (ctrl *ResidentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ResidentModel{})
	q = applyFlagFilter(q, c.Query("four_ps"), "resident_is_4ps_member")
	q = applyFlagFilter(q, c.Query("pwd"), "resident_is_pwd")
	q = applyFlagFilter(q, c.Query("indigenous"), "resident_is_indigenous")
	q = applyFlagFilter(q, c.Query("slp"), "resident_is_slp")
	q = applyFlagFilter(q, c.Query("senior"), "resident_is_senior")
	if hh := strings.TrimSpace(c.Query("household_number")); hh != "" {
		q = q.Where("resident_household_number = ?", hh)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count residents")
	}

	var residents []model.ResidentModel
	if err := q.
		Order("resident_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&residents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve residents")
	}

	resp := make([]dto.ResidentDTO, 0, len(residents))
	for _, r := range residents {
		resp = append(resp, dto.ToResidentDTO(r))
	}

	return helper.JsonList(c, resp, helper.BuildPagination(total, p, len(resp)))
}

// =======================
// 🔍 Get resident by id (staff/admin)
// GET /api/a/residents/:id
// =======================
func (ctrl *ResidentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resident id")
	}

	var resident model.ResidentModel
	if err := ctrl.DB.Where("resident_id = ?", id).First(&resident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Resident not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve resident")
	}

	return helper.JsonOK(c, "OK", dto.ToResidentDTO(resident))
}

func applyFlagFilter(q *gorm.DB, raw, column string) *gorm.DB {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return q.Where(column+" = ?", true)
	case "false", "0":
		return q.Where(column+" = ?", false)
	default:
		return q
	}
}
