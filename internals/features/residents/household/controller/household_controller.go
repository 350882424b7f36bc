package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/residents/household/model"
	residentDTO "ebarangay_backend/internals/features/residents/resident/dto"
	residentModel "ebarangay_backend/internals/features/residents/resident/model"
	helper "ebarangay_backend/internals/helpers"
)

type HouseholdController struct {
	DB *gorm.DB
}

func NewHouseholdController(db *gorm.DB) *HouseholdController {
	return &HouseholdController{DB: db}
}

// =======================
// 📄 List households (staff/admin, paginated)
// GET /api/a/households
// =======================
func (ctrl *HouseholdController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.HouseholdModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count households")
	}

	var households []model.HouseholdModel
	if err := ctrl.DB.
		Order("household_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&households).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve households")
	}

	return helper.JsonList(c, households, helper.BuildPagination(total, p, len(households)))
}

// =======================
// 👥 Household members (staff/admin)
// GET /api/a/households/:id/members
// =======================
func (ctrl *HouseholdController) Members(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid household id")
	}

	var household model.HouseholdModel
	if err := ctrl.DB.Where("household_id = ?", id).First(&household).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Household not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve household")
	}

	var members []residentModel.ResidentModel
	if err := ctrl.DB.
		Where("resident_household_id = ?", household.HouseholdID).
		Order("resident_is_head_of_family DESC, resident_created_at ASC").
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve members")
	}

	resp := make([]residentDTO.ResidentDTO, 0, len(members))
	for _, m := range members {
		resp = append(resp, residentDTO.ToResidentDTO(m))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"household": household,
		"members":   resp,
	})
}
