package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/announcements/dto"
	"ebarangay_backend/internals/features/announcements/model"
	helper "ebarangay_backend/internals/helpers"
)

var validateAnnouncement = validator.New()

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

// =======================
// ➕ Create Announcement (staff/admin)
// =======================
func (ctrl *AnnouncementController) Create(c *fiber.Ctx) error {
	var body dto.CreateAnnouncementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID, _ := c.Locals("user_id").(string)
	postedBy, err := uuid.Parse(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	ann := model.AnnouncementModel{
		AnnouncementTitle:    body.Title,
		AnnouncementBody:     body.Body,
		AnnouncementIsPinned: body.IsPinned,
		AnnouncementPostedBy: postedBy,
	}

	if err := ctrl.DB.Create(&ann).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}

	return helper.JsonCreated(c, "Announcement created", dto.ToAnnouncementDTO(ann))
}

// =======================
// 📄 List (public, pinned first, paginated)
// =======================
func (ctrl *AnnouncementController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctrl.DB.Model(&model.AnnouncementModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count announcements")
	}

	var anns []model.AnnouncementModel
	if err := ctrl.DB.
		Order("announcement_is_pinned DESC, announcement_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&anns).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}

	resp := make([]dto.AnnouncementDTO, 0, len(anns))
	for _, a := range anns {
		resp = append(resp, dto.ToAnnouncementDTO(a))
	}

	return helper.JsonList(c, resp, helper.BuildPagination(total, p, len(resp)))
}

// =======================
// ✏️ Update (staff/admin)
// =======================
func (ctrl *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement id")
	}

	var body dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var ann model.AnnouncementModel
	if err := ctrl.DB.Where("announcement_id = ?", id).First(&ann).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcement")
	}

	ann.AnnouncementTitle = body.Title
	ann.AnnouncementBody = body.Body
	ann.AnnouncementIsPinned = body.IsPinned

	if err := ctrl.DB.Save(&ann).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}

	return helper.JsonUpdated(c, "Announcement updated", dto.ToAnnouncementDTO(ann))
}

// =======================
// 🗑 Delete (staff/admin)
// =======================
func (ctrl *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement id")
	}

	res := ctrl.DB.Where("announcement_id = ?", id).Delete(&model.AnnouncementModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}

	return helper.JsonDeleted(c, "Announcement deleted", nil)
}
