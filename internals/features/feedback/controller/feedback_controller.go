package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/feedback/dto"
	"ebarangay_backend/internals/features/feedback/model"
	helper "ebarangay_backend/internals/helpers"
)

var validateFeedback = validator.New()

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

// =======================
// ➕ Submit feedback (resident)
// POST /api/u/feedback
// =======================
func (ctrl *FeedbackController) Submit(c *fiber.Ctx) error {
	var body dto.CreateFeedbackRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFeedback.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	fb := model.FeedbackModel{
		FeedbackUserID:  userID,
		FeedbackSubject: strings.TrimSpace(body.Subject),
		FeedbackMessage: body.Message,
	}

	if err := ctrl.DB.Create(&fb).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit feedback")
	}

	return helper.JsonCreated(c, "Feedback submitted", dto.ToFeedbackDTO(fb))
}

// =======================
// 📄 My feedback (resident)
// GET /api/u/feedback
// =======================
func (ctrl *FeedbackController) ListMine(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.FeedbackModel{}).Where("feedback_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count feedback")
	}

	var items []model.FeedbackModel
	if err := q.
		Order("feedback_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve feedback")
	}

	resp := make([]dto.FeedbackDTO, 0, len(items))
	for _, f := range items {
		resp = append(resp, dto.ToFeedbackDTO(f))
	}

	return helper.JsonList(c, resp, helper.BuildPagination(total, p, len(resp)))
}

// =======================
// 📄 All feedback (staff/admin)
// GET /api/a/feedback?status=OPEN
// =======================
func (ctrl *FeedbackController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.FeedbackModel{})
	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		q = q.Where("feedback_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count feedback")
	}

	var items []model.FeedbackModel
	if err := q.
		Order("feedback_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve feedback")
	}

	resp := make([]dto.FeedbackDTO, 0, len(items))
	for _, f := range items {
		resp = append(resp, dto.ToFeedbackDTO(f))
	}

	return helper.JsonList(c, resp, helper.BuildPagination(total, p, len(resp)))
}

// =======================
// 💬 Respond / advance status (staff/admin)
// PATCH /api/a/feedback/:id
// =======================
func (ctrl *FeedbackController) Respond(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid feedback id")
	}

	var body dto.RespondFeedbackRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFeedback.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userIDStr, _ := c.Locals("user_id").(string)
	responderID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var fb model.FeedbackModel
	if err := ctrl.DB.Where("feedback_id = ?", id).First(&fb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Feedback not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve feedback")
	}

	if !fb.CanTransitionTo(body.Status) {
		return helper.JsonError(c, fiber.StatusConflict, "Feedback status can only move forward")
	}

	fb.FeedbackStatus = body.Status
	fb.FeedbackRespondedBy = &responderID
	if body.Response != nil && strings.TrimSpace(*body.Response) != "" {
		fb.FeedbackResponse = body.Response
	}

	if err := ctrl.DB.Save(&fb).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update feedback")
	}

	return helper.JsonUpdated(c, "Feedback updated", dto.ToFeedbackDTO(fb))
}
