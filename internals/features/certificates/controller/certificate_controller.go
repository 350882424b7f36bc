package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ebarangay_backend/internals/features/certificates/dto"
	"ebarangay_backend/internals/features/certificates/model"
	residentModel "ebarangay_backend/internals/features/residents/resident/model"
	helper "ebarangay_backend/internals/helpers"
)

var validateCertificate = validator.New()

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// =======================
// ➕ Request a certificate (resident)
// POST /api/u/certificate-requests
// =======================
func (ctrl *CertificateController) Submit(c *fiber.Ctx) error {
	var body dto.CreateCertificateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCertificate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID, _ := c.Locals("user_id").(string)
	var resident residentModel.ResidentModel
	if err := ctrl.DB.Where("resident_user_id = ?", userID).First(&resident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Resident profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	req := model.CertificateRequestModel{
		CertificateResidentID: resident.ResidentID,
		CertificateType:       body.Type,
		CertificatePurpose:    strings.TrimSpace(body.Purpose),
	}

	if err := ctrl.DB.Create(&req).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create certificate request")
	}

	return helper.JsonCreated(c, "Certificate request submitted", dto.ToCertificateRequestDTO(req))
}

// =======================
// 📄 My certificate requests (resident)
// GET /api/u/certificate-requests
// =======================
func (ctrl *CertificateController) ListMine(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	var resident residentModel.ResidentModel
	if err := ctrl.DB.Where("resident_user_id = ?", userID).First(&resident).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Resident profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	var items []model.CertificateRequestModel
	if err := ctrl.DB.
		Where("certificate_resident_id = ?", resident.ResidentID).
		Order("certificate_created_at DESC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve certificate requests")
	}

	resp := make([]dto.CertificateRequestDTO, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.ToCertificateRequestDTO(it))
	}

	return helper.JsonOK(c, "OK", resp)
}

// =======================
// 📄 All certificate requests (staff/admin)
// GET /api/a/certificate-requests?status=PENDING
// =======================
func (ctrl *CertificateController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CertificateRequestModel{})
	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		q = q.Where("certificate_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count certificate requests")
	}

	var items []model.CertificateRequestModel
	if err := q.
		Order("certificate_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve certificate requests")
	}

	resp := make([]dto.CertificateRequestDTO, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.ToCertificateRequestDTO(it))
	}

	return helper.JsonList(c, resp, helper.BuildPagination(total, p, len(resp)))
}

// =======================
// ⚙️ Process (staff/admin): tagged action per transition
// PATCH /api/a/certificate-requests/:id
// =======================
func (ctrl *CertificateController) Process(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid certificate request id")
	}

	var body dto.UpdateCertificateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCertificate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userIDStr, _ := c.Locals("user_id").(string)
	actorID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var req model.CertificateRequestModel
	if err := ctrl.DB.Where("certificate_id = ?", id).First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Certificate request not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve certificate request")
	}

	switch body.Action {
	case "process":
		if req.CertificateStatus != model.CertificateStatusPending {
			return helper.JsonError(c, fiber.StatusConflict, "Only pending requests can be processed")
		}
		req.CertificateStatus = model.CertificateStatusProcessing

	case "schedule_pickup":
		if req.CertificateStatus != model.CertificateStatusProcessing {
			return helper.JsonError(c, fiber.StatusConflict, "Only processing requests can be scheduled for pickup")
		}
		if body.PickupDate == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "pickup_date is required for schedule_pickup")
		}
		pickup, err := time.Parse("2006-01-02", *body.PickupDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "pickup_date must be YYYY-MM-DD")
		}
		req.CertificateStatus = model.CertificateStatusReady
		req.CertificatePickupDate = &pickup

	case "reject":
		if req.CertificateStatus != model.CertificateStatusPending &&
			req.CertificateStatus != model.CertificateStatusProcessing {
			return helper.JsonError(c, fiber.StatusConflict, "Request is already finalized")
		}
		if body.Reason == nil || strings.TrimSpace(*body.Reason) == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "reason is required for reject")
		}
		req.CertificateStatus = model.CertificateStatusRejected
		req.CertificateRejectionReason = body.Reason
	}

	req.CertificateProcessedBy = &actorID

	if err := ctrl.DB.Save(&req).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update certificate request")
	}

	return helper.JsonUpdated(c, "Certificate request updated", dto.ToCertificateRequestDTO(req))
}
