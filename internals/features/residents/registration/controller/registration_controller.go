package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ebarangay_backend/internals/constants"
	"ebarangay_backend/internals/features/residents/registration/dto"
	regHelper "ebarangay_backend/internals/features/residents/registration/helper"
	"ebarangay_backend/internals/features/residents/registration/model"
	"ebarangay_backend/internals/features/residents/registration/service"
	helper "ebarangay_backend/internals/helpers"
	"ebarangay_backend/internals/notifier"
)

var validateRegistration = validator.New()

const maxReferenceRetries = 5

type RegistrationController struct {
	DB       *gorm.DB
	Approval *service.ApprovalService
}

func NewRegistrationController(db *gorm.DB, n *notifier.Service) *RegistrationController {
	return &RegistrationController{
		DB:       db,
		Approval: service.NewApprovalService(db, n),
	}
}

// =======================
// ➕ Submit registration request (public)
// POST /api/registration-requests
// =======================
func (ctrl *RegistrationController) Submit(c *fiber.Ctx) error {
	var body dto.CreateRegistrationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRegistration.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	birthdate, err := time.Parse("2006-01-02", body.Birthdate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "birthdate must be YYYY-MM-DD")
	}

	role := body.Role
	if role == "" {
		role = constants.RoleResident
	}

	var headID *uuid.UUID
	if body.HeadID != nil && strings.TrimSpace(*body.HeadID) != "" {
		parsed, err := uuid.Parse(*body.HeadID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "head_id must be a valid UUID")
		}
		headID = &parsed
	}
	if body.IsHeadOfFamily && headID != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "A head of family cannot also reference another head")
	}

	now := time.Now().UTC()
	req := model.RegistrationRequestModel{
		RequestFirstName:      strings.TrimSpace(body.FirstName),
		RequestLastName:       strings.TrimSpace(body.LastName),
		RequestContactNo:      strings.TrimSpace(body.ContactNo),
		RequestEmail:          normalizeEmail(body.Email),
		RequestBirthdate:      birthdate,
		RequestGender:         body.Gender,
		RequestAddress:        strings.TrimSpace(body.Address),
		RequestRole:           role,
		RequestIsHeadOfFamily: body.IsHeadOfFamily,
		RequestHeadID:         headID,
		RequestIs4PsMember:    body.Is4PsMember,
		RequestIsPWD:          body.IsPWD,
		RequestIsIndigenous:   body.IsIndigenous,
		RequestIsSLP:          body.IsSLPBeneficiary,
		RequestIsSenior:       regHelper.ComputeIsSenior(birthdate, now),
		RequestStatus:         model.RequestStatusPending,
	}

	// reference numbers are unique per submission; regenerate on the rare
	// collision
	var created bool
	for attempt := 0; attempt < maxReferenceRetries && !created; attempt++ {
		req.RequestReferenceNumber = regHelper.GenerateReferenceNumber(now)
		err := ctrl.DB.Create(&req).Error
		switch {
		case err == nil:
			created = true
		case errors.Is(err, gorm.ErrDuplicatedKey):
			req.RequestID = uuid.Nil
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create registration request")
		}
	}
	if !created {
		return helper.JsonErrorKind(c, fiber.StatusInternalServerError, helper.ErrKindProvisioning,
			"Could not allocate a reference number")
	}

	return helper.JsonCreated(c, "Registration request submitted", dto.ToRegistrationRequestDTO(req))
}

// =======================
// 🔍 Status lookup by reference number (public, no-email path)
// GET /api/registration-requests?ref=REF-YYYYMMDD-####
// =======================
func (ctrl *RegistrationController) Lookup(c *fiber.Ctx) error {
	ref := strings.TrimSpace(c.Query("ref"))
	if ref == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "ref query parameter is required")
	}

	var req model.RegistrationRequestModel
	if err := ctrl.DB.
		Where("request_reference_number = ?", ref).
		First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Unknown reference number")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up request")
	}

	return helper.JsonOK(c, "OK", dto.ToStatusLookupDTO(req))
}

// =======================
// 📄 List requests (staff/admin, paginated)
// GET /api/a/registration-requests?status=PENDING
// =======================
func (ctrl *RegistrationController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.RegistrationRequestModel{})
	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		q = q.Where("request_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count requests")
	}

	var reqs []model.RegistrationRequestModel
	if err := q.
		Order("request_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&reqs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve requests")
	}

	resp := make([]dto.RegistrationRequestDTO, 0, len(reqs))
	for _, r := range reqs {
		resp = append(resp, dto.ToRegistrationRequestDTO(r))
	}

	return helper.JsonList(c, resp, helper.BuildPagination(total, p, len(resp)))
}

// =======================
// ⚖️ Decide (staff/admin)
// POST /api/a/registration-decisions
// =======================
func (ctrl *RegistrationController) Decide(c *fiber.Ctx) error {
	actor, err := actorFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.DecisionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRegistration.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	requestID, err := uuid.Parse(body.RequestID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "request_id must be a valid UUID")
	}

	// staff must give applicants a reason when rejecting; admins may skip
	if !body.Approve && actor.Role == constants.RoleStaff {
		if body.RejectionReason == nil || strings.TrimSpace(*body.RejectionReason) == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "rejection_reason is required")
		}
	}

	outcome, err := ctrl.Approval.Decide(c.UserContext(), requestID, actor, body.Approve, body.RejectionReason)
	if err != nil {
		var pe *service.ProvisioningError
		if errors.As(err, &pe) {
			return helper.JsonErrorKind(c, fiber.StatusInternalServerError, helper.ErrKindProvisioning, pe.Error())
		}
		return helper.FromFiberError(c, err)
	}

	msg := "Request rejected"
	if outcome.Approved {
		msg = "Request approved"
	}
	return helper.JsonOK(c, msg, dto.DecisionOutcomeDTO{
		Approved:   outcome.Approved,
		Rejected:   outcome.Rejected,
		UserID:     outcome.UserID,
		ResidentID: outcome.ResidentID,
	})
}

func actorFromLocals(c *fiber.Ctx) (service.Actor, error) {
	idStr, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("userRole").(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return service.Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if role == "" {
		return service.Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
	}
	return service.Actor{ID: id, Role: role}, nil
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := strings.ToLower(strings.TrimSpace(*email))
	if e == "" {
		return nil
	}
	return &e
}
