package dto

import (
	"time"

	"github.com/google/uuid"

	"ebarangay_backend/internals/features/residents/registration/model"
)

// ============================
// Intake Request DTO
// ============================

type CreateRegistrationRequest struct {
	FirstName        string  `json:"first_name" validate:"required,min=2,max=100"`
	LastName         string  `json:"last_name" validate:"required,min=2,max=100"`
	ContactNo        string  `json:"contact_no" validate:"required,min=7,max=20"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Birthdate        string  `json:"birthdate" validate:"required,datetime=2006-01-02"`
	Gender           string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Address          string  `json:"address" validate:"required"`
	Role             string  `json:"role" validate:"omitempty,oneof=resident staff admin"`
	IsHeadOfFamily   bool    `json:"is_head_of_family"`
	HeadID           *string `json:"head_id" validate:"omitempty,uuid"`
	Is4PsMember      bool    `json:"is_4ps_member"`
	IsPWD            bool    `json:"is_pwd"`
	IsIndigenous     bool    `json:"is_indigenous"`
	IsSLPBeneficiary bool    `json:"is_slp_beneficiary"`
}

// ============================
// Decision Request DTO
// ============================

type DecisionRequest struct {
	RequestID       string  `json:"request_id" validate:"required,uuid"`
	Approve         bool    `json:"approve"`
	RejectionReason *string `json:"rejection_reason" validate:"omitempty,max=500"`
}

// ============================
// Response DTOs
// ============================

type RegistrationRequestDTO struct {
	RequestID        uuid.UUID  `json:"request_id"`
	ReferenceNumber  string     `json:"reference_number"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	ContactNo        string     `json:"contact_no"`
	Email            *string    `json:"email,omitempty"`
	Birthdate        string     `json:"birthdate"`
	Gender           string     `json:"gender,omitempty"`
	Address          string     `json:"address"`
	Role             string     `json:"role"`
	IsHeadOfFamily   bool       `json:"is_head_of_family"`
	HeadID           *uuid.UUID `json:"head_id,omitempty"`
	Is4PsMember      bool       `json:"is_4ps_member"`
	IsPWD            bool       `json:"is_pwd"`
	IsIndigenous     bool       `json:"is_indigenous"`
	IsSLPBeneficiary bool       `json:"is_slp_beneficiary"`
	IsSenior         bool       `json:"is_senior"`
	Status           string     `json:"status"`
	ApprovedBy       *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	RejectionReason  *string    `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// StatusLookupDTO is the public no-email status view: name + status + role
// only, nothing an outsider could mine.
type StatusLookupDTO struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Role   string `json:"role"`
}

type DecisionOutcomeDTO struct {
	Approved   bool       `json:"approved"`
	Rejected   bool       `json:"rejected"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	ResidentID *uuid.UUID `json:"resident_id,omitempty"`
}

// ============================
// Converters
// ============================

func ToRegistrationRequestDTO(m model.RegistrationRequestModel) RegistrationRequestDTO {
	return RegistrationRequestDTO{
		RequestID:        m.RequestID,
		ReferenceNumber:  m.RequestReferenceNumber,
		FirstName:        m.RequestFirstName,
		LastName:         m.RequestLastName,
		ContactNo:        m.RequestContactNo,
		Email:            m.RequestEmail,
		Birthdate:        m.RequestBirthdate.Format("2006-01-02"),
		Gender:           m.RequestGender,
		Address:          m.RequestAddress,
		Role:             m.RequestRole,
		IsHeadOfFamily:   m.RequestIsHeadOfFamily,
		HeadID:           m.RequestHeadID,
		Is4PsMember:      m.RequestIs4PsMember,
		IsPWD:            m.RequestIsPWD,
		IsIndigenous:     m.RequestIsIndigenous,
		IsSLPBeneficiary: m.RequestIsSLP,
		IsSenior:         m.RequestIsSenior,
		Status:           m.RequestStatus,
		ApprovedBy:       m.RequestApprovedBy,
		ApprovedAt:       m.RequestApprovedAt,
		RejectionReason:  m.RequestRejectionReason,
		CreatedAt:        m.RequestCreatedAt,
	}
}

func ToStatusLookupDTO(m model.RegistrationRequestModel) StatusLookupDTO {
	return StatusLookupDTO{
		Name:   m.FullName(),
		Status: m.RequestStatus,
		Role:   m.RequestRole,
	}
}
