package dto

import (
	"time"

	"github.com/google/uuid"

	"ebarangay_backend/internals/features/certificates/model"
)

// ============================
// Request DTOs
// ============================

type CreateCertificateRequest struct {
	Type    string `json:"type" validate:"required,oneof=BARANGAY_CLEARANCE RESIDENCY INDIGENCY GOOD_MORAL"`
	Purpose string `json:"purpose" validate:"required,min=3,max=500"`
}

// UpdateCertificateRequest is a tagged action: exactly one of the allowed
// actions, each with its own required payload, validated exhaustively
// before the workflow sees it.
type UpdateCertificateRequest struct {
	Action     string  `json:"action" validate:"required,oneof=process schedule_pickup reject"`
	PickupDate *string `json:"pickup_date" validate:"omitempty,datetime=2006-01-02"`
	Reason     *string `json:"reason" validate:"omitempty,max=500"`
}

// ============================
// Response DTO
// ============================

type CertificateRequestDTO struct {
	CertificateID   uuid.UUID  `json:"certificate_id"`
	ResidentID      uuid.UUID  `json:"resident_id"`
	Type            string     `json:"type"`
	Purpose         string     `json:"purpose"`
	Status          string     `json:"status"`
	PickupDate      *time.Time `json:"pickup_date,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ProcessedBy     *uuid.UUID `json:"processed_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func ToCertificateRequestDTO(m model.CertificateRequestModel) CertificateRequestDTO {
	return CertificateRequestDTO{
		CertificateID:   m.CertificateID,
		ResidentID:      m.CertificateResidentID,
		Type:            m.CertificateType,
		Purpose:         m.CertificatePurpose,
		Status:          m.CertificateStatus,
		PickupDate:      m.CertificatePickupDate,
		RejectionReason: m.CertificateRejectionReason,
		ProcessedBy:     m.CertificateProcessedBy,
		CreatedAt:       m.CertificateCreatedAt,
		UpdatedAt:       m.CertificateUpdatedAt,
	}
}
