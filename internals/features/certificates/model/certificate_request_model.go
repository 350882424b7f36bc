package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CertificateTypeClearance = "BARANGAY_CLEARANCE"
	CertificateTypeResidency = "RESIDENCY"
	CertificateTypeIndigency = "INDIGENCY"
	CertificateTypeGoodMoral = "GOOD_MORAL"
)

// Certificate processing states. Transitions:
// PENDING → PROCESSING → READY_FOR_PICKUP; PENDING/PROCESSING → REJECTED.
const (
	CertificateStatusPending    = "PENDING"
	CertificateStatusProcessing = "PROCESSING"
	CertificateStatusReady      = "READY_FOR_PICKUP"
	CertificateStatusRejected   = "REJECTED"
)

type CertificateRequestModel struct {
	CertificateID              uuid.UUID  `gorm:"column:certificate_id;type:uuid;primaryKey" json:"certificate_id"`
	CertificateResidentID      uuid.UUID  `gorm:"column:certificate_resident_id;type:uuid;not null;index" json:"certificate_resident_id"`
	CertificateType            string     `gorm:"column:certificate_type;type:varchar(30);not null" json:"certificate_type"`
	CertificatePurpose         string     `gorm:"column:certificate_purpose;type:text;not null" json:"certificate_purpose"`
	CertificateStatus          string     `gorm:"column:certificate_status;type:varchar(20);not null;default:'PENDING'" json:"certificate_status"`
	CertificatePickupDate      *time.Time `gorm:"column:certificate_pickup_date" json:"certificate_pickup_date,omitempty"`
	CertificateRejectionReason *string    `gorm:"column:certificate_rejection_reason;type:text" json:"certificate_rejection_reason,omitempty"`
	CertificateProcessedBy     *uuid.UUID `gorm:"column:certificate_processed_by;type:uuid" json:"certificate_processed_by,omitempty"`
	CertificateCreatedAt       time.Time  `gorm:"column:certificate_created_at;autoCreateTime" json:"certificate_created_at"`
	CertificateUpdatedAt       time.Time  `gorm:"column:certificate_updated_at;autoUpdateTime" json:"certificate_updated_at"`
}

func (CertificateRequestModel) TableName() string {
	return "certificate_requests"
}

func (m *CertificateRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.CertificateID == uuid.Nil {
		m.CertificateID = uuid.New()
	}
	if m.CertificateStatus == "" {
		m.CertificateStatus = CertificateStatusPending
	}
	return nil
}
