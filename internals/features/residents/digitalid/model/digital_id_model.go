package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DigitalIDModel is the one-per-resident credential issued at approval
// time. The QR payload is the displayable identity snapshot (never the
// password). Rows are never regenerated.
type DigitalIDModel struct {
	DigitalIDID         uuid.UUID      `gorm:"column:digital_id_id;type:uuid;primaryKey" json:"digital_id_id"`
	DigitalIDResidentID uuid.UUID      `gorm:"column:digital_id_resident_id;type:uuid;uniqueIndex;not null" json:"digital_id_resident_id"`
	DigitalIDIdentifier string         `gorm:"column:digital_id_identifier;size:50;uniqueIndex;not null" json:"digital_id_identifier"`
	DigitalIDQRPayload  datatypes.JSON `gorm:"column:digital_id_qr_payload;not null" json:"digital_id_qr_payload"`
	DigitalIDIssuedBy   uuid.UUID      `gorm:"column:digital_id_issued_by;type:uuid;not null" json:"digital_id_issued_by"`
	DigitalIDIssuedAt   time.Time      `gorm:"column:digital_id_issued_at;not null" json:"digital_id_issued_at"`
}

func (DigitalIDModel) TableName() string {
	return "digital_ids"
}

func (d *DigitalIDModel) BeforeCreate(tx *gorm.DB) error {
	if d.DigitalIDID == uuid.Nil {
		d.DigitalIDID = uuid.New()
	}
	return nil
}
