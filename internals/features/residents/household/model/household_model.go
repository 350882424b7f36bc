package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HouseholdModel groups residents under one head of family. The head token
// is the shared value members carry as head_id; head_resident_id is
// back-linked once the head's resident row exists.
type HouseholdModel struct {
	HouseholdID             uuid.UUID  `gorm:"column:household_id;type:uuid;primaryKey" json:"household_id"`
	HouseholdNumber         string     `gorm:"column:household_number;size:20;uniqueIndex;not null" json:"household_number"`
	HouseholdAddress        string     `gorm:"column:household_address;type:text;not null" json:"household_address"`
	HouseholdHeadToken      uuid.UUID  `gorm:"column:household_head_token;type:uuid;uniqueIndex;not null" json:"household_head_token"`
	HouseholdHeadResidentID *uuid.UUID `gorm:"column:household_head_resident_id;type:uuid" json:"household_head_resident_id,omitempty"`
	HouseholdCreatedAt      time.Time  `gorm:"column:household_created_at;autoCreateTime" json:"household_created_at"`
	HouseholdUpdatedAt      time.Time  `gorm:"column:household_updated_at;autoUpdateTime" json:"household_updated_at"`
}

func (HouseholdModel) TableName() string {
	return "households"
}

func (h *HouseholdModel) BeforeCreate(tx *gorm.DB) error {
	if h.HouseholdID == uuid.Nil {
		h.HouseholdID = uuid.New()
	}
	if h.HouseholdHeadToken == uuid.Nil {
		h.HouseholdHeadToken = uuid.New()
	}
	return nil
}
