package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResidentModel is the profile record provisioned when a resident
// registration request is approved. Demographic flags are copied from the
// originating request; household linkage may be fully null.
type ResidentModel struct {
	ResidentID              uuid.UUID  `gorm:"column:resident_id;type:uuid;primaryKey" json:"resident_id"`
	ResidentUserID          uuid.UUID  `gorm:"column:resident_user_id;type:uuid;uniqueIndex;not null" json:"resident_user_id"`
	ResidentFirstName       string     `gorm:"column:resident_first_name;size:100;not null" json:"resident_first_name"`
	ResidentLastName        string     `gorm:"column:resident_last_name;size:100;not null" json:"resident_last_name"`
	ResidentContactNo       string     `gorm:"column:resident_contact_no;size:20;not null" json:"resident_contact_no"`
	ResidentEmail           *string    `gorm:"column:resident_email;size:255" json:"resident_email,omitempty"`
	ResidentBirthdate       time.Time  `gorm:"column:resident_birthdate;not null" json:"resident_birthdate"`
	ResidentGender          string     `gorm:"column:resident_gender;size:20" json:"resident_gender"`
	ResidentAddress         string     `gorm:"column:resident_address;type:text" json:"resident_address"`
	ResidentIsHeadOfFamily  bool       `gorm:"column:resident_is_head_of_family;not null;default:false" json:"resident_is_head_of_family"`
	ResidentHouseholdID     *uuid.UUID `gorm:"column:resident_household_id;type:uuid" json:"resident_household_id,omitempty"`
	ResidentHeadID          *uuid.UUID `gorm:"column:resident_head_id;type:uuid" json:"resident_head_id,omitempty"`
	ResidentHouseholdNumber *string    `gorm:"column:resident_household_number;size:20" json:"resident_household_number,omitempty"`
	ResidentIs4PsMember     bool       `gorm:"column:resident_is_4ps_member;not null;default:false" json:"resident_is_4ps_member"`
	ResidentIsPWD           bool       `gorm:"column:resident_is_pwd;not null;default:false" json:"resident_is_pwd"`
	ResidentIsIndigenous    bool       `gorm:"column:resident_is_indigenous;not null;default:false" json:"resident_is_indigenous"`
	ResidentIsSLP           bool       `gorm:"column:resident_is_slp;not null;default:false" json:"resident_is_slp"`
	ResidentIsSenior        bool       `gorm:"column:resident_is_senior;not null;default:false" json:"resident_is_senior"`
	ResidentIssuedBy        uuid.UUID  `gorm:"column:resident_issued_by;type:uuid;not null" json:"resident_issued_by"`
	ResidentCreatedAt       time.Time  `gorm:"column:resident_created_at;autoCreateTime" json:"resident_created_at"`
	ResidentUpdatedAt       time.Time  `gorm:"column:resident_updated_at;autoUpdateTime" json:"resident_updated_at"`
}

func (ResidentModel) TableName() string {
	return "residents"
}

func (r *ResidentModel) BeforeCreate(tx *gorm.DB) error {
	if r.ResidentID == uuid.Nil {
		r.ResidentID = uuid.New()
	}
	return nil
}

func (r *ResidentModel) FullName() string {
	return r.ResidentFirstName + " " + r.ResidentLastName
}
