package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffModel is the back-office profile for approved staff and admin
// accounts. Same provisioning path as residents, minus the digital ID.
type StaffModel struct {
	StaffID              uuid.UUID  `gorm:"column:staff_id;type:uuid;primaryKey" json:"staff_id"`
	StaffUserID          uuid.UUID  `gorm:"column:staff_user_id;type:uuid;uniqueIndex;not null" json:"staff_user_id"`
	StaffFirstName       string     `gorm:"column:staff_first_name;size:100;not null" json:"staff_first_name"`
	StaffLastName        string     `gorm:"column:staff_last_name;size:100;not null" json:"staff_last_name"`
	StaffContactNo       string     `gorm:"column:staff_contact_no;size:20;not null" json:"staff_contact_no"`
	StaffEmail           *string    `gorm:"column:staff_email;size:255" json:"staff_email,omitempty"`
	StaffBirthdate       time.Time  `gorm:"column:staff_birthdate;not null" json:"staff_birthdate"`
	StaffGender          string     `gorm:"column:staff_gender;size:20" json:"staff_gender"`
	StaffAddress         string     `gorm:"column:staff_address;type:text" json:"staff_address"`
	StaffHouseholdNumber *string    `gorm:"column:staff_household_number;size:20" json:"staff_household_number,omitempty"`
	StaffIs4PsMember     bool       `gorm:"column:staff_is_4ps_member;not null;default:false" json:"staff_is_4ps_member"`
	StaffIsPWD           bool       `gorm:"column:staff_is_pwd;not null;default:false" json:"staff_is_pwd"`
	StaffIsIndigenous    bool       `gorm:"column:staff_is_indigenous;not null;default:false" json:"staff_is_indigenous"`
	StaffIsSLP           bool       `gorm:"column:staff_is_slp;not null;default:false" json:"staff_is_slp"`
	StaffIsSenior        bool       `gorm:"column:staff_is_senior;not null;default:false" json:"staff_is_senior"`
	StaffIssuedBy        uuid.UUID  `gorm:"column:staff_issued_by;type:uuid;not null" json:"staff_issued_by"`
	StaffCreatedAt       time.Time  `gorm:"column:staff_created_at;autoCreateTime" json:"staff_created_at"`
	StaffUpdatedAt       time.Time  `gorm:"column:staff_updated_at;autoUpdateTime" json:"staff_updated_at"`
}

func (StaffModel) TableName() string {
	return "staffs"
}

func (s *StaffModel) BeforeCreate(tx *gorm.DB) error {
	if s.StaffID == uuid.Nil {
		s.StaffID = uuid.New()
	}
	return nil
}
