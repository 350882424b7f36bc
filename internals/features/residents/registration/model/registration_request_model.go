package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Request lifecycle. Transitions are one-way: PENDING moves to exactly one
// terminal status and the row is never touched again.
const (
	RequestStatusPending  = "PENDING"
	RequestStatusApproved = "APPROVED"
	RequestStatusRejected = "REJECTED"
)

// RegistrationRequestModel captures one applicant intake. It is the
// source of truth for applicant-declared data until approval, after which
// it becomes an immutable audit trail.
type RegistrationRequestModel struct {
	RequestID              uuid.UUID  `gorm:"column:request_id;type:uuid;primaryKey" json:"request_id"`
	RequestReferenceNumber string     `gorm:"column:request_reference_number;size:30;uniqueIndex;not null" json:"request_reference_number"`
	RequestFirstName       string     `gorm:"column:request_first_name;size:100;not null" json:"request_first_name"`
	RequestLastName        string     `gorm:"column:request_last_name;size:100;not null" json:"request_last_name"`
	RequestContactNo       string     `gorm:"column:request_contact_no;size:20;not null" json:"request_contact_no"`
	RequestEmail           *string    `gorm:"column:request_email;size:255" json:"request_email,omitempty"`
	RequestBirthdate       time.Time  `gorm:"column:request_birthdate;not null" json:"request_birthdate"`
	RequestGender          string     `gorm:"column:request_gender;size:20" json:"request_gender"`
	RequestAddress         string     `gorm:"column:request_address;type:text" json:"request_address"`
	RequestRole            string     `gorm:"column:request_role;type:varchar(20);not null;default:'resident'" json:"request_role"`
	RequestIsHeadOfFamily  bool       `gorm:"column:request_is_head_of_family;not null;default:false" json:"request_is_head_of_family"`
	RequestHeadID          *uuid.UUID `gorm:"column:request_head_id;type:uuid" json:"request_head_id,omitempty"`
	RequestHouseholdNumber *string    `gorm:"column:request_household_number;size:20" json:"request_household_number,omitempty"`
	RequestIs4PsMember     bool       `gorm:"column:request_is_4ps_member;not null;default:false" json:"request_is_4ps_member"`
	RequestIsPWD           bool       `gorm:"column:request_is_pwd;not null;default:false" json:"request_is_pwd"`
	RequestIsIndigenous    bool       `gorm:"column:request_is_indigenous;not null;default:false" json:"request_is_indigenous"`
	RequestIsSLP           bool       `gorm:"column:request_is_slp;not null;default:false" json:"request_is_slp"`
	RequestIsSenior        bool       `gorm:"column:request_is_senior;not null;default:false" json:"request_is_senior"`
	RequestStatus          string     `gorm:"column:request_status;type:varchar(20);not null;default:'PENDING';index" json:"request_status"`
	RequestApprovedBy      *uuid.UUID `gorm:"column:request_approved_by;type:uuid" json:"request_approved_by,omitempty"`
	RequestApprovedAt      *time.Time `gorm:"column:request_approved_at" json:"request_approved_at,omitempty"`
	RequestRejectionReason *string    `gorm:"column:request_rejection_reason;type:text" json:"request_rejection_reason,omitempty"`
	RequestCreatedAt       time.Time  `gorm:"column:request_created_at;autoCreateTime" json:"request_created_at"`
	RequestUpdatedAt       time.Time  `gorm:"column:request_updated_at;autoUpdateTime" json:"request_updated_at"`
}

func (RegistrationRequestModel) TableName() string {
	return "registration_requests"
}

func (r *RegistrationRequestModel) BeforeCreate(tx *gorm.DB) error {
	if r.RequestID == uuid.Nil {
		r.RequestID = uuid.New()
	}
	if r.RequestStatus == "" {
		r.RequestStatus = RequestStatusPending
	}
	return nil
}

func (r *RegistrationRequestModel) IsTerminal() bool {
	return r.RequestStatus != RequestStatusPending
}

func (r *RegistrationRequestModel) FullName() string {
	return r.RequestFirstName + " " + r.RequestLastName
}
