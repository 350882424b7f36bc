package dto

import (
	"time"

	"github.com/google/uuid"

	"ebarangay_backend/internals/features/residents/resident/model"
)

// ============================
// Response DTO
// ============================

type ResidentDTO struct {
	ResidentID       uuid.UUID  `json:"resident_id"`
	UserID           uuid.UUID  `json:"user_id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	ContactNo        string     `json:"contact_no"`
	Email            *string    `json:"email,omitempty"`
	Birthdate        string     `json:"birthdate"`
	Gender           string     `json:"gender,omitempty"`
	Address          string     `json:"address"`
	IsHeadOfFamily   bool       `json:"is_head_of_family"`
	HouseholdID      *uuid.UUID `json:"household_id,omitempty"`
	HeadID           *uuid.UUID `json:"head_id,omitempty"`
	HouseholdNumber  *string    `json:"household_number,omitempty"`
	Is4PsMember      bool       `json:"is_4ps_member"`
	IsPWD            bool       `json:"is_pwd"`
	IsIndigenous     bool       `json:"is_indigenous"`
	IsSLPBeneficiary bool       `json:"is_slp_beneficiary"`
	IsSenior         bool       `json:"is_senior"`
	CreatedAt        time.Time  `json:"created_at"`
}

func ToResidentDTO(m model.ResidentModel) ResidentDTO {
	return ResidentDTO{
		ResidentID:       m.ResidentID,
		UserID:           m.ResidentUserID,
		FirstName:        m.ResidentFirstName,
		LastName:         m.ResidentLastName,
		ContactNo:        m.ResidentContactNo,
		Email:            m.ResidentEmail,
		Birthdate:        m.ResidentBirthdate.Format("2006-01-02"),
		Gender:           m.ResidentGender,
		Address:          m.ResidentAddress,
		IsHeadOfFamily:   m.ResidentIsHeadOfFamily,
		HouseholdID:      m.ResidentHouseholdID,
		HeadID:           m.ResidentHeadID,
		HouseholdNumber:  m.ResidentHouseholdNumber,
		Is4PsMember:      m.ResidentIs4PsMember,
		IsPWD:            m.ResidentIsPWD,
		IsIndigenous:     m.ResidentIsIndigenous,
		IsSLPBeneficiary: m.ResidentIsSLP,
		IsSenior:         m.ResidentIsSenior,
		CreatedAt:        m.ResidentCreatedAt,
	}
}
