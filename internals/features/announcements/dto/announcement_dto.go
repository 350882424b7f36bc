package dto

import (
	"time"

	"github.com/google/uuid"

	"ebarangay_backend/internals/features/announcements/model"
)

// ============================
// Response DTO
// ============================

type AnnouncementDTO struct {
	AnnouncementID uuid.UUID `json:"announcement_id"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	IsPinned       bool      `json:"is_pinned"`
	PostedBy       uuid.UUID `json:"posted_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateAnnouncementRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=255"`
	Body     string `json:"body" validate:"required"`
	IsPinned bool   `json:"is_pinned"`
}

type UpdateAnnouncementRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=255"`
	Body     string `json:"body" validate:"required"`
	IsPinned bool   `json:"is_pinned"`
}

// ============================
// Converter
// ============================

func ToAnnouncementDTO(m model.AnnouncementModel) AnnouncementDTO {
	return AnnouncementDTO{
		AnnouncementID: m.AnnouncementID,
		Title:          m.AnnouncementTitle,
		Body:           m.AnnouncementBody,
		IsPinned:       m.AnnouncementIsPinned,
		PostedBy:       m.AnnouncementPostedBy,
		CreatedAt:      m.AnnouncementCreatedAt,
		UpdatedAt:      m.AnnouncementUpdatedAt,
	}
}
