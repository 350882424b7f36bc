package dto

import (
	"time"

	"github.com/google/uuid"

	"ebarangay_backend/internals/features/feedback/model"
)

// ============================
// Request DTOs
// ============================

type CreateFeedbackRequest struct {
	Subject string `json:"subject" validate:"required,min=3,max=255"`
	Message string `json:"message" validate:"required"`
}

type RespondFeedbackRequest struct {
	Status   string  `json:"status" validate:"required,oneof=IN_REVIEW RESOLVED"`
	Response *string `json:"response" validate:"omitempty,max=2000"`
}

// ============================
// Response DTO
// ============================

type FeedbackDTO struct {
	FeedbackID  uuid.UUID  `json:"feedback_id"`
	UserID      uuid.UUID  `json:"user_id"`
	Subject     string     `json:"subject"`
	Message     string     `json:"message"`
	Status      string     `json:"status"`
	Response    *string    `json:"response,omitempty"`
	RespondedBy *uuid.UUID `json:"responded_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToFeedbackDTO(m model.FeedbackModel) FeedbackDTO {
	return FeedbackDTO{
		FeedbackID:  m.FeedbackID,
		UserID:      m.FeedbackUserID,
		Subject:     m.FeedbackSubject,
		Message:     m.FeedbackMessage,
		Status:      m.FeedbackStatus,
		Response:    m.FeedbackResponse,
		RespondedBy: m.FeedbackRespondedBy,
		CreatedAt:   m.FeedbackCreatedAt,
		UpdatedAt:   m.FeedbackUpdatedAt,
	}
}
