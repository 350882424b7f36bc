package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback moves forward only: OPEN → IN_REVIEW → RESOLVED.
const (
	FeedbackStatusOpen     = "OPEN"
	FeedbackStatusInReview = "IN_REVIEW"
	FeedbackStatusResolved = "RESOLVED"
)

type FeedbackModel struct {
	FeedbackID          uuid.UUID  `gorm:"column:feedback_id;type:uuid;primaryKey" json:"feedback_id"`
	FeedbackUserID      uuid.UUID  `gorm:"column:feedback_user_id;type:uuid;not null;index" json:"feedback_user_id"`
	FeedbackSubject     string     `gorm:"column:feedback_subject;type:varchar(255);not null" json:"feedback_subject"`
	FeedbackMessage     string     `gorm:"column:feedback_message;type:text;not null" json:"feedback_message"`
	FeedbackStatus      string     `gorm:"column:feedback_status;type:varchar(20);not null;default:'OPEN'" json:"feedback_status"`
	FeedbackResponse    *string    `gorm:"column:feedback_response;type:text" json:"feedback_response,omitempty"`
	FeedbackRespondedBy *uuid.UUID `gorm:"column:feedback_responded_by;type:uuid" json:"feedback_responded_by,omitempty"`
	FeedbackCreatedAt   time.Time  `gorm:"column:feedback_created_at;autoCreateTime" json:"feedback_created_at"`
	FeedbackUpdatedAt   time.Time  `gorm:"column:feedback_updated_at;autoUpdateTime" json:"feedback_updated_at"`
}

func (FeedbackModel) TableName() string {
	return "feedbacks"
}

func (f *FeedbackModel) BeforeCreate(tx *gorm.DB) error {
	if f.FeedbackID == uuid.Nil {
		f.FeedbackID = uuid.New()
	}
	if f.FeedbackStatus == "" {
		f.FeedbackStatus = FeedbackStatusOpen
	}
	return nil
}

var feedbackStatusRank = map[string]int{
	FeedbackStatusOpen:     0,
	FeedbackStatusInReview: 1,
	FeedbackStatusResolved: 2,
}

// CanTransitionTo enforces the one-way forward rule.
func (f *FeedbackModel) CanTransitionTo(status string) bool {
	to, ok := feedbackStatusRank[status]
	if !ok {
		return false
	}
	return to > feedbackStatusRank[f.FeedbackStatus]
}
