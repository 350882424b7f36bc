package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	AnnouncementID        uuid.UUID `gorm:"column:announcement_id;type:uuid;primaryKey" json:"announcement_id"`
	AnnouncementTitle     string    `gorm:"column:announcement_title;type:varchar(255);not null" json:"announcement_title"`
	AnnouncementBody      string    `gorm:"column:announcement_body;type:text;not null" json:"announcement_body"`
	AnnouncementIsPinned  bool      `gorm:"column:announcement_is_pinned;not null;default:false" json:"announcement_is_pinned"`
	AnnouncementPostedBy  uuid.UUID `gorm:"column:announcement_posted_by;type:uuid;not null" json:"announcement_posted_by"`
	AnnouncementCreatedAt time.Time `gorm:"column:announcement_created_at;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at"`
}

// TableName sets the table name for AnnouncementModel
func (AnnouncementModel) TableName() string {
	return "announcements"
}

func (a *AnnouncementModel) BeforeCreate(tx *gorm.DB) error {
	if a.AnnouncementID == uuid.Nil {
		a.AnnouncementID = uuid.New()
	}
	return nil
}
