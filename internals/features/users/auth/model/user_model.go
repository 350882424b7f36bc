package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ebarangay_backend/internals/constants"
)

// UserModel represents the users table. One row per provisioned account;
// rows are never deleted, only deactivated.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName  string    `gorm:"size:50;uniqueIndex;not null" json:"user_name" validate:"required,min=3,max=50"`
	Password  string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role      string    `gorm:"type:varchar(20);not null;default:'resident'" json:"role" validate:"required,oneof=resident staff admin"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleResident
	}
	return nil
}
