package models

import (
	"time"

	"laundrypro-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an administrator account for the dashboard.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Phone    string    `json:"phone"`

	LastLogin *time.Time `json:"last_login"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`

	gorm.Model `json:"-"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
