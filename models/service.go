package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is an offered laundry service. Price is a legacy display string,
// either a single amount ("R170") or a range ("R170-R470"); the weight-tier
// rate table is the authoritative pricing source where one exists.
type Service struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     string    `gorm:"not null" json:"price"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Deletion is hard: no DeletedAt column, and no referential protection for
// bookings that still point at a removed service.

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
