package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is one customer order. Collection and departure dates are
// timezone-naive calendar dates stored as "YYYY-MM-DD" strings so that
// grouping and month filtering never shift across timezones.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Phone     string `gorm:"not null" json:"phone"`

	// Weak reference: deleting the service leaves the booking dangling.
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`
	Service   Service   `gorm:"foreignKey:ServiceID;constraint:OnDelete:NO ACTION" json:"service"`

	CollectionDate string `gorm:"type:varchar(10);index;not null" json:"collection_date"`
	DepartureDate  string `gorm:"type:varchar(10);not null" json:"departure_date"`

	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalPrice *float64      `gorm:"type:decimal(10,2)" json:"total_price"`
	WeightKg   *float64      `gorm:"type:decimal(6,2)" json:"weight_kg"`
	Notes      string        `json:"notes"`

	PaymentMethod *PaymentMethod `gorm:"type:varchar(10)" json:"payment_method"`

	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	return
}

// CustomerName is the concatenation the booking search matches against.
func (b *Booking) CustomerName() string {
	return b.FirstName + " " + b.LastName
}

// IsAwaitingPayment reports the derived completed-but-unsettled sub-state.
// It is never persisted.
func (b *Booking) IsAwaitingPayment() bool {
	return b.Status == StatusCompleted && b.PaymentMethod == nil
}

// IsSettled reports whether the booking is completed and paid.
func (b *Booking) IsSettled() bool {
	return b.Status == StatusCompleted && b.PaymentMethod != nil
}
