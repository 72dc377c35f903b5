package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking statuses. A booking starts as pending and only ever moves to
// done (approved by the salon) or canceled (by the customer). Both are terminal.
const (
	BookingStatusPending  = "pending"
	BookingStatusDone     = "done"
	BookingStatusCanceled = "canceled"
)

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	// ServiceName and Price are snapshots taken at booking time. Later edits to
	// the service catalog never rewrite booking history.
	ServiceName string  `gorm:"not null" json:"serviceName"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	BookingDate    string `gorm:"not null" json:"bookingDate"`           // display form, e.g. "28 March 2025"
	BookingDateRaw string `gorm:"index;not null" json:"bookingDateRaw"`  // queryable form, e.g. "2025-03-28"
	TimeSlot       string `gorm:"not null" json:"timeSlot"`
	Status         string `gorm:"type:varchar(20);default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
