package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"loon-backend/utils"
)

// User is a booking customer. The booking and dashboard code reads
// FirstName/LastName for display and Email/Phone for notifications.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string    `gorm:"not null" json:"firstName"`
	LastName  string    `gorm:"not null" json:"lastName"`
	City      string    `json:"city"`
	District  string    `json:"district"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string    `json:"phone"` // optional, E.164 preferred
	Password  string    `gorm:"not null" json:"-"`

	gorm.Model
}

// Initialize UUID and hash password before creating
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

// DisplayName is the dashboard rendering of a customer name: first and last
// uppercased, falling back to whichever part exists, then "UNKNOWN USER".
func (u *User) DisplayName() string {
	first := strings.TrimSpace(u.FirstName)
	last := strings.TrimSpace(u.LastName)
	switch {
	case first != "" && last != "":
		return strings.ToUpper(first + " " + last)
	case first != "":
		return strings.ToUpper(first)
	case last != "":
		return strings.ToUpper(last)
	default:
		return "UNKNOWN USER"
	}
}
