package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"loon-backend/utils"
)

// Service is a salon's bookable offering. Each salon owns exactly one service
// row keyed by the owner's account id, so the service id doubles as the salon
// id throughout the booking and dashboard code.
type Service struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Category     string    `gorm:"index;not null" json:"category"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	ProfileImage string    `gorm:"type:text" json:"profileImage"` // base64, optional
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(s.Password)
	if err != nil {
		return err
	}
	s.Password = hashed
	return
}
