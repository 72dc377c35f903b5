// services/stores.go
package services

import (
	"context"

	"github.com/google/uuid"
	"loon-backend/models"
)

// Narrow store interfaces consumed by the domain services. Production wiring
// uses the gorm repositories; tests substitute in-memory fakes.

type BookingStore interface {
	Insert(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	ListByServiceID(ctx context.Context, serviceID uuid.UUID) ([]models.Booking, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	ListPendingByDateRaw(ctx context.Context, dateRaw string) ([]models.Booking, error)
}

type ServiceStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	ListByCategory(ctx context.Context, category string) ([]models.Service, error)
}

type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
