package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"loon-backend/models"
)

// BookingRepository is the gorm-backed store for bookings. Status changes are
// single field updates with no compare-and-swap; concurrent writers race with
// last-write-wins, which callers guard with a read-then-check precondition.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *BookingRepository) ListByServiceID(ctx context.Context, serviceID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).Where("service_id = ?", serviceID).Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListPendingByDateRaw(ctx context.Context, dateRaw string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("booking_date_raw = ? AND status = ?", dateRaw, models.BookingStatusPending).
		Find(&bookings).Error
	return bookings, err
}
