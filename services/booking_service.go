// services/booking_service.go
package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"loon-backend/cache"
	"loon-backend/metrics"
	"loon-backend/models"
	"loon-backend/utils"
)

var (
	ErrInvalidBooking = errors.New("booking input is incomplete")
	ErrInvalidSlot    = errors.New("time slot is not one of the offered ranges")
	ErrNotPending     = errors.New("booking is not pending")
	ErrNotOwner       = errors.New("booking does not belong to this account")
)

// BookingService owns the booking lifecycle: create as pending, then a single
// transition to done (salon approval) or canceled (customer). Terminal states
// refuse further transitions, which also guarantees the approval notification
// fires at most once per booking.
type BookingService struct {
	bookings BookingStore
	users    UserStore
	services ServiceStore
	cache    *cache.ServiceCache
	notifier Notifier
}

func NewBookingService(bookings BookingStore, users UserStore, services ServiceStore, svcCache *cache.ServiceCache, notifier Notifier) *BookingService {
	return &BookingService{
		bookings: bookings,
		users:    users,
		services: services,
		cache:    svcCache,
		notifier: notifier,
	}
}

type CreateBookingInput struct {
	ServiceID   uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	TimeSlot    string
	Price       float64
	ServiceName string
}

// Create persists a new pending booking. Both date representations are derived
// from the same calendar date; price and service name are stored as snapshots
// so later catalog edits never change booking history. The id is assigned by
// the store on insert.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if input.ServiceID == uuid.Nil || input.UserID == uuid.Nil || input.Date.IsZero() || input.TimeSlot == "" {
		return nil, ErrInvalidBooking
	}
	if !utils.IsValidTimeSlot(input.TimeSlot) {
		return nil, ErrInvalidSlot
	}

	booking := &models.Booking{
		ServiceID:      input.ServiceID,
		UserID:         input.UserID,
		ServiceName:    input.ServiceName,
		Price:          input.Price,
		BookingDate:    utils.FormatBookingDate(input.Date),
		BookingDateRaw: utils.FormatBookingDateRaw(input.Date),
		TimeSlot:       input.TimeSlot,
		Status:         models.BookingStatusPending,
	}

	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, err
	}
	metrics.BookingTransition(models.BookingStatusPending)
	return booking, nil
}

// Cancel transitions a pending booking to canceled. Only the booking's owner
// may cancel, and only while the booking is still pending.
func (s *BookingService) Cancel(ctx context.Context, bookingID, userID uuid.UUID) error {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return ErrNotOwner
	}
	if booking.Status != models.BookingStatusPending {
		return ErrNotPending
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, models.BookingStatusCanceled); err != nil {
		return err
	}
	metrics.BookingTransition(models.BookingStatusCanceled)
	return nil
}

// Approve transitions a pending booking to done and triggers the customer
// notification. Notification is best-effort: a missing customer record or
// contact is logged and skipped, and the approval still succeeds. A failed
// status update leaves the booking in its prior state and returns the error.
func (s *BookingService) Approve(ctx context.Context, bookingID, salonID uuid.UUID) error {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.ServiceID != salonID {
		return ErrNotOwner
	}
	if booking.Status != models.BookingStatusPending {
		return ErrNotPending
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, models.BookingStatusDone); err != nil {
		return err
	}
	metrics.BookingTransition(models.BookingStatusDone)

	s.notifyApproval(ctx, booking)
	return nil
}

func (s *BookingService) notifyApproval(ctx context.Context, booking *models.Booking) {
	user, err := s.users.GetByID(ctx, booking.UserID)
	if err != nil {
		log.Printf("Customer %s not found for booking %s, skipping notification: %v",
			booking.UserID, booking.ID, err)
		metrics.NotificationResult("approval", "skipped")
		return
	}
	if user.Email == "" && user.Phone == "" {
		log.Printf("No contact on file for user %s, skipping approval notification", user.ID)
		metrics.NotificationResult("approval", "skipped")
		return
	}

	notice := ApprovalNotice{
		BookingID:   booking.ID,
		UserID:      user.ID,
		Email:       user.Email,
		Phone:       user.Phone,
		FirstName:   user.FirstName,
		BookingDate: booking.BookingDate,
		TimeSlot:    booking.TimeSlot,
		Price:       booking.Price,
		ServiceName: booking.ServiceName,
	}
	if err := s.notifier.NotifyApproval(notice); err != nil {
		log.Printf("Approval notification failed for booking %s: %v", booking.ID, err)
	}
}

// UserBooking is a customer's booking enriched with the salon's current details
// for display. The booking's own price/name stay the snapshot values.
type UserBooking struct {
	models.Booking
	SalonName     string `json:"salonName"`
	SalonCategory string `json:"salonCategory"`
	SalonImage    string `json:"salonImage"`
}

type UserBookings struct {
	Pending []UserBooking `json:"pending"`
	Done    []UserBooking `json:"done"`
}

// ListForUser returns the customer's bookings partitioned by status, each
// enriched with salon details through the redis-backed cache. Canceled
// bookings are not shown.
func (s *BookingService) ListForUser(ctx context.Context, userID uuid.UUID) (*UserBookings, error) {
	bookings, err := s.bookings.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &UserBookings{Pending: []UserBooking{}, Done: []UserBooking{}}
	for _, booking := range bookings {
		enriched := UserBooking{Booking: booking}
		if svc := s.lookupService(ctx, booking.ServiceID); svc != nil {
			enriched.SalonName = svc.Name
			enriched.SalonCategory = svc.Category
			enriched.SalonImage = svc.ProfileImage
		}
		switch booking.Status {
		case models.BookingStatusPending:
			result.Pending = append(result.Pending, enriched)
		case models.BookingStatusDone:
			result.Done = append(result.Done, enriched)
		}
	}
	return result, nil
}

func (s *BookingService) lookupService(ctx context.Context, id uuid.UUID) *models.Service {
	if svc, ok := s.cache.Get(ctx, id); ok {
		return svc
	}
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		log.Printf("Salon details unavailable for service %s: %v", id, err)
		return nil
	}
	s.cache.Set(ctx, svc)
	return svc
}
