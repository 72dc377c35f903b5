// services/dashboard_service.go
package services

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"loon-backend/metrics"
	"loon-backend/models"
)

// EnrichedBooking is a booking joined with the customer's display name.
type EnrichedBooking struct {
	models.Booking
	UserName string `json:"userName"`
}

// Dashboard is the salon overview: every booking for the salon with resolved
// customer names, total count regardless of status, and revenue over completed
// bookings only.
type Dashboard struct {
	TotalCount   int               `json:"totalCount"`
	TotalRevenue float64           `json:"totalRevenue"`
	Pending      []EnrichedBooking `json:"pending"`
	Done         []EnrichedBooking `json:"done"`
	Bookings     []EnrichedBooking `json:"bookings"`
}

type DashboardService struct {
	bookings BookingStore
	users    UserStore
}

func NewDashboardService(bookings BookingStore, users UserStore) *DashboardService {
	return &DashboardService{bookings: bookings, users: users}
}

// LoadDashboard aggregates a salon's bookings. Customer names are resolved
// with one lookup per booking, fanned out concurrently and joined before
// returning; partial results are never emitted. The salon id is the service id
// (one service row per salon). Cancellation of ctx bounds the name join: a
// canceled lookup falls back to "UNKNOWN USER" rather than hanging.
func (s *DashboardService) LoadDashboard(ctx context.Context, salonID uuid.UUID) (*Dashboard, error) {
	bookings, err := s.bookings.ListByServiceID(ctx, salonID)
	if err != nil {
		return nil, err
	}
	metrics.DashboardLoad()

	enriched := make([]EnrichedBooking, len(bookings))
	var wg sync.WaitGroup
	for i := range bookings {
		enriched[i] = EnrichedBooking{Booking: bookings[i]}
		wg.Add(1)
		go func(i int, userID uuid.UUID) {
			defer wg.Done()
			enriched[i].UserName = s.resolveUserName(ctx, userID)
		}(i, bookings[i].UserID)
	}
	wg.Wait()

	dashboard := &Dashboard{
		TotalCount: len(enriched),
		Pending:    []EnrichedBooking{},
		Done:       []EnrichedBooking{},
		Bookings:   enriched,
	}
	for _, b := range enriched {
		switch b.Status {
		case models.BookingStatusPending:
			dashboard.Pending = append(dashboard.Pending, b)
		case models.BookingStatusDone:
			dashboard.TotalRevenue += b.Price
			dashboard.Done = append(dashboard.Done, b)
		}
	}
	return dashboard, nil
}

func (s *DashboardService) resolveUserName(ctx context.Context, userID uuid.UUID) string {
	if userID == uuid.Nil {
		return "UNKNOWN USER"
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		log.Printf("Failed to fetch user %s for dashboard: %v", userID, err)
		return "UNKNOWN USER"
	}
	return user.DisplayName()
}
