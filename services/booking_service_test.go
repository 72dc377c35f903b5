package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"loon-backend/models"
	"loon-backend/utils"
)

type memBookingStore struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]*models.Booking
	updateErr error
}

func newMemBookingStore() *memBookingStore {
	return &memBookingStore{byID: map[uuid.UUID]*models.Booking{}}
}

func (m *memBookingStore) Insert(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now()
	clone := *b
	m.byID[b.ID] = &clone
	return nil
}

func (m *memBookingStore) GetByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.byID[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memBookingStore) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	b, ok := m.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.Status = status
	return nil
}

func (m *memBookingStore) ListByServiceID(_ context.Context, serviceID uuid.UUID) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.byID {
		if b.ServiceID == serviceID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memBookingStore) ListByUserID(_ context.Context, userID uuid.UUID) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.byID {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memBookingStore) ListPendingByDateRaw(_ context.Context, dateRaw string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.byID {
		if b.BookingDateRaw == dateRaw && b.Status == models.BookingStatusPending {
			out = append(out, *b)
		}
	}
	return out, nil
}

type memUserStore struct {
	byID map[uuid.UUID]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byID: map[uuid.UUID]*models.User{}}
}

func (m *memUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type memServiceStore struct {
	byID       map[uuid.UUID]*models.Service
	byCategory map[string][]models.Service
	listErr    error
	listCalls  int
}

func newMemServiceStore() *memServiceStore {
	return &memServiceStore{
		byID:       map[uuid.UUID]*models.Service{},
		byCategory: map[string][]models.Service{},
	}
}

func (m *memServiceStore) add(s models.Service) {
	clone := s
	m.byID[s.ID] = &clone
	m.byCategory[s.Category] = append(m.byCategory[s.Category], s)
}

func (m *memServiceStore) GetByID(_ context.Context, id uuid.UUID) (*models.Service, error) {
	if s, ok := m.byID[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memServiceStore) ListByCategory(_ context.Context, category string) ([]models.Service, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.byCategory[category], nil
}

type fakeNotifier struct {
	approvals []ApprovalNotice
	reminders []ReminderNotice
	err       error
}

func (f *fakeNotifier) NotifyApproval(n ApprovalNotice) error {
	f.approvals = append(f.approvals, n)
	return f.err
}

func (f *fakeNotifier) NotifyReminder(n ReminderNotice) error {
	f.reminders = append(f.reminders, n)
	return f.err
}

func newBookingService(bookings *memBookingStore, users *memUserStore, svcs *memServiceStore, notifier *fakeNotifier) *BookingService {
	return NewBookingService(bookings, users, svcs, nil, notifier)
}

func TestCreateBooking(t *testing.T) {
	bookings := newMemBookingStore()
	s := newBookingService(bookings, newMemUserStore(), newMemServiceStore(), &fakeNotifier{})

	date := time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC)
	booking, err := s.Create(context.Background(), CreateBookingInput{
		ServiceID:   uuid.New(),
		UserID:      uuid.New(),
		Date:        date,
		TimeSlot:    "1:00 PM - 2:00 PM",
		Price:       30,
		ServiceName: "Classic Cut",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if booking.ID == uuid.Nil {
		t.Fatalf("expected store-assigned id")
	}
	if booking.Status != models.BookingStatusPending {
		t.Fatalf("expected pending status, got %q", booking.Status)
	}
	if booking.BookingDate != "28 March 2025" {
		t.Fatalf("unexpected display date %q", booking.BookingDate)
	}
	if booking.BookingDateRaw != "2025-03-28" {
		t.Fatalf("unexpected raw date %q", booking.BookingDateRaw)
	}

	// Both representations must round-trip to the same calendar date.
	parsed, err := utils.ParseBookingDateRaw(booking.BookingDateRaw)
	if err != nil {
		t.Fatalf("raw date does not parse: %v", err)
	}
	if utils.FormatBookingDate(parsed) != booking.BookingDate {
		t.Fatalf("date forms diverge: %q vs %q", utils.FormatBookingDate(parsed), booking.BookingDate)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	s := newBookingService(newMemBookingStore(), newMemUserStore(), newMemServiceStore(), &fakeNotifier{})
	date := time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC)

	_, err := s.Create(context.Background(), CreateBookingInput{
		UserID: uuid.New(), Date: date, TimeSlot: "1:00 PM - 2:00 PM",
	})
	if !errors.Is(err, ErrInvalidBooking) {
		t.Fatalf("expected ErrInvalidBooking for missing service id, got %v", err)
	}

	_, err = s.Create(context.Background(), CreateBookingInput{
		ServiceID: uuid.New(), UserID: uuid.New(), Date: date, TimeSlot: "5:00 PM - 6:00 PM",
	})
	if !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot for unoffered slot, got %v", err)
	}
}

func TestCancelBooking(t *testing.T) {
	bookings := newMemBookingStore()
	s := newBookingService(bookings, newMemUserStore(), newMemServiceStore(), &fakeNotifier{})
	userID := uuid.New()

	booking, err := s.Create(context.Background(), CreateBookingInput{
		ServiceID: uuid.New(), UserID: userID,
		Date: time.Now(), TimeSlot: "9:00 AM - 10:00 AM",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := s.Cancel(context.Background(), booking.ID, uuid.New()); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner for foreign cancel, got %v", err)
	}

	if err := s.Cancel(context.Background(), booking.ID, userID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	got, _ := bookings.GetByID(context.Background(), booking.ID)
	if got.Status != models.BookingStatusCanceled {
		t.Fatalf("expected canceled status, got %q", got.Status)
	}

	// Canceled is terminal.
	if err := s.Cancel(context.Background(), booking.ID, userID); !errors.Is(err, ErrNotPending) {
		t.Fatalf("expected ErrNotPending on second cancel, got %v", err)
	}
}

func TestApproveBookingNotifiesOnce(t *testing.T) {
	bookings := newMemBookingStore()
	users := newMemUserStore()
	notifier := &fakeNotifier{}
	s := newBookingService(bookings, users, newMemServiceStore(), notifier)

	salonID := uuid.New()
	userID := uuid.New()
	users.byID[userID] = &models.User{ID: userID, FirstName: "Jane", LastName: "Perera", Email: "jane@example.com", Phone: "+14155550100"}

	booking, err := s.Create(context.Background(), CreateBookingInput{
		ServiceID: salonID, UserID: userID,
		Date:     time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC),
		TimeSlot: "2:00 PM - 3:00 PM", Price: 85.50, ServiceName: "Glow Spa",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := s.Approve(context.Background(), booking.ID, salonID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	got, _ := bookings.GetByID(context.Background(), booking.ID)
	if got.Status != models.BookingStatusDone {
		t.Fatalf("expected done status, got %q", got.Status)
	}

	if len(notifier.approvals) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifier.approvals))
	}
	notice := notifier.approvals[0]
	if notice.ServiceName != "Glow Spa" || notice.Price != 85.50 ||
		notice.BookingDate != "28 March 2025" || notice.TimeSlot != "2:00 PM - 3:00 PM" {
		t.Fatalf("notification missing snapshot fields: %+v", notice)
	}
	if notice.Email != "jane@example.com" || notice.FirstName != "Jane" {
		t.Fatalf("notification missing customer contact: %+v", notice)
	}

	// Done is terminal: a repeat approve is refused and must not re-notify.
	if err := s.Approve(context.Background(), booking.ID, salonID); !errors.Is(err, ErrNotPending) {
		t.Fatalf("expected ErrNotPending on second approve, got %v", err)
	}
	if len(notifier.approvals) != 1 {
		t.Fatalf("second approve re-triggered notification")
	}
}

func TestApproveForeignBooking(t *testing.T) {
	bookings := newMemBookingStore()
	s := newBookingService(bookings, newMemUserStore(), newMemServiceStore(), &fakeNotifier{})

	booking, err := s.Create(context.Background(), CreateBookingInput{
		ServiceID: uuid.New(), UserID: uuid.New(),
		Date: time.Now(), TimeSlot: "9:00 AM - 10:00 AM",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := s.Approve(context.Background(), booking.ID, uuid.New()); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestApproveSkipsNotificationWithoutContact(t *testing.T) {
	bookings := newMemBookingStore()
	users := newMemUserStore()
	notifier := &fakeNotifier{}
	s := newBookingService(bookings, users, newMemServiceStore(), notifier)

	salonID := uuid.New()
	userID := uuid.New()
	users.byID[userID] = &models.User{ID: userID, FirstName: "Jane"} // no email, no phone

	booking, err := s.Create(context.Background(), CreateBookingInput{
		ServiceID: salonID, UserID: userID,
		Date: time.Now(), TimeSlot: "9:00 AM - 10:00 AM",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Approval still succeeds; the notification is skipped, not failed.
	if err := s.Approve(context.Background(), booking.ID, salonID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if len(notifier.approvals) != 0 {
		t.Fatalf("expected no notification without contact details")
	}

	got, _ := bookings.GetByID(context.Background(), booking.ID)
	if got.Status != models.BookingStatusDone {
		t.Fatalf("expected done status, got %q", got.Status)
	}
}

func TestApproveSkipsNotificationForMissingUser(t *testing.T) {
	bookings := newMemBookingStore()
	notifier := &fakeNotifier{}
	s := newBookingService(bookings, newMemUserStore(), newMemServiceStore(), notifier)

	salonID := uuid.New()
	booking, err := s.Create(context.Background(), CreateBookingInput{
		ServiceID: salonID, UserID: uuid.New(),
		Date: time.Now(), TimeSlot: "9:00 AM - 10:00 AM",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := s.Approve(context.Background(), booking.ID, salonID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if len(notifier.approvals) != 0 {
		t.Fatalf("expected no notification for unknown user")
	}
}

func TestListForUserPartitionsAndEnriches(t *testing.T) {
	bookings := newMemBookingStore()
	svcs := newMemServiceStore()
	s := newBookingService(bookings, newMemUserStore(), svcs, &fakeNotifier{})

	salonID := uuid.New()
	userID := uuid.New()
	svcs.add(models.Service{ID: salonID, Name: "Glow Spa", Category: "Spa", ProfileImage: "img"})

	mk := func(status string) {
		b, err := s.Create(context.Background(), CreateBookingInput{
			ServiceID: salonID, UserID: userID,
			Date: time.Now(), TimeSlot: "9:00 AM - 10:00 AM",
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if status != models.BookingStatusPending {
			if err := bookings.UpdateStatus(context.Background(), b.ID, status); err != nil {
				t.Fatalf("seed status failed: %v", err)
			}
		}
	}
	mk(models.BookingStatusPending)
	mk(models.BookingStatusDone)
	mk(models.BookingStatusCanceled)

	got, err := s.ListForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got.Pending) != 1 || len(got.Done) != 1 {
		t.Fatalf("expected 1 pending and 1 done, got %d/%d", len(got.Pending), len(got.Done))
	}
	if got.Pending[0].SalonName != "Glow Spa" || got.Pending[0].SalonCategory != "Spa" {
		t.Fatalf("expected salon enrichment, got %+v", got.Pending[0])
	}
}
