// services/reminder_service.go
package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"loon-backend/models"
	"loon-backend/utils"
)

// ReminderService sends next-day reminders for pending bookings. It runs off
// the canonical booking_date_raw form, which exists exactly so date equality
// queries like this one work.
type ReminderService struct {
	bookings BookingStore
	users    UserStore
	notifier Notifier
}

func NewReminderService(bookings BookingStore, users UserStore, notifier Notifier) *ReminderService {
	return &ReminderService{bookings: bookings, users: users, notifier: notifier}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders(context.Background())
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders(ctx context.Context) {
	tomorrow := utils.FormatBookingDateRaw(time.Now().AddDate(0, 0, 1))
	log.Printf("Processing booking reminders for %s...", tomorrow)

	bookings, err := s.bookings.ListPendingByDateRaw(ctx, tomorrow)
	if err != nil {
		log.Printf("Failed to fetch bookings for %s: %v", tomorrow, err)
		return
	}

	for _, booking := range bookings {
		s.remind(ctx, booking)
	}

	log.Printf("Booking reminder processing completed, %d bookings", len(bookings))
}

func (s *ReminderService) remind(ctx context.Context, booking models.Booking) {
	user, err := s.users.GetByID(ctx, booking.UserID)
	if err != nil {
		log.Printf("Customer %s not found for booking %s, skipping reminder: %v",
			booking.UserID, booking.ID, err)
		return
	}

	notice := ReminderNotice{
		BookingID:   booking.ID,
		UserID:      user.ID,
		Email:       user.Email,
		Phone:       user.Phone,
		FirstName:   user.FirstName,
		BookingDate: booking.BookingDate,
		TimeSlot:    booking.TimeSlot,
		ServiceName: booking.ServiceName,
	}
	if err := s.notifier.NotifyReminder(notice); err != nil {
		log.Printf("Reminder failed for booking %s: %v", booking.ID, err)
	}
}
