// services/notifier.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
	"loon-backend/metrics"
	"loon-backend/models"
)

// ApprovalNotice carries a booking's denormalized snapshot plus the customer
// contact resolved at approval time.
type ApprovalNotice struct {
	BookingID   uuid.UUID
	UserID      uuid.UUID
	Email       string
	Phone       string
	FirstName   string
	BookingDate string
	TimeSlot    string
	Price       float64
	ServiceName string
}

// ReminderNotice carries the fields for a next-day booking reminder.
type ReminderNotice struct {
	BookingID   uuid.UUID
	UserID      uuid.UUID
	Email       string
	Phone       string
	FirstName   string
	BookingDate string
	TimeSlot    string
	ServiceName string
}

// Notifier delivers customer-facing messages. Delivery is best-effort: callers
// log failures and never propagate them to the operation that triggered the
// notification.
type Notifier interface {
	NotifyApproval(notice ApprovalNotice) error
	NotifyReminder(notice ReminderNotice) error
}

// TwilioNotifier sends via WhatsApp when the customer phone is in E.164 form
// with a leading '+', otherwise plain SMS. Customers without a phone on file
// are skipped. Every attempt is recorded in notification_logs.
type TwilioNotifier struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewTwilioNotifier(db *gorm.DB) *TwilioNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioNotifier{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (n *TwilioNotifier) NotifyApproval(notice ApprovalNotice) error {
	name := notice.FirstName
	if name == "" {
		name = "Valued Customer"
	}
	body := fmt.Sprintf(
		"Hello %s, your booking at %s has been approved! Date: %s | Time: %s | Price: $%.2f. See you soon!",
		name, notice.ServiceName, notice.BookingDate, notice.TimeSlot, notice.Price,
	)
	return n.send("approval", notice.BookingID, notice.UserID, notice.Phone, body)
}

func (n *TwilioNotifier) NotifyReminder(notice ReminderNotice) error {
	name := notice.FirstName
	if name == "" {
		name = "Valued Customer"
	}
	body := fmt.Sprintf(
		"Hello %s, a reminder for your booking at %s tomorrow, %s (%s).",
		name, notice.ServiceName, notice.BookingDate, notice.TimeSlot,
	)
	return n.send("reminder", notice.BookingID, notice.UserID, notice.Phone, body)
}

func (n *TwilioNotifier) send(kind string, bookingID, userID uuid.UUID, phone, body string) error {
	if phone == "" {
		log.Printf("No phone on file for user %s, skipping %s notification", userID, kind)
		metrics.NotificationResult(kind, "skipped")
		n.logAttempt(kind, bookingID, userID, "", "skipped", "no phone on file")
		return nil
	}

	// WhatsApp if phone is in E.164 format and starts with '+', else SMS
	channel := "sms"
	to := phone
	if strings.HasPrefix(phone, "+") {
		to = "whatsapp:" + phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(body)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send %s message to %s: %v", kind, phone, err)
		metrics.NotificationResult(kind, "failed")
		n.logAttempt(kind, bookingID, userID, channel, "failed", err.Error())
		return err
	}
	if resp.Sid != nil {
		log.Printf("%s message sent to %s, SID: %s", kind, phone, *resp.Sid)
	} else {
		log.Printf("%s message sent to %s, but no SID returned", kind, phone)
	}
	metrics.NotificationResult(kind, "sent")
	n.logAttempt(kind, bookingID, userID, channel, "sent", "")
	return nil
}

func (n *TwilioNotifier) logAttempt(kind string, bookingID, userID uuid.UUID, channel, status, errorMsg string) {
	if n.db == nil {
		return
	}
	entry := models.NotificationLog{
		BookingID:    bookingID,
		UserID:       userID,
		Kind:         kind,
		Channel:      channel,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := n.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log %s notification for booking %s: %v", kind, bookingID, err)
	}
}
