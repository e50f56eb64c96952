// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/models"
	"github.com/dustinvannguyen13-max/sparkandmend-landing-sub001/utils"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	svc := &ReminderService{db: db}
	if accountSid == "" || authToken == "" {
		// Leave the client nil; reminders are skipped, bookings still work.
		log.Println("Twilio credentials not set, visit reminders disabled")
		return svc
	}
	svc.client = twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	return svc
}

// SendDailyReminders messages every customer with a visit booked for
// tomorrow and logs each attempt.
func (s *ReminderService) SendDailyReminders() {
	if s.client == nil {
		return
	}
	log.Println("Starting daily visit reminder processing...")

	tomorrow := utils.FormatDate(time.Now().AddDate(0, 0, 1))

	var bookings []models.Booking
	if err := s.db.Where("preferred_date = ? AND status IN ?",
		tomorrow, []string{models.BookingStatusPending, models.BookingStatusPaid}).
		Find(&bookings).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's bookings: %v", err)
		return
	}

	for _, booking := range bookings {
		s.sendReminder(booking)
	}

	log.Println("Daily visit reminder processing completed")
}

func (s *ReminderService) sendReminder(booking models.Booking) {
	if booking.Phone == "" {
		return
	}

	service := ParseService(booking.ServiceKey).Label()
	message := fmt.Sprintf("Hi %s, a reminder that your %s is booked for tomorrow (%s). Ref: %s",
		booking.Name, service, booking.PreferredDate, booking.Reference)
	if booking.PreferredTime != "" {
		message = fmt.Sprintf("Hi %s, a reminder that your %s is booked for tomorrow (%s) at %s. Ref: %s",
			booking.Name, service, booking.PreferredDate, booking.PreferredTime, booking.Reference)
	}

	// WhatsApp for E.164 numbers, plain SMS otherwise
	channel := "sms"
	to := booking.Phone
	if strings.HasPrefix(booking.Phone, "+") {
		to = "whatsapp:" + booking.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder for %s: %v", booking.Reference, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent for %s, SID: %s", booking.Reference, *resp.Sid)
	} else {
		log.Printf("Reminder sent for %s, but no SID returned", booking.Reference)
	}

	entry := models.NotificationLog{
		BookingID:    booking.ID,
		Reference:    booking.Reference,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log reminder for %s: %v", booking.Reference, err)
	}
}
