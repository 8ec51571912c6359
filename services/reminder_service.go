// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"time"

	"laundrypro-backend/models"
	"laundrypro-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReminderService sends collection-day SMS reminders: one the day before
// collection and one on the morning of collection itself.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 7 AM
	c.AddFunc("0 7 * * *", s.SendCollectionReminders)

	c.Start()
	utils.GetLogger().Info("collection reminder scheduler started")
}

// SendCollectionReminders notifies customers whose laundry is collected
// today or tomorrow. Failures are logged per booking, never retried.
func (s *ReminderService) SendCollectionReminders() {
	log := utils.GetLogger()
	log.Info("starting collection reminder run")

	for _, day := range []struct {
		date  string
		label string
	}{
		{utils.Today(), "today"},
		{utils.Tomorrow(), "tomorrow"},
	} {
		bookings, err := s.collectionsOn(day.date)
		if err != nil {
			log.Error("failed to fetch collections",
				zap.String("date", day.date), zap.Error(err))
			continue
		}
		for i := range bookings {
			s.sendReminder(&bookings[i], day.label)
		}
	}

	log.Info("collection reminder run completed")
}

func (s *ReminderService) collectionsOn(date string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Service").
		Where("collection_date = ? AND status IN ?", date,
			[]models.BookingStatus{models.StatusPending, models.StatusProcessing}).
		Find(&bookings).Error
	return bookings, err
}

func (s *ReminderService) sendReminder(b *models.Booking, dayLabel string) {
	log := utils.GetLogger()

	message := fmt.Sprintf(
		"Hi %s, your %s laundry will be collected %s (%s). Reply to this number to reschedule.",
		b.FirstName, b.Service.Name, dayLabel, b.CollectionDate)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(b.Phone)
	params.SetBody(message)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Warn("failed to send reminder",
			zap.String("phone", b.Phone), zap.Error(err))
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Info("reminder sent",
			zap.String("phone", b.Phone), zap.String("sid", *resp.Sid))
	} else {
		log.Info("reminder sent without SID", zap.String("phone", b.Phone))
	}

	reminderLog := models.ReminderLog{
		BookingID:    b.ID,
		Phone:        b.Phone,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Error("failed to log reminder",
			zap.String("booking_id", b.ID.String()), zap.Error(err))
	}
}
