package services

import (
	"time"

	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReminderService mails and texts customers the day before their scheduled
// visit.
type ReminderService struct {
	db   *gorm.DB
	cron *cron.Cron
}

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{
		db:   db,
		cron: cron.New(),
	}
}

// StartScheduler runs the reminder job every day at 9 AM.
func (s *ReminderService) StartScheduler() error {
	if _, err := s.cron.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		return err
	}
	s.cron.Start()
	utils.LogInfo("Reminder scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// SendDailyReminders notifies every customer with a confirmed booking
// tomorrow. Send failures are logged per booking and never retried here; the
// job runs again the next day.
func (s *ReminderService) SendDailyReminders() {
	utils.LogInfo("Starting daily reminder processing")

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var bookings []models.Booking
	if err := s.db.Preload("User").
		Where("service_date = ? AND status = ?", tomorrow, models.BookingStatusConfirmed).
		Find(&bookings).Error; err != nil {
		utils.LogError("Failed to fetch tomorrow's bookings: %v", err)
		return
	}
	utils.LogInfo("Found %d bookings scheduled for %s", len(bookings), tomorrow)

	for i := range bookings {
		booking := &bookings[i]

		if err := utils.SendServiceReminder(booking); err != nil {
			utils.LogError("Failed to send reminder email for booking ID: %d: %v", booking.ID, err)
		}

		if booking.User.Phone != "" {
			body := "NPC Pest Control: reminder that your " + booking.ServiceName +
				" service is scheduled tomorrow, " + tomorrow + " (" + booking.TimeSlot + ")."
			if err := utils.SendSMS(booking.User.Phone, body); err != nil {
				utils.LogError("Failed to send reminder SMS for booking ID: %d: %v", booking.ID, err)
			}
		}
	}

	utils.LogInfo("Daily reminder processing completed")
}
