// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campuscare/config"
	"campuscare/models"
	"campuscare/services/notification"
	"campuscare/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

func reminderRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderScheduler enqueues appointment reminder tasks to fire shortly
// before the session starts.
type ReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderScheduler constructs the scheduler with the configured lead
// time.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(reminderRedisOpts()),
		lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
}

// ScheduleBookingReminder enqueues a reminder for the booking. Bookings whose
// reminder time has already passed are skipped.
func (s *ReminderScheduler) ScheduleBookingReminder(booking *models.Booking) error {
	start, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.Time, time.Local)
	if err != nil {
		return fmt.Errorf("cannot parse appointment start: %w", err)
	}
	fireAt := start.Add(-s.lead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		UserID:     booking.UserID,
		BookingRef: booking.Reference,
		Title:      "Upcoming counseling session",
		Body: fmt.Sprintf("Your %s with %s starts at %s today.",
			booking.ServiceName, booking.CounselorName, booking.Time),
		FireDate: fireAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("cannot encode reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("cannot enqueue reminder: %w", err)
	}

	utils.GetLogger().Info("Reminder scheduled",
		zap.String("reference", booking.Reference),
		zap.Time("fireAt", fireAt))
	return nil
}

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		reminderRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting reminder worker")

		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Reminder worker failed to start",
					zap.Int("attempt", attempt), zap.Error(err))
				if attempt == maxAttempts {
					logger.Fatal("Reminder worker exhausted retries")
				}
				time.Sleep(time.Duration(attempt*2) * time.Second)
				continue
			}
			break
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("Invalid reminder payload", zap.Error(err))
			return err
		}
		if p.UserID == "" {
			// Guest bookings have no push target.
			return nil
		}
		if err := notifSvc.SendAppointmentReminder(ctx, p); err != nil {
			utils.GetLogger().Warn("Failed to deliver reminder",
				zap.String("bookingRef", p.BookingRef), zap.Error(err))
			return err
		}
		return nil
	}
}
