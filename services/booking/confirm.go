// File: services/booking/confirm.go
package booking

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"campuscare/models"
	"campuscare/utils"

	"go.uber.org/zap"
)

const referenceCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewBookingReference builds a reference such as "CC831042X7K2P9": the
// configured prefix, the last six digits of the current unix-millisecond
// timestamp, and six random base36 characters. Uniqueness is best-effort;
// the unique index on the bookings collection is the backstop.
func NewBookingReference(prefix string) string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	suffix := make([]byte, 6)
	max := big.NewInt(int64(len(referenceCharset)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			suffix[i] = referenceCharset[time.Now().Nanosecond()%len(referenceCharset)]
			continue
		}
		suffix[i] = referenceCharset[n.Int64()]
	}
	return prefix + millis + string(suffix)
}

// Confirm finalizes the booking. Every selection is re-validated from
// scratch, then the record is written locally first (Redis backup list) and
// persisted to the document store in the background. Remote failures are
// logged but never surfaced: the confirmation the student sees does not
// depend on the remote write.
func (s *DefaultWizardService) Confirm(ctx context.Context, sessionID string, details models.PersonalDetails, consents models.ConsentFlags) (*models.BookingConfirmation, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.SelectedService == "" {
		return nil, newStepError(models.StepService, "Please select a service to continue.")
	}
	if sess.SelectedCounselor == "" {
		return nil, newStepError(models.StepCounselor, "Please choose a counselor to continue.")
	}
	if sess.SelectedDate == "" || sess.SelectedTime == "" {
		return nil, newStepError(models.StepSchedule, "Please pick a date and time to continue.")
	}
	if err := validateDetails(models.StepDetails, details, consents); err != nil {
		return nil, err
	}

	svc, err := s.Catalog.ServiceByKey(sess.SelectedService)
	if err != nil {
		return nil, err
	}
	counselor, err := s.Catalog.CounselorByKey(sess.SelectedCounselor)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		Reference:     NewBookingReference(s.RefPrefix),
		UserID:        sess.UserID,
		Service:       svc.Key,
		ServiceName:   svc.Name,
		Counselor:     counselor.Key,
		CounselorName: counselor.Name,
		Date:          sess.SelectedDate,
		Time:          sess.SelectedTime,
		Duration:      svc.Duration,
		Details:       details,
		Consents:      consents,
		Status:        models.BookingStatusConfirmed,
		CreatedAt:     time.Now(),
	}

	s.backupLocally(ctx, booking)
	go s.persistRemotely(booking)

	if s.ConfirmDelay > 0 {
		time.Sleep(s.ConfirmDelay)
	}

	// A confirmed booking ends the flow: the wizard returns to step 1 with
	// every selection cleared, ready for another booking.
	sess.CurrentStep = models.StepService
	sess.SelectedService = ""
	sess.SelectedCounselor = ""
	sess.SelectedDate = ""
	sess.SelectedTime = ""
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Booking confirmed",
		zap.String("reference", booking.Reference),
		zap.String("counselor", booking.Counselor),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time))

	return &models.BookingConfirmation{
		Reference:     booking.Reference,
		Date:          booking.Date,
		Time:          booking.Time,
		TimeDisplay:   FormatSlotTime(booking.Time),
		CounselorName: booking.CounselorName,
		Status:        booking.Status,
	}, nil
}

// backupLocally appends the booking to the Redis backup list before any
// remote write is attempted. The backup is the source of truth for the
// just-confirmed booking if the document store is unreachable.
func (s *DefaultWizardService) backupLocally(ctx context.Context, booking *models.Booking) {
	data, err := json.Marshal(booking)
	if err != nil {
		utils.GetLogger().Error("Failed to encode booking for backup", zap.Error(err))
		return
	}
	if err := s.Cache.LPush(ctx, utils.BookingBackupKey, data).Err(); err != nil {
		utils.GetLogger().Error("Failed to back up booking locally",
			zap.String("reference", booking.Reference), zap.Error(err))
	}
}

// persistRemotely writes the booking to the document store and fans out the
// confirmation push and the appointment reminder. Best-effort: every failure
// is logged and swallowed.
func (s *DefaultWizardService) persistRemotely(booking *models.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Repo.Create(ctx, booking); err != nil {
		utils.GetLogger().Warn("Best-effort booking persist failed",
			zap.String("reference", booking.Reference), zap.Error(err))
		return
	}

	if booking.UserID != "" && s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(ctx, booking.UserID, booking); err != nil {
			utils.GetLogger().Warn("Booking confirmation push failed",
				zap.String("reference", booking.Reference), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(booking); err != nil {
			utils.GetLogger().Warn("Failed to schedule booking reminder",
				zap.String("reference", booking.Reference), zap.Error(err))
		}
	}
}
