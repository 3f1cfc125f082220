// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	"campuscare/config"
	bookingRepo "campuscare/database/repository/booking"
	"campuscare/models"
	"campuscare/utils"

	"github.com/go-redis/redis/v8"
)

// WizardService drives the five-step appointment booking flow. Session state
// lives in Redis under a TTL; every operation loads the session, applies one
// change, and writes it back.
type WizardService interface {
	// StartSession creates a fresh wizard session at step 1.
	StartSession(ctx context.Context, userID string) (*models.WizardSession, error)

	// GetSession fetches an existing session.
	GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error)

	// CancelSession discards a session before confirmation.
	CancelSession(ctx context.Context, sessionID string) error

	// SelectService records the chosen service, replacing any prior choice.
	SelectService(ctx context.Context, sessionID, serviceKey string) (*models.WizardSession, error)

	// SelectCounselor records the chosen counselor, replacing any prior choice.
	SelectCounselor(ctx context.Context, sessionID, counselorKey string) (*models.WizardSession, error)

	// SelectDate records the chosen date and clears any previously selected
	// time. Past dates and weekends are rejected.
	SelectDate(ctx context.Context, sessionID, date string) (*models.WizardSession, error)

	// SelectTime records the chosen slot start time. A date must already be
	// selected.
	SelectTime(ctx context.Context, sessionID, slot string) (*models.WizardSession, error)

	// GoNext advances to target if it is the immediate next step and the
	// current step's requirement is satisfied. Advancing past the details
	// step requires the submitted form; it is validated but not stored. On
	// validation failure the session is returned unchanged alongside a
	// *StepValidationError.
	GoNext(ctx context.Context, sessionID string, target int, form *models.DetailsForm) (*models.WizardSession, error)

	// GoPrev moves back to target if it is the immediate previous step.
	// No validation runs when moving backwards.
	GoPrev(ctx context.Context, sessionID string, target int) (*models.WizardSession, error)

	// MonthGrid builds the calendar grid for the given month, marking the
	// session's selected date if it falls inside the month.
	MonthGrid(ctx context.Context, sessionID string, year int, month time.Month) (*models.MonthGrid, error)

	// TimeSlots generates the available slots for the session's selected
	// date. Returns ErrNoSlots when no slot is available.
	TimeSlots(ctx context.Context, sessionID string) ([]models.TimeSlot, error)

	// Summary assembles the review-step summary from the session's
	// selections.
	Summary(ctx context.Context, sessionID string) (*models.BookingSummary, error)

	// Confirm re-validates every selection plus the submitted details and
	// consents, creates the booking record, and resets the session to step 1.
	Confirm(ctx context.Context, sessionID string, details models.PersonalDetails, consents models.ConsentFlags) (*models.BookingConfirmation, error)
}

// Notifier delivers the booking confirmation push to the student's device.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, userID string, booking *models.Booking) error
}

// ReminderScheduler enqueues the pre-appointment reminder task.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking *models.Booking) error
}

// DefaultWizardService is the production WizardService implementation.
type DefaultWizardService struct {
	Repo         bookingRepo.BookingRepository
	Cache        *redis.Client
	Catalog      *Catalog
	Availability AvailabilitySource
	Notifier     Notifier
	Reminders    ReminderScheduler

	SessionTTL   time.Duration
	ConfirmDelay time.Duration
	RefPrefix    string
}

// NewDefaultWizardService wires the wizard with configured timings and the
// shared session cache.
func NewDefaultWizardService(repo bookingRepo.BookingRepository, availability AvailabilitySource, notifier Notifier, reminders ReminderScheduler) *DefaultWizardService {
	return &DefaultWizardService{
		Repo:         repo,
		Cache:        utils.GetSessionCacheClient(),
		Catalog:      DefaultCatalog(),
		Availability: availability,
		Notifier:     notifier,
		Reminders:    reminders,
		SessionTTL:   time.Duration(config.AppConfig.WizardSessionTTLMins) * time.Minute,
		ConfirmDelay: time.Duration(config.AppConfig.ConfirmDelayMS) * time.Millisecond,
		RefPrefix:    config.AppConfig.BookingRefPrefix,
	}
}
