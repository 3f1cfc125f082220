// File: services/booking/wizard.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campuscare/models"
	"campuscare/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func sessionKey(sessionID string) string {
	return utils.WizardSessionPrefix + sessionID
}

func (s *DefaultWizardService) loadSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wizard session: %w", err)
	}
	var sess models.WizardSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to decode wizard session: %w", err)
	}
	return &sess, nil
}

func (s *DefaultWizardService) saveSession(ctx context.Context, sess *models.WizardSession) error {
	sess.LastUpdatedAt = time.Now()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode wizard session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(sess.SessionID), data, s.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (s *DefaultWizardService) StartSession(ctx context.Context, userID string) (*models.WizardSession, error) {
	now := time.Now()
	sess := &models.WizardSession{
		SessionID:     uuid.New().String(),
		UserID:        userID,
		CurrentStep:   models.StepService,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Booking session started",
		zap.String("sessionID", sess.SessionID),
		zap.String("userID", userID))
	return sess, nil
}

func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.loadSession(ctx, sessionID)
}

func (s *DefaultWizardService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to discard wizard session: %w", err)
	}
	return nil
}

func (s *DefaultWizardService) SelectService(ctx context.Context, sessionID, serviceKey string) (*models.WizardSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Catalog.ServiceByKey(serviceKey); err != nil {
		return nil, err
	}
	sess.SelectedService = serviceKey
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultWizardService) SelectCounselor(ctx context.Context, sessionID, counselorKey string) (*models.WizardSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Catalog.CounselorByKey(counselorKey); err != nil {
		return nil, err
	}
	sess.SelectedCounselor = counselorKey
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultWizardService) SelectDate(ctx context.Context, sessionID, date string) (*models.WizardSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(midnight) {
		return nil, fmt.Errorf("cannot select a past date")
	}
	if isWeekend(day) {
		return nil, fmt.Errorf("sessions are not offered on weekends")
	}

	// A new date invalidates a previously chosen slot.
	sess.SelectedDate = date
	sess.SelectedTime = ""
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultWizardService) SelectTime(ctx context.Context, sessionID, slot string) (*models.WizardSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.SelectedDate == "" {
		return nil, fmt.Errorf("select a date before choosing a time")
	}
	minute, err := clockToMinute(slot)
	if err != nil {
		return nil, err
	}
	if minute < workDayOpenMinute || minute >= workDayCloseMinute || minute%slotStepMinutes != 0 {
		return nil, fmt.Errorf("time %q is outside bookable hours", slot)
	}
	sess.SelectedTime = minuteToClock(minute)
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultWizardService) GoNext(ctx context.Context, sessionID string, target int, form *models.DetailsForm) (*models.WizardSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if target != sess.CurrentStep+1 || target > models.StepReview {
		return nil, fmt.Errorf("invalid step transition from %d to %d", sess.CurrentStep, target)
	}
	if err := s.validateStep(sess, form); err != nil {
		// Validation failures leave the session untouched.
		return sess, err
	}
	sess.CurrentStep = target
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultWizardService) GoPrev(ctx context.Context, sessionID string, target int) (*models.WizardSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if target != sess.CurrentStep-1 || target < models.StepService {
		return nil, fmt.Errorf("invalid step transition from %d to %d", sess.CurrentStep, target)
	}
	sess.CurrentStep = target
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultWizardService) MonthGrid(ctx context.Context, sessionID string, year int, month time.Month) (*models.MonthGrid, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return BuildMonthGrid(year, month, time.Now(), sess.SelectedDate), nil
}

func (s *DefaultWizardService) TimeSlots(ctx context.Context, sessionID string) ([]models.TimeSlot, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.SelectedDate == "" {
		return nil, fmt.Errorf("select a date before requesting time slots")
	}
	return GenerateTimeSlots(sess.SelectedDate, time.Now(), s.Availability)
}

func (s *DefaultWizardService) Summary(ctx context.Context, sessionID string) (*models.BookingSummary, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	summary := &models.BookingSummary{
		Date: sess.SelectedDate,
		Time: sess.SelectedTime,
	}
	if sess.SelectedTime != "" {
		summary.TimeDisplay = FormatSlotTime(sess.SelectedTime)
	}
	if svc, err := s.Catalog.ServiceByKey(sess.SelectedService); err == nil {
		summary.ServiceName = svc.Name
		summary.Duration = svc.Duration
		summary.Fee = svc.Fee
	}
	if c, err := s.Catalog.CounselorByKey(sess.SelectedCounselor); err == nil {
		summary.CounselorName = c.Name
	}
	return summary, nil
}
