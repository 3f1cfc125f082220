// File: services/notification/notification.go
package notification

import (
	"context"
	"fmt"

	"campuscare/models"
	"campuscare/utils"

	"firebase.google.com/go/v4/messaging"
)

// SendUserPush looks up the student's FCM token and sends a push.
func (s *DefaultNotificationService) SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("SendUserPush: FCM client not initialized")
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendUserPush: could not find user %s: %w", userID, err)
	}
	if u == nil || u.FCMToken == "" {
		return fmt.Errorf("SendUserPush: user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendUserPush: failed to send FCM message: %w", err)
	}
	return nil
}

// SendBookingConfirmation pushes the confirmation for a just-created booking.
func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, userID string, booking *models.Booking) error {
	title := "Your counseling session is booked"
	body := fmt.Sprintf("%s with %s on %s at %s. Reference %s.",
		booking.ServiceName, booking.CounselorName, booking.Date,
		booking.Time, booking.Reference)

	return s.SendUserPush(ctx, userID, title, body, map[string]string{
		"type":      "booking_confirmation",
		"reference": booking.Reference,
		"date":      booking.Date,
		"time":      booking.Time,
	})
}

// SendAppointmentReminder pushes a pre-appointment reminder.
func (s *DefaultNotificationService) SendAppointmentReminder(ctx context.Context, p models.ReminderPayload) error {
	return s.SendUserPush(ctx, p.UserID, p.Title, p.Body, map[string]string{
		"type":       "appointment_reminder",
		"bookingRef": p.BookingRef,
		"fireDate":   p.FireDate,
	})
}
