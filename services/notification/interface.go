// File: services/notification/interface.go
package notification

import (
	"context"
	"fmt"

	userRepo "campuscare/database/repository/user"
	"campuscare/models"
)

// NotificationService sends FCM pushes to student devices.
type NotificationService interface {
	SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error
	SendBookingConfirmation(ctx context.Context, userID string, booking *models.Booking) error
	SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultNotificationService is the production implementation. Device tokens
// are looked up from the account record at send time.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

// NewDefaultNotificationService constructs the notification service.
func NewDefaultNotificationService(users userRepo.UserRepository) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{Users: users}, nil
}
