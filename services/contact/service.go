// File: services/contact/service.go
package contact

import (
	"context"
	"strings"
	"time"

	contactRepo "campuscare/database/repository/contact"
	"campuscare/models"
	"campuscare/utils"

	"go.uber.org/zap"
)

// ContactService accepts messages from the contact form and lets staff list
// recent submissions.
type ContactService interface {
	Submit(ctx context.Context, msg *models.ContactMessage) error
	ListRecent(ctx context.Context, limit int64) ([]models.ContactMessage, error)
}

// ValidationError is a user-recoverable contact form failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// DefaultContactService is the production ContactService implementation.
type DefaultContactService struct {
	Repo contactRepo.ContactRepository
}

// NewDefaultContactService constructs the contact service.
func NewDefaultContactService(repo contactRepo.ContactRepository) *DefaultContactService {
	return &DefaultContactService{Repo: repo}
}

func (s *DefaultContactService) Submit(ctx context.Context, msg *models.ContactMessage) error {
	var missing []string
	for _, f := range []struct {
		value string
		label string
	}{
		{msg.Name, "name"},
		{msg.Email, "email"},
		{msg.Subject, "subject"},
		{msg.Message, "message"},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.label)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Message: "Please fill in: " + strings.Join(missing, ", ") + "."}
	}
	if !msg.Consent {
		return &ValidationError{Message: "Please agree to be contacted about your message."}
	}
	if msg.Urgency == "" {
		msg.Urgency = "normal"
	}
	msg.SubmittedAt = time.Now()

	if err := s.Repo.Create(ctx, msg); err != nil {
		return err
	}
	utils.GetLogger().Info("Contact message received",
		zap.String("subject", msg.Subject),
		zap.String("urgency", msg.Urgency))
	return nil
}

func (s *DefaultContactService) ListRecent(ctx context.Context, limit int64) ([]models.ContactMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.Repo.ListRecent(ctx, limit)
}
