// File: services/feedback/service.go
package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	feedbackRepo "campuscare/database/repository/feedback"
	"campuscare/models"
	"campuscare/utils"

	"go.uber.org/zap"
)

// FeedbackService accepts feedback submissions and lists recent entries for
// the public feedback board.
type FeedbackService interface {
	Submit(ctx context.Context, fb *models.Feedback) error
	ListRecent(ctx context.Context, limit int64) ([]models.Feedback, error)
}

// DefaultFeedbackService is the production FeedbackService implementation.
type DefaultFeedbackService struct {
	Repo feedbackRepo.FeedbackRepository
}

// NewDefaultFeedbackService constructs the feedback service.
func NewDefaultFeedbackService(repo feedbackRepo.FeedbackRepository) *DefaultFeedbackService {
	return &DefaultFeedbackService{Repo: repo}
}

func (s *DefaultFeedbackService) Submit(ctx context.Context, fb *models.Feedback) error {
	if fb.Rating < 1 || fb.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if strings.TrimSpace(fb.Message) == "" {
		return fmt.Errorf("feedback message is required")
	}
	if fb.Anonymous {
		// An anonymous entry must not leak identity through optional fields.
		fb.Name = ""
		fb.Email = ""
		fb.StudentID = ""
		fb.UserID = ""
	}
	fb.SubmittedAt = time.Now()

	if err := s.Repo.Create(ctx, fb); err != nil {
		return err
	}
	utils.GetLogger().Info("Feedback received",
		zap.Int("rating", fb.Rating),
		zap.Bool("anonymous", fb.Anonymous))
	return nil
}

func (s *DefaultFeedbackService) ListRecent(ctx context.Context, limit int64) ([]models.Feedback, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.Repo.ListRecent(ctx, limit)
}
