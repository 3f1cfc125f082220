// File: services/chat/service.go
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campuscare/models"
	"campuscare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IsOnline reports whether the given instant falls inside chat support
// hours: weekdays, from OpenHour (inclusive) to CloseHour (exclusive).
func (s *DefaultChatService) IsOnline(at time.Time) bool {
	if at.Weekday() == time.Saturday || at.Weekday() == time.Sunday {
		return false
	}
	return at.Hour() >= s.OpenHour && at.Hour() < s.CloseHour
}

func (s *DefaultChatService) SendMessage(ctx context.Context, conversationID, userID, message string) (*models.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("message is empty")
	}
	if !s.IsOnline(time.Now()) {
		return nil, ErrChatOffline
	}
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	userMsg := &models.ChatMessage{
		ConversationID: conversationID,
		UserID:         userID,
		Role:           models.ChatRoleUser,
		Message:        message,
		SentAt:         time.Now(),
	}
	if err := s.Repo.Create(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to store chat message: %w", err)
	}

	// Small delay so the reply does not appear instantaneous.
	if s.ReplyDelay > 0 {
		time.Sleep(s.ReplyDelay)
	}

	botMsg := &models.ChatMessage{
		ConversationID: conversationID,
		Role:           models.ChatRoleBot,
		Message:        s.Responder.Reply(message),
		SentAt:         time.Now(),
	}
	if err := s.Repo.Create(ctx, botMsg); err != nil {
		// The reply is still delivered; only the transcript is incomplete.
		utils.GetLogger().Warn("Failed to store chat reply",
			zap.String("conversationID", conversationID), zap.Error(err))
	}
	return botMsg, nil
}

func (s *DefaultChatService) History(ctx context.Context, conversationID string) ([]models.ChatMessage, error) {
	return s.Repo.GetByConversationID(ctx, conversationID)
}
