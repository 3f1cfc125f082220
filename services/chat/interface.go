// File: services/chat/interface.go
package chat

import (
	"context"
	"errors"
	"time"

	"campuscare/config"
	chatRepo "campuscare/database/repository/chat"
	"campuscare/models"
)

// ErrChatOffline signals a message sent outside chat support hours.
var ErrChatOffline = errors.New("chat support is offline right now")

// ChatService handles the support chat widget: it stores the student's
// message, generates a canned reply, and stores that too.
type ChatService interface {
	// SendMessage records the user's message and returns the bot reply.
	// Returns ErrChatOffline outside support hours.
	SendMessage(ctx context.Context, conversationID, userID, message string) (*models.ChatMessage, error)

	// History returns a conversation's messages oldest-first.
	History(ctx context.Context, conversationID string) ([]models.ChatMessage, error)

	// IsOnline reports whether chat support is currently staffed.
	IsOnline(at time.Time) bool
}

// DefaultChatService is the production ChatService implementation.
type DefaultChatService struct {
	Repo      chatRepo.ChatRepository
	Responder *Responder

	OpenHour   int
	CloseHour  int
	ReplyDelay time.Duration
}

// NewDefaultChatService wires the chat service with configured support hours.
func NewDefaultChatService(repo chatRepo.ChatRepository) *DefaultChatService {
	return &DefaultChatService{
		Repo:       repo,
		Responder:  NewResponder(time.Now().UnixNano()),
		OpenHour:   config.AppConfig.ChatOpenHour,
		CloseHour:  config.AppConfig.ChatCloseHour,
		ReplyDelay: time.Duration(config.AppConfig.ChatReplyDelay) * time.Millisecond,
	}
}
