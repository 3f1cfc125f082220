package models

import "time"

// Chat message roles.
const (
	ChatRoleUser = "user"
	ChatRoleBot  = "bot"
)

// ChatMessage is one message inside a support-chat conversation. Bot replies
// are generated from a static rule table, not a model.
type ChatMessage struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversation_id" json:"conversationId"`
	UserID         string    `bson:"user_id,omitempty" json:"userId,omitempty"`
	Role           string    `bson:"role" json:"role"`
	Message        string    `bson:"message" json:"message"`
	SentAt         time.Time `bson:"sent_at" json:"sentAt"`
}
