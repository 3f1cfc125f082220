// File: database/repository/chat/interface.go
package chatRepo

import (
	"context"

	"campuscare/config"
	"campuscare/database"
	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ChatRepository interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
	GetByConversationID(ctx context.Context, conversationID string) ([]models.ChatMessage, error)
}

type mongoChatRepo struct {
	coll *mongo.Collection
}

// NewMongoChatRepo constructs a new MongoDB ChatRepository.
func NewMongoChatRepo() ChatRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoChatRepo{
		coll: db.Collection("chat_messages"),
	}
}
