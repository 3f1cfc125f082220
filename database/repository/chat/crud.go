// File: database/repository/chat/crud.go
package chatRepo

import (
	"context"
	"time"

	"campuscare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoChatRepo) Create(ctx context.Context, msg *models.ChatMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	_, err := r.coll.InsertOne(ctx, msg)
	return err
}

func (r *mongoChatRepo) GetByConversationID(ctx context.Context, conversationID string) ([]models.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"conversation_id": conversationID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var msgs []models.ChatMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
