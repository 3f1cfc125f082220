// File: database/repository/contact/crud.go
package contactRepo

import (
	"context"
	"time"

	"campuscare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoContactRepo) Create(ctx context.Context, msg *models.ContactMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	_, err := r.coll.InsertOne(ctx, msg)
	return err
}

func (r *mongoContactRepo) ListRecent(ctx context.Context, limit int64) ([]models.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var msgs []models.ContactMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
