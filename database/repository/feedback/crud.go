// File: database/repository/feedback/crud.go
package feedbackRepo

import (
	"context"
	"time"

	"campuscare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoFeedbackRepo) Create(ctx context.Context, fb *models.Feedback) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if fb.ID == "" {
		fb.ID = uuid.New().String()
	}
	_, err := r.coll.InsertOne(ctx, fb)
	return err
}

func (r *mongoFeedbackRepo) ListRecent(ctx context.Context, limit int64) ([]models.Feedback, error) {
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

	var entries []models.Feedback
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
