// File: database/repository/resource/crud.go
package resourceRepo

import (
	"context"
	"time"

	"campuscare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoResourceRepo) Create(ctx context.Context, activity *models.ResourceActivity) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	_, err := r.coll.InsertOne(ctx, activity)
	return err
}

func (r *mongoResourceRepo) Exists(ctx context.Context, userID, resourceKey, kind string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{
		"user_id":      userID,
		"resource_key": resourceKey,
		"kind":         kind,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mongoResourceRepo) ListByUser(ctx context.Context, userID, kind string) ([]models.ResourceActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID, "kind": kind}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.ResourceActivity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
