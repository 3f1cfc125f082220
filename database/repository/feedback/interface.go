// File: database/repository/feedback/interface.go
package feedbackRepo

import (
	"context"

	"campuscare/config"
	"campuscare/database"
	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type FeedbackRepository interface {
	Create(ctx context.Context, fb *models.Feedback) error
	ListRecent(ctx context.Context, limit int64) ([]models.Feedback, error)
}

type mongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo constructs a new MongoDB FeedbackRepository.
func NewMongoFeedbackRepo() FeedbackRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoFeedbackRepo{
		coll: db.Collection("feedback"),
	}
}
