// File: database/repository/resource/interface.go
package resourceRepo

import (
	"context"

	"campuscare/config"
	"campuscare/database"
	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ResourceActivityRepository interface {
	Create(ctx context.Context, activity *models.ResourceActivity) error
	Exists(ctx context.Context, userID, resourceKey, kind string) (bool, error)
	ListByUser(ctx context.Context, userID, kind string) ([]models.ResourceActivity, error)
}

type mongoResourceRepo struct {
	coll *mongo.Collection
}

// NewMongoResourceRepo constructs a new MongoDB ResourceActivityRepository.
func NewMongoResourceRepo() ResourceActivityRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoResourceRepo{
		coll: db.Collection("resource_activity"),
	}
}
