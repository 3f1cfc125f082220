// File: database/repository/contact/interface.go
package contactRepo

import (
	"context"

	"campuscare/config"
	"campuscare/database"
	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	ListRecent(ctx context.Context, limit int64) ([]models.ContactMessage, error)
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo constructs a new MongoDB ContactRepository.
func NewMongoContactRepo() ContactRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoContactRepo{
		coll: db.Collection("contact_messages"),
	}
}
