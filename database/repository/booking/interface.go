// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"campuscare/config"
	"campuscare/database"
	"campuscare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
