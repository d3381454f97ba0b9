package bookingRepo

import (
	"context"

	"shramic/config"
	"shramic/database"
	"shramic/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the persistence boundary for booking records.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (string, error)
	GetByEquipmentID(ctx context.Context, equipmentID string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
