package bookingRepo

import (
	"context"
	"time"

	"shramic/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking record and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (string, error) {
	if booking.BookingID == "" {
		booking.BookingID = uuid.New().String()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", err
	}
	return booking.BookingID, nil
}

// GetByEquipmentID fetches all bookings made against one equipment listing.
func (r *mongoBookingRepo) GetByEquipmentID(ctx context.Context, equipmentID string) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"equipmentId": equipmentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
