package equipmentRepo

import (
	"context"
	"errors"
	"time"

	"shramic/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new equipment listing and returns its ID.
func (r *mongoEquipmentRepo) Create(ctx context.Context, equipment *models.Equipment) (string, error) {
	if equipment.ID == "" {
		equipment.ID = uuid.New().String()
	}
	if equipment.CreatedAt.IsZero() {
		equipment.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, equipment); err != nil {
		return "", err
	}
	return equipment.ID, nil
}

// GetByID returns an equipment listing by its ID.
func (r *mongoEquipmentRepo) GetByID(ctx context.Context, id string) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&equipment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &equipment, nil
}

// GetByOwnerPhone fetches all listings registered under an owner's phone number.
func (r *mongoEquipmentRepo) GetByOwnerPhone(ctx context.Context, ownerPhone string) ([]models.Equipment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"ownerPhoneNumber": ownerPhone})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var equipment []models.Equipment
	if err := cursor.All(ctx, &equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// List returns the most recent listings for public browsing.
func (r *mongoEquipmentRepo) List(ctx context.Context, limit int64) ([]models.Equipment, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var equipment []models.Equipment
	if err := cursor.All(ctx, &equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// UpdateStatus sets the operational status shown on the owner dashboard.
func (r *mongoEquipmentRepo) UpdateStatus(ctx context.Context, id, currentStatus string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"currentStatus": currentStatus}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("equipment not found")
	}
	return nil
}
