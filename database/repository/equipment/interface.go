package equipmentRepo

import (
	"context"

	"shramic/config"
	"shramic/database"
	"shramic/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// EquipmentRepository is the persistence boundary for equipment listings.
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *models.Equipment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Equipment, error)
	GetByOwnerPhone(ctx context.Context, ownerPhone string) ([]models.Equipment, error)
	List(ctx context.Context, limit int64) ([]models.Equipment, error)
	UpdateStatus(ctx context.Context, id, currentStatus string) error
}

type mongoEquipmentRepo struct {
	coll *mongo.Collection
}

// NewMongoEquipmentRepo returns a new EquipmentRepository instance using MongoDB.
func NewMongoEquipmentRepo() EquipmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoEquipmentRepo{
		coll: db.Collection("equipments"),
	}
}
