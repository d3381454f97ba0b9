package storage

import (
	"fmt"

	"shramic/config"
)

// NewFromConfig builds the StorageService selected by STORAGE_BACKEND.
func NewFromConfig() (StorageService, error) {
	cfg := config.AppConfig
	switch cfg.StorageBackend {
	case "", "firebase":
		if cfg.FirebaseStorageBucket == "" {
			return nil, fmt.Errorf("FIREBASE_STORAGE_BUCKET is not configured")
		}
		return NewFirebaseStorageService(cfg.FirebaseCredentialsFile, cfg.FirebaseStorageBucket)
	case "cloudinary":
		return NewCloudinaryStorageService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
