package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService creates a Cloudinary-backed StorageService.
func NewCloudinaryStorageService(cloudName, apiKey, apiSecret string) (*CloudinaryStorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

// Upload streams the object to Cloudinary under the given public ID.
func (s *CloudinaryStorageService) Upload(ctx context.Context, objectPath string, r io.Reader, contentType string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     objectPath,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to Cloudinary: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("no public ID returned by Cloudinary")
	}
	return result.PublicID, nil
}

// DownloadURL builds a delivery URL for the asset. Cloudinary delivery URLs
// do not expire, so the expires argument is ignored.
func (s *CloudinaryStorageService) DownloadURL(ctx context.Context, objectPath string, expires time.Duration) (string, error) {
	img, err := s.cld.Image(objectPath)
	if err != nil {
		return "", fmt.Errorf("failed to build asset for %s: %w", objectPath, err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build delivery URL for %s: %w", objectPath, err)
	}
	return url, nil
}

// Delete removes the asset.
func (s *CloudinaryStorageService) Delete(ctx context.Context, objectPath string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: objectPath})
	if err != nil {
		return fmt.Errorf("failed to delete Cloudinary asset: %w", err)
	}
	return nil
}
