package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"shramic/config"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// FirebaseStorageService implements StorageService using Firebase Storage.
type FirebaseStorageService struct {
	client         *storage.Client
	bucketName     string
	serviceAccount *config.ServiceAccount
}

// NewFirebaseStorageService creates a new FirebaseStorageService.
func NewFirebaseStorageService(serviceAccountJSONPath, bucketName string) (*FirebaseStorageService, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx, option.WithCredentialsFile(serviceAccountJSONPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// Load service account for signing URLs.
	sa, err := config.LoadServiceAccount(serviceAccountJSONPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load service account for signing URLs: %w", err)
	}

	return &FirebaseStorageService{
		client:         client,
		bucketName:     bucketName,
		serviceAccount: sa,
	}, nil
}

// Upload streams the object into the bucket with a public-read ACL.
func (s *FirebaseStorageService) Upload(ctx context.Context, objectPath string, r io.Reader, contentType string) (string, error) {
	obj := s.client.Bucket(s.bucketName).Object(objectPath)
	w := obj.NewWriter(ctx)

	w.ACL = []storage.ACLRule{{Entity: storage.AllUsers, Role: storage.RoleReader}}
	if contentType != "" {
		w.ObjectAttrs.ContentType = contentType
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to copy data to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return objectPath, nil
}

// DownloadURL returns a public media URL, or a signed URL when expires > 0.
func (s *FirebaseStorageService) DownloadURL(ctx context.Context, objectPath string, expires time.Duration) (string, error) {
	if expires <= 0 {
		return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media",
			s.bucketName, url.QueryEscape(objectPath)), nil
	}

	signed, err := storage.SignedURL(s.bucketName, objectPath, &storage.SignedURLOptions{
		GoogleAccessID: s.serviceAccount.ClientEmail,
		PrivateKey:     []byte(strings.ReplaceAll(s.serviceAccount.PrivateKey, `\n`, "\n")),
		Method:         "GET",
		Expires:        time.Now().Add(expires),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return signed, nil
}

// Delete removes an object from the bucket.
func (s *FirebaseStorageService) Delete(ctx context.Context, objectPath string) error {
	obj := s.client.Bucket(s.bucketName).Object(objectPath)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
