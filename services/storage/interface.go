package storage

import (
	"context"
	"io"
	"time"
)

// StorageService defines the blob storage operations the submission
// pipeline depends on.
type StorageService interface {
	// Upload writes the stream under objectPath and returns the stored
	// object's identifier.
	Upload(ctx context.Context, objectPath string, r io.Reader, contentType string) (string, error)
	// DownloadURL returns a retrievable URL for the object. A zero expiry
	// yields a public URL; a positive expiry yields a signed URL.
	DownloadURL(ctx context.Context, objectPath string, expires time.Duration) (string, error)
	// Delete removes the object.
	Delete(ctx context.Context, objectPath string) error
}
