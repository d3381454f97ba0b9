package listing

import (
	"context"

	"shramic/models"
)

// Service turns a completed draft plus a verified identity into a persisted
// equipment listing.
type Service interface {
	Submit(ctx context.Context, draft Draft, media MediaBundle, identity models.VerifiedIdentity) (string, error)
}
