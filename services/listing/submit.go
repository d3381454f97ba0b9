package listing

import (
	"context"
	"fmt"
	"time"

	equipmentRepo "shramic/database/repository/equipment"
	"shramic/models"
	"shramic/services/storage"

	"go.uber.org/zap"
)

// DefaultListingService implements Service against blob storage and the
// equipment collection.
type DefaultListingService struct {
	Repo    equipmentRepo.EquipmentRepository
	Storage storage.StorageService

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

var _ Service = (*DefaultListingService)(nil)

func (s *DefaultListingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Submit runs the submission pipeline: sequential uploads per category
// (images, then documents, then the optional video), record composition and
// persist. The first failure aborts the pipeline; blobs already committed
// are not rolled back, and a retried submission re-uploads everything from
// the start.
func (s *DefaultListingService) Submit(ctx context.Context, draft Draft, media MediaBundle, identity models.VerifiedIdentity) (string, error) {
	if err := draft.Validate(); err != nil {
		return "", err
	}
	if err := media.Validate(); err != nil {
		return "", err
	}

	submittedAt := s.now()

	imageURLs, err := s.uploadAll(ctx, identity, submittedAt, media.Images)
	if err != nil {
		return "", &SubmissionError{Stage: "image upload", Err: err}
	}

	documentURLs, err := s.uploadAll(ctx, identity, submittedAt, media.Documents)
	if err != nil {
		return "", &SubmissionError{Stage: "document upload", Err: err}
	}

	var videoURL string
	if media.Video != nil {
		urls, err := s.uploadAll(ctx, identity, submittedAt, []MediaFile{*media.Video})
		if err != nil {
			return "", &SubmissionError{Stage: "video upload", Err: err}
		}
		videoURL = urls[0]
	}

	equipment, err := composeRecord(draft, identity, imageURLs, documentURLs, videoURL, submittedAt)
	if err != nil {
		return "", err
	}

	id, err := s.Repo.Create(ctx, equipment)
	if err != nil {
		return "", &SubmissionError{Stage: "persist", Err: err}
	}

	zap.L().Info("Registered equipment listing",
		zap.String("id", id),
		zap.String("ownerUid", identity.SubjectID),
		zap.Int("images", len(imageURLs)))
	return id, nil
}

// uploadAll uploads the files strictly in input order and returns their
// URLs in the same order. Keys are namespaced by owner uid and submission
// timestamp so repeated filenames never collide.
func (s *DefaultListingService) uploadAll(ctx context.Context, identity models.VerifiedIdentity, submittedAt time.Time, files []MediaFile) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		objectPath := fmt.Sprintf("equipments/%s/%d_%s", identity.SubjectID, submittedAt.UnixMilli(), file.Filename)

		r, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file.Filename, err)
		}
		storedPath, err := s.Storage.Upload(ctx, objectPath, r, file.ContentType)
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", file.Filename, err)
		}

		url, err := s.Storage.DownloadURL(ctx, storedPath, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve URL for %s: %w", file.Filename, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// composeRecord merges the draft into the final listing record: numeric
// free-text fields become numbers or nil, URL collections and the owner
// identity are attached, and the review status and timestamp are set.
func composeRecord(draft Draft, identity models.VerifiedIdentity, imageURLs, documentURLs []string, videoURL string, submittedAt time.Time) (*models.Equipment, error) {
	year, err := ParseOptionalInt(draft.Year)
	if err != nil {
		return nil, &ValidationError{Invalid: []string{"year"}}
	}
	operatingHours, err := ParseOptionalInt(draft.OperatingHours)
	if err != nil {
		return nil, &ValidationError{Invalid: []string{"operatingHours"}}
	}
	askingPrice, err := ParseOptionalFloat(draft.AskingPrice)
	if err != nil {
		return nil, &ValidationError{Invalid: []string{"askingPrice"}}
	}
	dailyRate, err := ParseOptionalFloat(draft.DailyRate)
	if err != nil {
		return nil, &ValidationError{Invalid: []string{"dailyRate"}}
	}

	return &models.Equipment{
		Manufacturer:     draft.Manufacturer,
		ModelName:        draft.ModelName,
		EquipmentTitle:   draft.EquipmentTitle,
		Category:         draft.Category,
		SubCategory:      draft.SubCategory,
		Year:             year,
		OperatingHours:   operatingHours,
		SerialNumber:     draft.SerialNumber,
		Condition:        draft.Condition,
		LocationCity:     draft.LocationCity,
		LocationState:    draft.LocationState,
		LocationZip:      draft.LocationZip,
		AskingPrice:      askingPrice,
		DailyRate:        dailyRate,
		Description:      draft.Description,
		SellerName:       draft.SellerName,
		SellerEmail:      draft.SellerEmail,
		CompanyName:      draft.CompanyName,
		ImageURLs:        imageURLs,
		DocumentURLs:     documentURLs,
		VideoURL:         videoURL,
		OwnerPhoneNumber: identity.PhoneNumber,
		OwnerUID:         identity.SubjectID,
		Status:           models.ListingUnderReview,
		CreatedAt:        submittedAt,
	}, nil
}
