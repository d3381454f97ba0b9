package listing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"shramic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	mu      sync.Mutex
	uploads []string
	failAt  int // 1-based upload index that fails; 0 means never
}

func (f *fakeStorage) Upload(ctx context.Context, objectPath string, r io.Reader, contentType string) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, objectPath)
	if f.failAt > 0 && len(f.uploads) == f.failAt {
		return "", errors.New("storage unavailable")
	}
	return objectPath, nil
}

func (f *fakeStorage) DownloadURL(ctx context.Context, objectPath string, expires time.Duration) (string, error) {
	return "https://cdn.test/" + objectPath, nil
}

func (f *fakeStorage) Delete(ctx context.Context, objectPath string) error {
	return nil
}

type fakeEquipmentRepo struct {
	created []*models.Equipment
	err     error
}

func (r *fakeEquipmentRepo) Create(ctx context.Context, equipment *models.Equipment) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	equipment.ID = fmt.Sprintf("eq-%d", len(r.created)+1)
	r.created = append(r.created, equipment)
	return equipment.ID, nil
}

func (r *fakeEquipmentRepo) GetByID(ctx context.Context, id string) (*models.Equipment, error) {
	for _, e := range r.created {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEquipmentRepo) GetByOwnerPhone(ctx context.Context, ownerPhone string) ([]models.Equipment, error) {
	var out []models.Equipment
	for _, e := range r.created {
		if e.OwnerPhoneNumber == ownerPhone {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEquipmentRepo) List(ctx context.Context, limit int64) ([]models.Equipment, error) {
	var out []models.Equipment
	for _, e := range r.created {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEquipmentRepo) UpdateStatus(ctx context.Context, id, currentStatus string) error {
	for _, e := range r.created {
		if e.ID == id {
			e.CurrentStatus = currentStatus
			return nil
		}
	}
	return errors.New("not found")
}

func textFile(name string) MediaFile {
	return MediaFile{
		Filename:    name,
		ContentType: "application/octet-stream",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("payload of " + name)), nil
		},
	}
}

func submissionIdentity() models.VerifiedIdentity {
	return models.VerifiedIdentity{PhoneNumber: "+919876543210", SubjectID: "owner-1"}
}

func testService(store *fakeStorage, repo *fakeEquipmentRepo) *DefaultListingService {
	return &DefaultListingService{
		Repo:    repo,
		Storage: store,
		Now: func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestSubmitHappyPath(t *testing.T) {
	store := &fakeStorage{}
	repo := &fakeEquipmentRepo{}
	svc := testService(store, repo)

	draft := validDraft()
	draft.Year = "2015"
	draft.DailyRate = "2500.50"

	media := MediaBundle{
		Images:    []MediaFile{textFile("front.jpg"), textFile("side.jpg")},
		Documents: []MediaFile{textFile("rc-book.pdf")},
	}
	video := textFile("walkaround.mp4")
	media.Video = &video

	id, err := svc.Submit(context.Background(), draft, media, submissionIdentity())
	require.NoError(t, err)
	assert.Equal(t, "eq-1", id)

	require.Len(t, repo.created, 1)
	record := repo.created[0]

	// URL order matches input order within each category.
	assert.Equal(t, []string{
		"https://cdn.test/equipments/owner-1/1748779200000_front.jpg",
		"https://cdn.test/equipments/owner-1/1748779200000_side.jpg",
	}, record.ImageURLs)
	assert.Equal(t, []string{
		"https://cdn.test/equipments/owner-1/1748779200000_rc-book.pdf",
	}, record.DocumentURLs)
	assert.Equal(t, "https://cdn.test/equipments/owner-1/1748779200000_walkaround.mp4", record.VideoURL)

	// Uploads ran images first, then documents, then the video.
	assert.Equal(t, []string{
		"equipments/owner-1/1748779200000_front.jpg",
		"equipments/owner-1/1748779200000_side.jpg",
		"equipments/owner-1/1748779200000_rc-book.pdf",
		"equipments/owner-1/1748779200000_walkaround.mp4",
	}, store.uploads)

	require.NotNil(t, record.Year)
	assert.Equal(t, 2015, *record.Year)
	require.NotNil(t, record.DailyRate)
	assert.Equal(t, 2500.50, *record.DailyRate)
	assert.Nil(t, record.OperatingHours)
	assert.Nil(t, record.AskingPrice)

	assert.Equal(t, "+919876543210", record.OwnerPhoneNumber)
	assert.Equal(t, "owner-1", record.OwnerUID)
	assert.Equal(t, models.ListingUnderReview, record.Status)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), record.CreatedAt)
}

func TestSubmitStopsAtFirstUploadFailure(t *testing.T) {
	store := &fakeStorage{failAt: 2}
	repo := &fakeEquipmentRepo{}
	svc := testService(store, repo)

	media := MediaBundle{
		Images:    []MediaFile{textFile("front.jpg"), textFile("side.jpg"), textFile("rear.jpg")},
		Documents: []MediaFile{textFile("rc-book.pdf")},
	}

	_, err := svc.Submit(context.Background(), validDraft(), media, submissionIdentity())

	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "image upload", serr.Stage)

	// The failing upload was attempted, later files were not; the first
	// committed blob is not rolled back.
	assert.Len(t, store.uploads, 2)
	assert.Empty(t, repo.created)
}

func TestSubmitRetryReuploadsEverything(t *testing.T) {
	store := &fakeStorage{failAt: 2}
	repo := &fakeEquipmentRepo{}
	svc := testService(store, repo)

	media := MediaBundle{
		Images: []MediaFile{textFile("front.jpg"), textFile("side.jpg")},
	}

	_, err := svc.Submit(context.Background(), validDraft(), media, submissionIdentity())
	require.Error(t, err)

	// Retry succeeds and re-uploads both images from the start.
	id, err := svc.Submit(context.Background(), validDraft(), media, submissionIdentity())
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Len(t, store.uploads, 4)
}

func TestSubmitDocumentFailureReportsStage(t *testing.T) {
	store := &fakeStorage{failAt: 2}
	repo := &fakeEquipmentRepo{}
	svc := testService(store, repo)

	media := MediaBundle{
		Images:    []MediaFile{textFile("front.jpg")},
		Documents: []MediaFile{textFile("rc-book.pdf")},
	}

	_, err := svc.Submit(context.Background(), validDraft(), media, submissionIdentity())

	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "document upload", serr.Stage)
}

func TestSubmitValidatesBeforeUploading(t *testing.T) {
	store := &fakeStorage{}
	repo := &fakeEquipmentRepo{}
	svc := testService(store, repo)

	draft := validDraft()
	draft.Manufacturer = ""

	_, err := svc.Submit(context.Background(), draft, MediaBundle{Images: []MediaFile{textFile("front.jpg")}}, submissionIdentity())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, store.uploads)
}

func TestSubmitPersistFailure(t *testing.T) {
	store := &fakeStorage{}
	repo := &fakeEquipmentRepo{err: errors.New("write concern failed")}
	svc := testService(store, repo)

	media := MediaBundle{Images: []MediaFile{textFile("front.jpg")}}
	_, err := svc.Submit(context.Background(), validDraft(), media, submissionIdentity())

	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "persist", serr.Stage)
	// The uploaded blob stays; there is no rollback.
	assert.Len(t, store.uploads, 1)
}
