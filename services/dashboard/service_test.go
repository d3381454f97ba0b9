package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"shramic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEquipmentRepo struct {
	byOwner     map[string][]models.Equipment
	byID        map[string]*models.Equipment
	statusCalls []string
	ownerCalls  int
}

func (r *stubEquipmentRepo) Create(ctx context.Context, equipment *models.Equipment) (string, error) {
	return "", errors.New("not implemented")
}

func (r *stubEquipmentRepo) GetByID(ctx context.Context, id string) (*models.Equipment, error) {
	return r.byID[id], nil
}

func (r *stubEquipmentRepo) GetByOwnerPhone(ctx context.Context, ownerPhone string) ([]models.Equipment, error) {
	r.ownerCalls++
	return r.byOwner[ownerPhone], nil
}

func (r *stubEquipmentRepo) List(ctx context.Context, limit int64) ([]models.Equipment, error) {
	return nil, nil
}

func (r *stubEquipmentRepo) UpdateStatus(ctx context.Context, id, currentStatus string) error {
	r.statusCalls = append(r.statusCalls, id+"="+currentStatus)
	if e, ok := r.byID[id]; ok {
		e.CurrentStatus = currentStatus
	}
	return nil
}

type stubBookingRepo struct {
	byEquipment map[string][]models.Booking
	calls       []string
}

func (r *stubBookingRepo) Create(ctx context.Context, booking *models.Booking) (string, error) {
	return "", errors.New("not implemented")
}

func (r *stubBookingRepo) GetByEquipmentID(ctx context.Context, equipmentID string) ([]models.Booking, error) {
	r.calls = append(r.calls, equipmentID)
	return r.byEquipment[equipmentID], nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
}

func TestOverviewAggregatesAcrossListings(t *testing.T) {
	owner := "+919876543210"
	equipRepo := &stubEquipmentRepo{
		byOwner: map[string][]models.Equipment{
			owner: {
				{ID: "e1", SellerName: "Ravi Kumar", SellerEmail: "ravi@example.com", CompanyName: "Kumar Earthmovers", CurrentStatus: models.EquipmentRented},
				{ID: "e2"},
			},
		},
	}
	bookRepo := &stubBookingRepo{
		byEquipment: map[string][]models.Booking{
			"e1": {
				{BookingID: "b1", EquipmentID: "e1", Status: models.BookingCompleted, TotalAmount: 100, StartDate: flexDate("2025-06-15")},
			},
			"e2": {
				{BookingID: "b2", EquipmentID: "e2", Status: models.BookingConfirmed, TotalAmount: 30, StartDate: flexDate("2025-06-20")},
			},
		},
	}
	svc := &DefaultDashboardService{EquipmentRepo: equipRepo, BookingRepo: bookRepo, Now: fixedNow}

	overview, err := svc.Overview(context.Background(), owner)
	require.NoError(t, err)

	// Bookings are fetched per listing.
	assert.Equal(t, []string{"e1", "e2"}, bookRepo.calls)

	assert.Equal(t, models.OwnerProfile{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Company: "Kumar Earthmovers",
	}, overview.Owner)

	assert.Equal(t, models.EquipmentStats{Total: 2, Available: 1, Rented: 1}, overview.EquipmentStats)
	assert.Equal(t, models.BookingStats{Upcoming: 1, Completed: 1}, overview.BookingStats)
	assert.Equal(t, models.EarningsSummary{Today: 100, Month: 100, Lifetime: 130, Pending: 30}, overview.Earnings)
	assert.Len(t, overview.RecentBookings, 2)
}

func TestOverviewIndividualOwnerFallback(t *testing.T) {
	owner := "+919876543210"
	equipRepo := &stubEquipmentRepo{
		byOwner: map[string][]models.Equipment{
			owner: {{ID: "e1", SellerName: "Ravi Kumar", SellerEmail: "ravi@example.com"}},
		},
	}
	svc := &DefaultDashboardService{EquipmentRepo: equipRepo, BookingRepo: &stubBookingRepo{}, Now: fixedNow}

	overview, err := svc.Overview(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, "Individual Owner", overview.Owner.Company)
	assert.Equal(t, "Ravi Kumar", overview.Owner.Name)
}

func TestOverviewNoListings(t *testing.T) {
	svc := &DefaultDashboardService{
		EquipmentRepo: &stubEquipmentRepo{},
		BookingRepo:   &stubBookingRepo{},
		Now:           fixedNow,
	}

	overview, err := svc.Overview(context.Background(), "+910000000000")
	require.NoError(t, err)
	assert.Equal(t, "Individual Owner", overview.Owner.Company)
	assert.Equal(t, models.EquipmentStats{}, overview.EquipmentStats)
	assert.Equal(t, models.EarningsSummary{}, overview.Earnings)
	assert.Empty(t, overview.RecentBookings)
}

func TestOverviewRecentBookingsCapped(t *testing.T) {
	owner := "+919876543210"
	bookings := make([]models.Booking, 8)
	for i := range bookings {
		bookings[i] = models.Booking{BookingID: "b", EquipmentID: "e1", Status: models.BookingCompleted, StartDate: flexDate("2025-06-01")}
	}
	equipRepo := &stubEquipmentRepo{
		byOwner: map[string][]models.Equipment{owner: {{ID: "e1"}}},
	}
	bookRepo := &stubBookingRepo{byEquipment: map[string][]models.Booking{"e1": bookings}}
	svc := &DefaultDashboardService{EquipmentRepo: equipRepo, BookingRepo: bookRepo, Now: fixedNow}

	overview, err := svc.Overview(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, overview.RecentBookings, recentBookingCount)
	assert.Equal(t, 8, overview.BookingStats.Completed)
}

func TestSetEquipmentStatus(t *testing.T) {
	owner := "+919876543210"
	equipRepo := &stubEquipmentRepo{
		byID: map[string]*models.Equipment{
			"e1": {ID: "e1", OwnerPhoneNumber: owner},
			"e2": {ID: "e2", OwnerPhoneNumber: "+911111111111"},
		},
	}
	svc := &DefaultDashboardService{EquipmentRepo: equipRepo, BookingRepo: &stubBookingRepo{}, Now: fixedNow}

	t.Run("owner can toggle", func(t *testing.T) {
		err := svc.SetEquipmentStatus(context.Background(), owner, "e1", models.EquipmentMaintenance)
		require.NoError(t, err)
		assert.Equal(t, []string{"e1=Maintenance"}, equipRepo.statusCalls)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		err := svc.SetEquipmentStatus(context.Background(), owner, "e1", "Broken")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("someone else's listing rejected", func(t *testing.T) {
		err := svc.SetEquipmentStatus(context.Background(), owner, "e2", models.EquipmentRented)
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("missing listing rejected", func(t *testing.T) {
		err := svc.SetEquipmentStatus(context.Background(), owner, "missing", models.EquipmentRented)
		assert.ErrorIs(t, err, ErrNotOwner)
	})
}
