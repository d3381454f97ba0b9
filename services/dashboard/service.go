package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bookingRepo "shramic/database/repository/booking"
	equipmentRepo "shramic/database/repository/equipment"
	"shramic/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	overviewCachePrefix = "dashboard:"
	recentBookingCount  = 5
)

// ErrNotOwner is returned when a status change targets a listing the caller
// does not own.
var ErrNotOwner = errors.New("equipment does not belong to this owner")

// ErrInvalidStatus is returned for unknown operational statuses.
var ErrInvalidStatus = errors.New("invalid equipment status")

// DefaultDashboardService implements Service over the equipment and booking
// repositories. The aggregation itself is pure; this service only does the
// fetching, caching and reduction glue.
type DefaultDashboardService struct {
	EquipmentRepo equipmentRepo.EquipmentRepository
	BookingRepo   bookingRepo.BookingRepository

	// Cache is optional; when set, assembled overviews are cached briefly.
	Cache    *redis.Client
	CacheTTL time.Duration

	// Now is overridable in tests; nil means time.Now.
	Now func() time.Time
}

var _ Service = (*DefaultDashboardService)(nil)

func (s *DefaultDashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Overview fetches the owner's listings, then their bookings one listing at
// a time, and reduces both lists into the dashboard payload.
func (s *DefaultDashboardService) Overview(ctx context.Context, ownerPhone string) (*models.DashboardOverview, error) {
	if cached := s.cachedOverview(ctx, ownerPhone); cached != nil {
		return cached, nil
	}

	equipment, err := s.EquipmentRepo.GetByOwnerPhone(ctx, ownerPhone)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch equipment: %w", err)
	}

	var bookings []models.Booking
	for _, e := range equipment {
		list, err := s.BookingRepo.GetByEquipmentID(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch bookings for %s: %w", e.ID, err)
		}
		bookings = append(bookings, list...)
	}

	overview := &models.DashboardOverview{
		Owner:          ownerProfile(equipment),
		EquipmentStats: ComputeEquipmentStats(equipment),
		BookingStats:   ComputeBookingStats(bookings),
		Earnings:       ComputeEarnings(bookings, s.now()),
		Equipment:      equipment,
		RecentBookings: recentBookings(bookings),
	}

	s.cacheOverview(ctx, ownerPhone, overview)
	return overview, nil
}

// SetEquipmentStatus applies an owner's Available/Rented/Maintenance toggle
// after checking ownership, then invalidates the cached overview.
func (s *DefaultDashboardService) SetEquipmentStatus(ctx context.Context, ownerPhone, equipmentID, status string) error {
	switch status {
	case models.EquipmentAvailable, models.EquipmentRented, models.EquipmentMaintenance:
	default:
		return ErrInvalidStatus
	}

	equipment, err := s.EquipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return fmt.Errorf("failed to fetch equipment: %w", err)
	}
	if equipment == nil || equipment.OwnerPhoneNumber != ownerPhone {
		return ErrNotOwner
	}

	if err := s.EquipmentRepo.UpdateStatus(ctx, equipmentID, status); err != nil {
		return fmt.Errorf("failed to update equipment status: %w", err)
	}

	s.invalidateOverview(ctx, ownerPhone)
	return nil
}

// ownerProfile derives the owner's display profile from the first listing,
// falling back to "Individual Owner" when no company is recorded.
func ownerProfile(equipment []models.Equipment) models.OwnerProfile {
	if len(equipment) == 0 {
		return models.OwnerProfile{Company: "Individual Owner"}
	}
	first := equipment[0]
	profile := models.OwnerProfile{
		Name:    first.SellerName,
		Email:   first.SellerEmail,
		Company: first.CompanyName,
	}
	if profile.Company == "" {
		profile.Company = "Individual Owner"
	}
	return profile
}

func recentBookings(bookings []models.Booking) []models.Booking {
	if len(bookings) <= recentBookingCount {
		return bookings
	}
	return bookings[:recentBookingCount]
}

func (s *DefaultDashboardService) cachedOverview(ctx context.Context, ownerPhone string) *models.DashboardOverview {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, overviewCachePrefix+ownerPhone).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("Dashboard cache read failed", zap.Error(err))
		}
		return nil
	}
	var overview models.DashboardOverview
	if err := json.Unmarshal([]byte(data), &overview); err != nil {
		zap.L().Warn("Dashboard cache entry corrupt", zap.Error(err))
		return nil
	}
	return &overview
}

func (s *DefaultDashboardService) cacheOverview(ctx context.Context, ownerPhone string, overview *models.DashboardOverview) {
	if s.Cache == nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	data, err := json.Marshal(overview)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, overviewCachePrefix+ownerPhone, data, ttl).Err(); err != nil {
		zap.L().Warn("Dashboard cache write failed", zap.Error(err))
	}
}

func (s *DefaultDashboardService) invalidateOverview(ctx context.Context, ownerPhone string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, overviewCachePrefix+ownerPhone).Err(); err != nil {
		zap.L().Warn("Dashboard cache invalidation failed", zap.Error(err))
	}
}
