package dashboard

import (
	"context"

	"shramic/models"
)

// Service assembles the owner dashboard and applies owner-initiated
// equipment status changes.
type Service interface {
	Overview(ctx context.Context, ownerPhone string) (*models.DashboardOverview, error)
	SetEquipmentStatus(ctx context.Context, ownerPhone, equipmentID, status string) error
}
