package usecase

import (
	"context"

	"portal/internal/analytics"
)

// DashboardUsecase builds the admin overview.
type DashboardUsecase interface {
	// GetDashboard never fails because a single source is down; the result
	// is marked degraded instead.
	GetDashboard(ctx context.Context, granularity string) (*analytics.DashboardStats, error)
}
