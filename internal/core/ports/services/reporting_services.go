package services

import (
	"context"
	"time"

	"github.com/trackmint/finance_tracker_app/internal/core/domain"
)

// ReportingSvcFacade produces the read-only dashboard aggregate.
type ReportingSvcFacade interface {
	GetDashboardSummary(ctx context.Context, userID string, startDate *time.Time, endDate *time.Time) (*domain.DashboardSummary, error)
}
