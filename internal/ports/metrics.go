package ports

import (
	"context"
	"time"
)

// DashboardTotals carries the raw numbers behind getDashboardStats.
// AverageCoverage is the unrounded mean of per-service coverage ratios.
type DashboardTotals struct {
	TotalTests      int
	OpenBugs        int
	TotalTestCases  int
	TotalServices   int
	AverageCoverage float64
}

// CategoryCount is one grouped row of a label distribution.
type CategoryCount struct {
	Label string
	Count int
}

// ServiceResultCount is one sparse cell of the result-by-service
// grouping; the dense matrix is materialized by the dashboard usecase.
type ServiceResultCount struct {
	Service string
	Result  string
	Count   int
}

type ServiceCoverage struct {
	Service  string
	Coverage int
}

type FunnelCounts struct {
	TestCases int
	Executed  int
	Approved  int
	OpenBugs  int
}

// AlertCandidate is a row eligible for an alert rule before the age
// threshold is applied. ReferenceTime is created_at for bugs and
// updated_at for tests.
type AlertCandidate struct {
	ID            uint
	Name          string
	Description   string
	ReferenceTime time.Time
}

// ActivityEntry is one row of the heterogeneous recent-activity feed.
type ActivityEntry struct {
	ID          uint
	Type        string
	Title       string
	Description string
	CreatedAt   time.Time
}

// MetricsStore is the read-only aggregation surface over the entity
// store. All methods are side-effect free and recompute on every call.
type MetricsStore interface {
	DashboardTotals(ctx context.Context) (DashboardTotals, error)
	TestsByType(ctx context.Context) ([]CategoryCount, error)
	TestsByResult(ctx context.Context) ([]CategoryCount, error)
	TestResultCountsByService(ctx context.Context) ([]ServiceResultCount, error)
	CoverageByService(ctx context.Context) ([]ServiceCoverage, error)
	FunnelCounts(ctx context.Context) (FunnelCounts, error)

	// OpenCriticalBugs returns bugs with status open/in_progress and
	// criticality critica; the day-threshold rule runs in the usecase.
	OpenCriticalBugs(ctx context.Context) ([]AlertCandidate, error)
	// TestsByStaleness returns every test with its updated_at as the
	// reference time.
	TestsByStaleness(ctx context.Context) ([]AlertCandidate, error)

	RecentActivity(ctx context.Context, limit int) ([]ActivityEntry, error)
}
