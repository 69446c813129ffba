package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"qaboard/internal/errs"
	"qaboard/internal/ports"
)

// MetricsRepository is the read-only aggregation surface behind the
// dashboard. Every method issues a parameterized query and recomputes
// from the store; nothing is cached.
type MetricsRepository struct {
	db *gorm.DB
}

func NewMetricsRepository(db *gorm.DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

func (r *MetricsRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	return r.db.WithContext(ctx), nil
}

// pendingLabels covers the canonical pending sentinel and its legacy
// spelling still present in older rows.
var pendingLabels = []string{"pendente", "pending"}

func (r *MetricsRepository) DashboardTotals(ctx context.Context) (ports.DashboardTotals, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.DashboardTotals{}, err
	}

	// Coverage per service: distinct test cases with at least one
	// execution over total test cases, 0 when the service has none.
	const query = `
		WITH service_coverage AS (
			SELECT
				s.id,
				COALESCE(
					CAST(COUNT(DISTINCT t.test_case_id) AS REAL) / NULLIF(COUNT(DISTINCT tc.id), 0) * 100, 0
				) AS coverage
			FROM services s
			LEFT JOIN test_cases tc ON tc.service_id = s.id
			LEFT JOIN tests t ON t.test_case_id = tc.id
			GROUP BY s.id
		)
		SELECT
			(SELECT COUNT(*) FROM tests WHERE LOWER(TRIM(result)) NOT IN (?, ?)) AS total_tests,
			(SELECT COUNT(*) FROM bugs WHERE LOWER(TRIM(status)) IN ('open', 'in_progress')) AS open_bugs,
			(SELECT COUNT(*) FROM test_cases) AS total_test_cases,
			(SELECT COUNT(*) FROM services) AS total_services,
			COALESCE((SELECT AVG(coverage) FROM service_coverage), 0) AS average_coverage`

	var row struct {
		TotalTests      int     `gorm:"column:total_tests"`
		OpenBugs        int     `gorm:"column:open_bugs"`
		TotalTestCases  int     `gorm:"column:total_test_cases"`
		TotalServices   int     `gorm:"column:total_services"`
		AverageCoverage float64 `gorm:"column:average_coverage"`
	}
	if err := db.Raw(query, pendingLabels[0], pendingLabels[1]).Scan(&row).Error; err != nil {
		return ports.DashboardTotals{}, errs.Wrap(err, "query dashboard totals")
	}

	return ports.DashboardTotals{
		TotalTests:      row.TotalTests,
		OpenBugs:        row.OpenBugs,
		TotalTestCases:  row.TotalTestCases,
		TotalServices:   row.TotalServices,
		AverageCoverage: row.AverageCoverage,
	}, nil
}

func (r *MetricsRepository) TestsByType(ctx context.Context) ([]ports.CategoryCount, error) {
	return r.testsGroupedBy(ctx, "type")
}

func (r *MetricsRepository) TestsByResult(ctx context.Context) ([]ports.CategoryCount, error) {
	return r.testsGroupedBy(ctx, "result")
}

func (r *MetricsRepository) testsGroupedBy(ctx context.Context, column string) ([]ports.CategoryCount, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// column is one of two fixed identifiers, never user input.
	query := fmt.Sprintf(`
		SELECT LOWER(TRIM(%[1]s)) AS label, COUNT(*) AS count
		FROM tests
		WHERE %[1]s IS NOT NULL AND TRIM(%[1]s) <> ''
		GROUP BY LOWER(TRIM(%[1]s))
		ORDER BY count DESC`, column)

	var rows []struct {
		Label string `gorm:"column:label"`
		Count int    `gorm:"column:count"`
	}
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, errs.Wrapf(err, "query tests by %s", column)
	}

	items := make([]ports.CategoryCount, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.CategoryCount{Label: row.Label, Count: row.Count})
	}
	return items, nil
}

func (r *MetricsRepository) TestResultCountsByService(ctx context.Context) ([]ports.ServiceResultCount, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT
			s.name AS service,
			LOWER(TRIM(t.result)) AS result,
			COUNT(t.id) AS count
		FROM tests t
		JOIN test_cases tc ON t.test_case_id = tc.id
		JOIN services s ON tc.service_id = s.id
		WHERE t.result IS NOT NULL AND TRIM(t.result) <> ''
		GROUP BY s.name, LOWER(TRIM(t.result))
		ORDER BY s.name, result`

	var rows []struct {
		Service string `gorm:"column:service"`
		Result  string `gorm:"column:result"`
		Count   int    `gorm:"column:count"`
	}
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query test results by service")
	}

	items := make([]ports.ServiceResultCount, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.ServiceResultCount{
			Service: row.Service,
			Result:  row.Result,
			Count:   row.Count,
		})
	}
	return items, nil
}

func (r *MetricsRepository) CoverageByService(ctx context.Context) ([]ports.ServiceCoverage, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT
			s.name AS service,
			CAST(ROUND(COALESCE(
				(
					SELECT CAST(COUNT(DISTINCT t.test_case_id) AS REAL) / NULLIF(COUNT(DISTINCT tc.id), 0) * 100
					FROM test_cases tc
					LEFT JOIN tests t ON t.test_case_id = tc.id
					WHERE tc.service_id = s.id
				), 0
			)) AS INTEGER) AS coverage
		FROM services s
		ORDER BY s.name`

	var rows []struct {
		Service  string `gorm:"column:service"`
		Coverage int    `gorm:"column:coverage"`
	}
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query coverage by service")
	}

	items := make([]ports.ServiceCoverage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.ServiceCoverage{Service: row.Service, Coverage: row.Coverage})
	}
	return items, nil
}

func (r *MetricsRepository) FunnelCounts(ctx context.Context) (ports.FunnelCounts, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.FunnelCounts{}, err
	}

	const query = `
		SELECT
			(SELECT COUNT(*) FROM test_cases) AS test_cases_count,
			(SELECT COUNT(*) FROM tests) AS tests_count,
			(SELECT COUNT(*) FROM tests WHERE LOWER(TRIM(result)) = 'aprovado') AS passed_count,
			(SELECT COUNT(*) FROM bugs WHERE LOWER(TRIM(status)) IN ('open', 'in_progress')) AS bugs_count`

	var row struct {
		TestCasesCount int `gorm:"column:test_cases_count"`
		TestsCount     int `gorm:"column:tests_count"`
		PassedCount    int `gorm:"column:passed_count"`
		BugsCount      int `gorm:"column:bugs_count"`
	}
	if err := db.Raw(query).Scan(&row).Error; err != nil {
		return ports.FunnelCounts{}, errs.Wrap(err, "query funnel counts")
	}

	return ports.FunnelCounts{
		TestCases: row.TestCasesCount,
		Executed:  row.TestsCount,
		Approved:  row.PassedCount,
		OpenBugs:  row.BugsCount,
	}, nil
}

func (r *MetricsRepository) OpenCriticalBugs(ctx context.Context) ([]ports.AlertCandidate, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT id, name, description, created_at AS reference_time
		FROM bugs
		WHERE LOWER(TRIM(status)) IN ('open', 'in_progress')
		  AND LOWER(TRIM(criticality)) = 'critica'`

	return r.scanAlertCandidates(db, query, "query open critical bugs")
}

func (r *MetricsRepository) TestsByStaleness(ctx context.Context) ([]ports.AlertCandidate, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT id, name, description, updated_at AS reference_time
		FROM tests`

	return r.scanAlertCandidates(db, query, "query tests for staleness")
}

func (r *MetricsRepository) scanAlertCandidates(db *gorm.DB, query, wrapMsg string) ([]ports.AlertCandidate, error) {
	var rows []struct {
		ID            uint      `gorm:"column:id"`
		Name          string    `gorm:"column:name"`
		Description   string    `gorm:"column:description"`
		ReferenceTime time.Time `gorm:"column:reference_time"`
	}
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, errs.Wrap(err, wrapMsg)
	}

	items := make([]ports.AlertCandidate, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.AlertCandidate{
			ID:            row.ID,
			Name:          row.Name,
			Description:   row.Description,
			ReferenceTime: row.ReferenceTime,
		})
	}
	return items, nil
}

func (r *MetricsRepository) RecentActivity(ctx context.Context, limit int) ([]ports.ActivityEntry, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	const query = `
		SELECT 'test' AS type, name AS title, description, created_at, id
		FROM tests
		WHERE name IS NOT NULL AND TRIM(name) <> ''
		UNION ALL
		SELECT 'bug' AS type, name AS title, description, created_at, id
		FROM bugs
		WHERE name IS NOT NULL AND TRIM(name) <> ''
		UNION ALL
		SELECT 'test_case' AS type, name AS title, COALESCE(observations, '') AS description, created_at, id
		FROM test_cases
		WHERE name IS NOT NULL AND TRIM(name) <> ''
		ORDER BY created_at DESC
		LIMIT ?`

	var rows []struct {
		Type        string    `gorm:"column:type"`
		Title       string    `gorm:"column:title"`
		Description string    `gorm:"column:description"`
		CreatedAt   time.Time `gorm:"column:created_at"`
		ID          uint      `gorm:"column:id"`
	}
	if err := db.Raw(query, limit).Scan(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query recent activity")
	}

	items := make([]ports.ActivityEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.ActivityEntry{
			ID:          row.ID,
			Type:        row.Type,
			Title:       row.Title,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
		})
	}
	return items, nil
}
