package dashboard

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"qaboard/internal/bootstrap/logging"
	"qaboard/internal/domain/qa"
	"qaboard/internal/errs"
	"qaboard/internal/ports"
)

const activityLimit = 10

// Thresholds are the alert rule ages, in whole days.
type Thresholds struct {
	CriticalBugDays int
	StaleTestDays   int
}

// Recorder receives the stats of each computed snapshot; the
// prometheus exporter implements it.
type Recorder interface {
	RecordStats(Stats)
}

// Service answers "what is the current state of QA health". All
// operations are read-only and recompute from the store on every call.
type Service struct {
	metrics    ports.MetricsStore
	thresholds Thresholds
	recorder   Recorder
	now        func() time.Time
}

func NewService(metrics ports.MetricsStore, thresholds Thresholds, recorder Recorder) *Service {
	return &Service{
		metrics:    metrics,
		thresholds: thresholds,
		recorder:   recorder,
		now:        time.Now,
	}
}

type Stats struct {
	TotalTests      int `json:"totalTests"`
	OpenBugs        int `json:"openBugs"`
	TotalTestCases  int `json:"totalTestCases"`
	AverageCoverage int `json:"averageCoverage"`
	TotalServices   int `json:"totalServices"`
}

type FunnelStage struct {
	Stage string `json:"stage"`
	Value int    `json:"value"`
}

// StatusMatrix is the dense result-by-service pivot: every result row
// carries a count for every service column, absent pairs are 0.
type StatusMatrix struct {
	Results  []string
	Services []string
	table    *Table[int]
}

func (m *StatusMatrix) Count(result, service string) int {
	if m.table == nil {
		return 0
	}
	return m.table.Cell(result, service)
}

// Rows materializes the matrix the way the dashboard consumes it: one
// map per result label with a cell per service.
func (m *StatusMatrix) Rows() []map[string]any {
	rows := make([]map[string]any, 0, len(m.Results))
	for _, result := range m.Results {
		row := make(map[string]any, len(m.Services)+1)
		row["status"] = result
		for _, svc := range m.Services {
			row[svc] = m.Count(result, svc)
		}
		rows = append(rows, row)
	}
	return rows
}

// Section tags a computed value with the error that degraded it, so
// the boundary can render zeroed data without losing the failure
// signal.
type Section[T any] struct {
	Value T
	Err   error
}

func (s Section[T]) Degraded() bool { return s.Err != nil }

// Snapshot is the full dashboard payload, one section per metric.
type Snapshot struct {
	Stats             Section[Stats]
	TestsByType       Section[[]ports.CategoryCount]
	TestsByResult     Section[[]ports.CategoryCount]
	StatusByService   Section[*StatusMatrix]
	CoverageByService Section[[]ports.ServiceCoverage]
	Funnel            Section[[]FunnelStage]
	RecentActivity    Section[[]ports.ActivityEntry]
	Alerts            Section[[]Alert]
}

// Degraded lists the names of sections whose query failed.
func (s *Snapshot) Degraded() []string {
	var out []string
	add := func(name string, degraded bool) {
		if degraded {
			out = append(out, name)
		}
	}
	add("stats", s.Stats.Degraded())
	add("testsByType", s.TestsByType.Degraded())
	add("testsByResult", s.TestsByResult.Degraded())
	add("testsStatusByService", s.StatusByService.Degraded())
	add("coverageByService", s.CoverageByService.Degraded())
	add("funnelData", s.Funnel.Degraded())
	add("recentActivities", s.RecentActivity.Degraded())
	add("alerts", s.Alerts.Degraded())
	return out
}

// Load computes every dashboard section concurrently and joins them
// into one snapshot. Sections are independent reads; a failing section
// degrades alone instead of failing the snapshot.
func (s *Service) Load(ctx context.Context) *Snapshot {
	snap := &Snapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.Stats.Value, snap.Stats.Err = s.Stats(gctx)
		return nil
	})
	g.Go(func() error {
		snap.TestsByType.Value, snap.TestsByType.Err = s.TestsByType(gctx)
		return nil
	})
	g.Go(func() error {
		snap.TestsByResult.Value, snap.TestsByResult.Err = s.TestsByResult(gctx)
		return nil
	})
	g.Go(func() error {
		snap.StatusByService.Value, snap.StatusByService.Err = s.TestsStatusByService(gctx)
		return nil
	})
	g.Go(func() error {
		snap.CoverageByService.Value, snap.CoverageByService.Err = s.CoverageByService(gctx)
		return nil
	})
	g.Go(func() error {
		snap.Funnel.Value, snap.Funnel.Err = s.Funnel(gctx)
		return nil
	})
	g.Go(func() error {
		snap.RecentActivity.Value, snap.RecentActivity.Err = s.RecentActivity(gctx)
		return nil
	})
	g.Go(func() error {
		snap.Alerts.Value, snap.Alerts.Err = s.Alerts(gctx)
		return nil
	})
	_ = g.Wait()

	for _, name := range snap.Degraded() {
		logging.Warn(ctx, "dashboard section degraded", slog.String("section", name))
	}

	if s.recorder != nil && !snap.Stats.Degraded() {
		s.recorder.RecordStats(snap.Stats.Value)
	}
	return snap
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	totals, err := s.metrics.DashboardTotals(ctx)
	if err != nil {
		return Stats{}, errs.Wrap(err, "load dashboard totals")
	}

	coverage := int(math.Round(totals.AverageCoverage))
	if coverage < 0 {
		coverage = 0
	}
	if coverage > 100 {
		coverage = 100
	}

	return Stats{
		TotalTests:      totals.TotalTests,
		OpenBugs:        totals.OpenBugs,
		TotalTestCases:  totals.TotalTestCases,
		AverageCoverage: coverage,
		TotalServices:   totals.TotalServices,
	}, nil
}

func (s *Service) TestsByType(ctx context.Context) ([]ports.CategoryCount, error) {
	rows, err := s.metrics.TestsByType(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load tests by type")
	}
	return mergeCanonical(rows, qa.NormalizeLabel), nil
}

func (s *Service) TestsByResult(ctx context.Context) ([]ports.CategoryCount, error) {
	rows, err := s.metrics.TestsByResult(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load tests by result")
	}
	return mergeCanonical(rows, qa.NormalizeResult), nil
}

// mergeCanonical folds grouped counts through the canonical label
// mapping and re-ranks by count descending (legacy spellings can merge
// into one label, changing the order the store returned).
func mergeCanonical(rows []ports.CategoryCount, normalize func(string) string) []ports.CategoryCount {
	index := make(map[string]int, len(rows))
	out := make([]ports.CategoryCount, 0, len(rows))
	for _, row := range rows {
		label := normalize(row.Label)
		if label == "" {
			continue
		}
		if i, ok := index[label]; ok {
			out[i].Count += row.Count
			continue
		}
		index[label] = len(out)
		out = append(out, ports.CategoryCount{Label: label, Count: row.Count})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func (s *Service) TestsStatusByService(ctx context.Context) (*StatusMatrix, error) {
	rows, err := s.metrics.TestResultCountsByService(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load test results by service")
	}

	table := Pivot(rows,
		func(r ports.ServiceResultCount) string { return qa.NormalizeResult(r.Result) },
		func(r ports.ServiceResultCount) string { return r.Service },
		func(r ports.ServiceResultCount) int { return r.Count },
		0,
	)

	return &StatusMatrix{
		Results:  table.RowKeys,
		Services: table.ColKeys,
		table:    table,
	}, nil
}

func (s *Service) CoverageByService(ctx context.Context) ([]ports.ServiceCoverage, error) {
	rows, err := s.metrics.CoverageByService(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load coverage by service")
	}
	return rows, nil
}

// Funnel stages are independent counts; they are expected to shrink
// left to right but never forced to nest.
func (s *Service) Funnel(ctx context.Context) ([]FunnelStage, error) {
	counts, err := s.metrics.FunnelCounts(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load funnel counts")
	}

	return []FunnelStage{
		{Stage: "Casos de Teste", Value: counts.TestCases},
		{Stage: "Testes Executados", Value: counts.Executed},
		{Stage: "Testes Aprovados", Value: counts.Approved},
		{Stage: "Bugs Encontrados", Value: counts.OpenBugs},
	}, nil
}

func (s *Service) RecentActivity(ctx context.Context) ([]ports.ActivityEntry, error) {
	entries, err := s.metrics.RecentActivity(ctx, activityLimit)
	if err != nil {
		return nil, errs.Wrap(err, "load recent activity")
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if len(entries) > activityLimit {
		entries = entries[:activityLimit]
	}
	return entries, nil
}

func (s *Service) Alerts(ctx context.Context) ([]Alert, error) {
	bugs, err := s.metrics.OpenCriticalBugs(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load open critical bugs")
	}
	tests, err := s.metrics.TestsByStaleness(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load tests for staleness")
	}

	return EvaluateAlerts(s.now(), bugs, tests, s.thresholds.CriticalBugDays, s.thresholds.StaleTestDays), nil
}
