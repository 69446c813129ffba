package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"qaboard/internal/ports"
)

// fakeMetricsStore returns canned section data; individual sections can
// be failed independently.
type fakeMetricsStore struct {
	totals         ports.DashboardTotals
	byType         []ports.CategoryCount
	byResult       []ports.CategoryCount
	byService      []ports.ServiceResultCount
	coverage       []ports.ServiceCoverage
	funnel         ports.FunnelCounts
	criticalBugs   []ports.AlertCandidate
	staleTests     []ports.AlertCandidate
	activity       []ports.ActivityEntry
	failingSection string
}

var errSectionDown = errors.New("section query failed")

func (f *fakeMetricsStore) fail(name string) error {
	if f.failingSection == name {
		return errSectionDown
	}
	return nil
}

func (f *fakeMetricsStore) DashboardTotals(context.Context) (ports.DashboardTotals, error) {
	return f.totals, f.fail("totals")
}

func (f *fakeMetricsStore) TestsByType(context.Context) ([]ports.CategoryCount, error) {
	return f.byType, f.fail("byType")
}

func (f *fakeMetricsStore) TestsByResult(context.Context) ([]ports.CategoryCount, error) {
	return f.byResult, f.fail("byResult")
}

func (f *fakeMetricsStore) TestResultCountsByService(context.Context) ([]ports.ServiceResultCount, error) {
	return f.byService, f.fail("byService")
}

func (f *fakeMetricsStore) CoverageByService(context.Context) ([]ports.ServiceCoverage, error) {
	return f.coverage, f.fail("coverage")
}

func (f *fakeMetricsStore) FunnelCounts(context.Context) (ports.FunnelCounts, error) {
	return f.funnel, f.fail("funnel")
}

func (f *fakeMetricsStore) OpenCriticalBugs(context.Context) ([]ports.AlertCandidate, error) {
	return f.criticalBugs, f.fail("criticalBugs")
}

func (f *fakeMetricsStore) TestsByStaleness(context.Context) ([]ports.AlertCandidate, error) {
	return f.staleTests, f.fail("staleTests")
}

func (f *fakeMetricsStore) RecentActivity(context.Context, int) ([]ports.ActivityEntry, error) {
	return f.activity, f.fail("activity")
}

func newTestService(store ports.MetricsStore) *Service {
	svc := NewService(store, Thresholds{CriticalBugDays: 7, StaleTestDays: 30}, nil)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestStatsRoundsAndClampsCoverage(t *testing.T) {
	cases := []struct {
		name string
		raw  float64
		want int
	}{
		{name: "rounds half up", raw: 66.5, want: 67},
		{name: "rounds down", raw: 33.3, want: 33},
		{name: "clamps above hundred", raw: 104.2, want: 100},
		{name: "clamps below zero", raw: -3.1, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(&fakeMetricsStore{
				totals: ports.DashboardTotals{TotalTests: 12, AverageCoverage: tc.raw},
			})
			stats, err := svc.Stats(context.Background())
			if err != nil {
				t.Fatalf("Stats: %v", err)
			}
			if stats.AverageCoverage != tc.want {
				t.Fatalf("coverage = %d, want %d", stats.AverageCoverage, tc.want)
			}
			if stats.TotalTests != 12 {
				t.Fatalf("total tests = %d, want 12", stats.TotalTests)
			}
		})
	}
}

func TestTestsByResultMergesLegacyLabels(t *testing.T) {
	svc := newTestService(&fakeMetricsStore{
		byResult: []ports.CategoryCount{
			{Label: "falho", Count: 3},
			{Label: "aprovado", Count: 2},
			{Label: "reprovado", Count: 2},
		},
	})

	got, err := svc.TestsByResult(context.Background())
	if err != nil {
		t.Fatalf("TestsByResult: %v", err)
	}

	// reprovado folds into falho and the merged count re-ranks first.
	want := []ports.CategoryCount{
		{Label: "falho", Count: 5},
		{Label: "aprovado", Count: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged counts mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusMatrixNormalizesAndDensifies(t *testing.T) {
	svc := newTestService(&fakeMetricsStore{
		byService: []ports.ServiceResultCount{
			{Service: "auth", Result: "aprovado", Count: 4},
			{Service: "auth", Result: "reprovado", Count: 1},
			{Service: "billing", Result: "falho", Count: 2},
		},
	})

	matrix, err := svc.TestsStatusByService(context.Background())
	if err != nil {
		t.Fatalf("TestsStatusByService: %v", err)
	}

	if diff := cmp.Diff([]string{"aprovado", "falho"}, matrix.Results); diff != "" {
		t.Fatalf("result axis mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"auth", "billing"}, matrix.Services); diff != "" {
		t.Fatalf("service axis mismatch (-want +got):\n%s", diff)
	}

	// Legacy reprovado merges into the falho row.
	if got := matrix.Count("falho", "auth"); got != 1 {
		t.Fatalf("count(falho, auth) = %d, want 1", got)
	}
	// Dense matrix: the never-seen pair reads as 0.
	if got := matrix.Count("aprovado", "billing"); got != 0 {
		t.Fatalf("count(aprovado, billing) = %d, want 0", got)
	}
}

func TestFunnelStagesAreIndependentCounts(t *testing.T) {
	svc := newTestService(&fakeMetricsStore{
		funnel: ports.FunnelCounts{TestCases: 10, Executed: 25, Approved: 18, OpenBugs: 4},
	})

	got, err := svc.Funnel(context.Background())
	if err != nil {
		t.Fatalf("Funnel: %v", err)
	}

	// Executed exceeding TestCases is reported as-is, never clamped.
	want := []FunnelStage{
		{Stage: "Casos de Teste", Value: 10},
		{Stage: "Testes Executados", Value: 25},
		{Stage: "Testes Aprovados", Value: 18},
		{Stage: "Bugs Encontrados", Value: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("funnel mismatch (-want +got):\n%s", diff)
	}
}

func TestRecentActivityEnforcesLimitAndOrder(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var entries []ports.ActivityEntry
	for i := 0; i < 12; i++ {
		entries = append(entries, ports.ActivityEntry{
			ID:        uint(i + 1),
			Type:      "test",
			Title:     "entry",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	svc := newTestService(&fakeMetricsStore{activity: entries})
	got, err := svc.RecentActivity(context.Background())
	if err != nil {
		t.Fatalf("RecentActivity: %v", err)
	}

	if len(got) != activityLimit {
		t.Fatalf("got %d entries, want %d", len(got), activityLimit)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].CreatedAt.Before(got[i].CreatedAt) {
			t.Fatalf("entries not newest-first at index %d", i)
		}
	}
	if got[0].ID != 12 {
		t.Fatalf("newest entry id = %d, want 12", got[0].ID)
	}
}

func TestLoadDegradesFailedSectionOnly(t *testing.T) {
	store := &fakeMetricsStore{
		totals:         ports.DashboardTotals{TotalTests: 5, AverageCoverage: 80},
		byResult:       []ports.CategoryCount{{Label: "aprovado", Count: 5}},
		failingSection: "byType",
	}

	snap := newTestService(store).Load(context.Background())

	if diff := cmp.Diff([]string{"testsByType"}, snap.Degraded()); diff != "" {
		t.Fatalf("degraded sections mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(snap.TestsByType.Err, errSectionDown) {
		t.Fatalf("section error not preserved: %v", snap.TestsByType.Err)
	}
	if snap.Stats.Value.TotalTests != 5 {
		t.Fatalf("healthy section lost its value: %+v", snap.Stats.Value)
	}
	if len(snap.TestsByResult.Value) != 1 {
		t.Fatalf("healthy section lost its value: %+v", snap.TestsByResult.Value)
	}
}

func TestLoadAlertsSectionDegradesWhenEitherQueryFails(t *testing.T) {
	store := &fakeMetricsStore{failingSection: "staleTests"}

	snap := newTestService(store).Load(context.Background())
	if !snap.Alerts.Degraded() {
		t.Fatal("alerts section should degrade when the staleness query fails")
	}
}

func TestLoadAllHealthyReportsNoDegradation(t *testing.T) {
	snap := newTestService(&fakeMetricsStore{}).Load(context.Background())
	if degraded := snap.Degraded(); len(degraded) != 0 {
		t.Fatalf("unexpected degraded sections: %v", degraded)
	}
}
