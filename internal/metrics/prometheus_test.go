package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"qaboard/internal/usecase/dashboard"
)

func TestRecordStatsSetsGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	exp := NewExporter(reg)

	exp.RecordStats(dashboard.Stats{
		TotalTests:      42,
		OpenBugs:        7,
		TotalTestCases:  30,
		AverageCoverage: 66,
		TotalServices:   5,
	})

	if got := testutil.ToFloat64(exp.openBugs); got != 7 {
		t.Fatalf("open bugs gauge = %v, want 7", got)
	}
	if got := testutil.ToFloat64(exp.averageCoverage); got != 66 {
		t.Fatalf("coverage gauge = %v, want 66", got)
	}
	if got := testutil.ToFloat64(exp.totalServices); got != 5 {
		t.Fatalf("services gauge = %v, want 5", got)
	}
}

func TestObserveRequestCountsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	exp := NewExporter(reg)

	exp.ObserveRequest("GET", "/api/dashboard", "200", 25*time.Millisecond)
	exp.ObserveRequest("GET", "/api/dashboard", "200", 40*time.Millisecond)
	exp.ObserveRequest("POST", "/api/bugs", "400", 5*time.Millisecond)

	if got := testutil.ToFloat64(exp.requestsTotal.WithLabelValues("GET", "/api/dashboard", "200")); got != 2 {
		t.Fatalf("dashboard counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(exp.requestsTotal.WithLabelValues("POST", "/api/bugs", "400")); got != 1 {
		t.Fatalf("bugs counter = %v, want 1", got)
	}
}
