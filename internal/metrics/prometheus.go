package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"qaboard/internal/usecase/dashboard"
)

// Exporter publishes request metrics and the latest dashboard stats.
// Gauges refresh on each dashboard computation; nothing is scraped
// from the database directly.
type Exporter struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	openBugs        prometheus.Gauge
	totalTests      prometheus.Gauge
	totalTestCases  prometheus.Gauge
	totalServices   prometheus.Gauge
	averageCoverage prometheus.Gauge
}

func NewExporter(reg prometheus.Registerer) *Exporter {
	factory := promauto.With(reg)
	return &Exporter{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qaboard_http_requests_total",
				Help: "HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qaboard_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		openBugs: factory.NewGauge(prometheus.GaugeOpts{
			Name: "qaboard_open_bugs",
			Help: "Open and in-progress bugs at the last dashboard computation",
		}),
		totalTests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "qaboard_tests_total",
			Help: "Executed tests at the last dashboard computation",
		}),
		totalTestCases: factory.NewGauge(prometheus.GaugeOpts{
			Name: "qaboard_test_cases_total",
			Help: "Registered test cases at the last dashboard computation",
		}),
		totalServices: factory.NewGauge(prometheus.GaugeOpts{
			Name: "qaboard_services_total",
			Help: "Registered services at the last dashboard computation",
		}),
		averageCoverage: factory.NewGauge(prometheus.GaugeOpts{
			Name: "qaboard_average_coverage_percent",
			Help: "Mean per-service test case coverage at the last dashboard computation",
		}),
	}
}

// RecordStats implements dashboard.Recorder.
func (e *Exporter) RecordStats(stats dashboard.Stats) {
	e.openBugs.Set(float64(stats.OpenBugs))
	e.totalTests.Set(float64(stats.TotalTests))
	e.totalTestCases.Set(float64(stats.TotalTestCases))
	e.totalServices.Set(float64(stats.TotalServices))
	e.averageCoverage.Set(float64(stats.AverageCoverage))
}

// ObserveRequest records one served HTTP request.
func (e *Exporter) ObserveRequest(method, route, status string, elapsed time.Duration) {
	e.requestsTotal.WithLabelValues(method, route, status).Inc()
	e.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
