package api

import (
	"net/http"
	"time"

	"qaboard/internal/ports"
	"qaboard/internal/usecase/dashboard"
)

type categoryView struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type coverageView struct {
	Service  string `json:"service"`
	Coverage int    `json:"coverage"`
}

type activityView struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type dashboardResponse struct {
	Stats                dashboard.Stats         `json:"stats"`
	TestsByType          []categoryView          `json:"testsByType"`
	TestsByResult        []categoryView          `json:"testsByResult"`
	TestsStatusByService []map[string]any        `json:"testsStatusByService"`
	CoverageByService    []coverageView          `json:"coverageByService"`
	FunnelData           []dashboard.FunnelStage `json:"funnelData"`
	RecentActivities     []activityView          `json:"recentActivities"`
	Alerts               []dashboard.Alert       `json:"alerts"`
	Degraded             []string                `json:"degraded"`
}

// handleDashboard returns the full dashboard payload. Degraded
// sections render their zero value and are listed in degraded[] so the
// client can flag them.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snap := s.dashboard.Load(r.Context())

	resp := dashboardResponse{
		Stats:                snap.Stats.Value,
		TestsByType:          categoryViews(snap.TestsByType.Value),
		TestsByResult:        categoryViews(snap.TestsByResult.Value),
		TestsStatusByService: statusRows(snap.StatusByService.Value),
		CoverageByService:    coverageViews(snap.CoverageByService.Value),
		FunnelData:           funnelStages(snap.Funnel.Value),
		RecentActivities:     activityViews(snap.RecentActivity.Value),
		Alerts:               alertViews(snap.Alerts.Value),
		Degraded:             degradedList(snap),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.dashboard.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleDashboardAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.dashboard.Alerts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, alertViews(alerts))
}

func (s *Server) handleDashboardActivity(w http.ResponseWriter, r *http.Request) {
	entries, err := s.dashboard.RecentActivity(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activityViews(entries))
}

func categoryViews(rows []ports.CategoryCount) []categoryView {
	out := make([]categoryView, 0, len(rows))
	for _, row := range rows {
		out = append(out, categoryView{Name: row.Label, Value: row.Count})
	}
	return out
}

func coverageViews(rows []ports.ServiceCoverage) []coverageView {
	out := make([]coverageView, 0, len(rows))
	for _, row := range rows {
		out = append(out, coverageView{Service: row.Service, Coverage: row.Coverage})
	}
	return out
}

func activityViews(entries []ports.ActivityEntry) []activityView {
	out := make([]activityView, 0, len(entries))
	for _, e := range entries {
		out = append(out, activityView{
			ID:          e.ID,
			Type:        e.Type,
			Title:       e.Title,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}
	return out
}

func alertViews(alerts []dashboard.Alert) []dashboard.Alert {
	if alerts == nil {
		return []dashboard.Alert{}
	}
	return alerts
}

func funnelStages(stages []dashboard.FunnelStage) []dashboard.FunnelStage {
	if stages == nil {
		return []dashboard.FunnelStage{}
	}
	return stages
}

func statusRows(matrix *dashboard.StatusMatrix) []map[string]any {
	if matrix == nil {
		return []map[string]any{}
	}
	return matrix.Rows()
}

func degradedList(snap *dashboard.Snapshot) []string {
	if degraded := snap.Degraded(); degraded != nil {
		return degraded
	}
	return []string{}
}
