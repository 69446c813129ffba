package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"qaboard/internal/ports"
	"qaboard/internal/usecase/catalog"
	"qaboard/internal/usecase/dashboard"
	"qaboard/internal/usecase/exchange"
)

type fakeCatalogStore struct {
	ports.CatalogStore

	services map[uint]ports.Service
	nextID   uint
}

func newFakeCatalogStore() *fakeCatalogStore {
	return &fakeCatalogStore{services: map[uint]ports.Service{}, nextID: 1}
}

func (f *fakeCatalogStore) CreateService(_ context.Context, svc ports.Service) (ports.Service, error) {
	svc.ID = f.nextID
	f.nextID++
	f.services[svc.ID] = svc
	return svc, nil
}

func (f *fakeCatalogStore) GetService(_ context.Context, id uint) (ports.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return ports.Service{}, ports.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeCatalogStore) DeleteService(_ context.Context, id uint) error {
	if _, ok := f.services[id]; !ok {
		return ports.ErrServiceNotFound
	}
	delete(f.services, id)
	return nil
}

func (f *fakeCatalogStore) ListServices(context.Context) ([]ports.Service, error) {
	out := make([]ports.Service, 0, len(f.services))
	for _, svc := range f.services {
		out = append(out, svc)
	}
	return out, nil
}

type fakeMetricsStore struct {
	totals ports.DashboardTotals
}

func (f *fakeMetricsStore) DashboardTotals(context.Context) (ports.DashboardTotals, error) {
	return f.totals, nil
}

func (f *fakeMetricsStore) TestsByType(context.Context) ([]ports.CategoryCount, error) {
	return nil, nil
}

func (f *fakeMetricsStore) TestsByResult(context.Context) ([]ports.CategoryCount, error) {
	return []ports.CategoryCount{{Label: "aprovado", Count: 3}}, nil
}

func (f *fakeMetricsStore) TestResultCountsByService(context.Context) ([]ports.ServiceResultCount, error) {
	return nil, nil
}

func (f *fakeMetricsStore) CoverageByService(context.Context) ([]ports.ServiceCoverage, error) {
	return nil, nil
}

func (f *fakeMetricsStore) FunnelCounts(context.Context) (ports.FunnelCounts, error) {
	return ports.FunnelCounts{TestCases: 2, Executed: 3, Approved: 3}, nil
}

func (f *fakeMetricsStore) OpenCriticalBugs(context.Context) ([]ports.AlertCandidate, error) {
	return nil, nil
}

func (f *fakeMetricsStore) TestsByStaleness(context.Context) ([]ports.AlertCandidate, error) {
	return nil, nil
}

func (f *fakeMetricsStore) RecentActivity(context.Context, int) ([]ports.ActivityEntry, error) {
	return nil, nil
}

func newTestServer() (*Server, *fakeCatalogStore) {
	store := newFakeCatalogStore()
	cat := catalog.NewService(store, nil)
	dash := dashboard.NewService(&fakeMetricsStore{
		totals: ports.DashboardTotals{TotalTests: 3, AverageCoverage: 75},
	}, dashboard.Thresholds{CriticalBugDays: 7, StaleTestDays: 30}, nil)

	return NewServer(Config{
		Catalog:   cat,
		Dashboard: dash,
		Exchange:  exchange.NewService(cat),
		Addr:      ":0",
	}), store
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer()
	rec := doRequest(t, srv, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestCreateServiceValidationError(t *testing.T) {
	srv, _ := newTestServer()

	rec := doRequest(t, srv, http.MethodPost, "/api/services", map[string]any{
		"description": "missing name",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Details) != 1 || resp.Details[0].Field != "name" {
		t.Fatalf("details = %+v", resp.Details)
	}
	if resp.Details[0].Message != "O nome é obrigatório" {
		t.Fatalf("message = %q", resp.Details[0].Message)
	}
}

func TestServiceCreateGetDelete(t *testing.T) {
	srv, store := newTestServer()

	rec := doRequest(t, srv, http.MethodPost, "/api/services", map[string]any{
		"name":   "billing",
		"status": "Ativo",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created id is zero")
	}
	if created.Status != "ativo" {
		t.Fatalf("status not normalized: %q", created.Status)
	}

	rec = doRequest(t, srv, http.MethodGet, "/api/services/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = doRequest(t, srv, http.MethodDelete, "/api/services", map[string]any{"id": created.ID})
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.services) != 0 {
		t.Fatalf("store still holds %d services", len(store.services))
	}

	rec = doRequest(t, srv, http.MethodDelete, "/api/services", map[string]any{"id": created.ID})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestDeleteWithoutIDIsBadRequest(t *testing.T) {
	srv, _ := newTestServer()
	rec := doRequest(t, srv, http.MethodDelete, "/api/services", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDashboardPayloadShape(t *testing.T) {
	srv, _ := newTestServer()

	rec := doRequest(t, srv, http.MethodGet, "/api/dashboard", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	for _, key := range []string{
		"stats", "testsByType", "testsByResult", "testsStatusByService",
		"coverageByService", "funnelData", "recentActivities", "alerts", "degraded",
	} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("payload missing %q: %s", key, rec.Body.String())
		}
	}

	var degraded []string
	if err := json.Unmarshal(payload["degraded"], &degraded); err != nil {
		t.Fatalf("decode degraded: %v", err)
	}
	if len(degraded) != 0 {
		t.Fatalf("degraded = %v, want empty", degraded)
	}

	var stats struct {
		AverageCoverage int `json:"averageCoverage"`
	}
	if err := json.Unmarshal(payload["stats"], &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.AverageCoverage != 75 {
		t.Fatalf("coverage = %d, want 75", stats.AverageCoverage)
	}
}

func TestExportUnknownEntityIs404(t *testing.T) {
	srv, _ := newTestServer()
	rec := doRequest(t, srv, http.MethodGet, "/api/nope/export", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}
}

func TestExportServicesStreamsWorkbook(t *testing.T) {
	srv, store := newTestServer()
	store.services[1] = ports.Service{ID: 1, Name: "billing"}

	rec := doRequest(t, srv, http.MethodGet, "/api/services/export", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "services.xlsx") {
		t.Fatalf("disposition = %q", rec.Header().Get("Content-Disposition"))
	}
	if rec.Body.Len() == 0 {
		t.Fatal("empty workbook body")
	}
}
