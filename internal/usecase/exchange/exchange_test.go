package exchange

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"qaboard/internal/ports"
	"qaboard/internal/usecase/catalog"
)

type fakeStore struct {
	ports.CatalogStore

	mu   sync.Mutex
	bugs []ports.Bug
}

func (f *fakeStore) ListBugs(context.Context, ports.BugFilter) ([]ports.Bug, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ports.Bug, len(f.bugs))
	copy(out, f.bugs)
	return out, nil
}

func (f *fakeStore) CreateBug(_ context.Context, bug ports.Bug) (ports.Bug, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bug.ID = uint(len(f.bugs) + 1)
	f.bugs = append(f.bugs, bug)
	return bug, nil
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestExportImportRoundTripBugs(t *testing.T) {
	testID := uint(7)
	source := &fakeStore{bugs: []ports.Bug{
		{
			ID:          1,
			Name:        "payment timeout",
			Description: "gateway drops after 30s",
			TestID:      &testID,
			ServiceID:   2,
			ServiceName: "billing",
			Status:      "open",
			Criticality: "critica",
			Risk:        "alto",
			FoundDate:   datePtr(2026, time.August, 10),
		},
		{
			ID:          2,
			Name:        "broken redirect",
			ServiceID:   3,
			Status:      "resolved",
			Criticality: "baixa",
			Risk:        "baixo",
		},
	}}

	exporter := NewService(catalog.NewService(source, nil))
	f, err := exporter.Export(context.Background(), EntityBugs)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	target := &fakeStore{}
	importer := NewService(catalog.NewService(target, nil))
	result, err := importer.Import(context.Background(), EntityBugs, &buf)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected row errors: %v", result.Errors)
	}
	if result.Inserted != 2 {
		t.Fatalf("inserted = %d, want 2", result.Inserted)
	}

	byName := map[string]ports.Bug{}
	for _, b := range target.bugs {
		byName[b.Name] = b
	}

	got, ok := byName["payment timeout"]
	if !ok {
		t.Fatalf("bug not imported, have %v", target.bugs)
	}
	if got.Description != "gateway drops after 30s" {
		t.Fatalf("description = %q", got.Description)
	}
	if got.TestID == nil || *got.TestID != testID {
		t.Fatalf("test id = %v, want %d", got.TestID, testID)
	}
	if got.ServiceID != 2 {
		t.Fatalf("service id = %d, want 2", got.ServiceID)
	}
	if got.Status != "open" || got.Criticality != "critica" || got.Risk != "alto" {
		t.Fatalf("labels not preserved: %+v", got)
	}
	if got.FoundDate == nil || !got.FoundDate.Equal(*datePtr(2026, time.August, 10)) {
		t.Fatalf("found date = %v", got.FoundDate)
	}

	second, ok := byName["broken redirect"]
	if !ok {
		t.Fatal("second bug not imported")
	}
	if second.TestID != nil || second.FoundDate != nil {
		t.Fatalf("empty cells should import as nil: %+v", second)
	}
}

func TestImportReportsPartialSuccess(t *testing.T) {
	source := &fakeStore{bugs: []ports.Bug{
		{ID: 1, Name: "valid bug", ServiceID: 2, Status: "open", Criticality: "alta", Risk: "alto"},
		{ID: 2, Name: "missing service", Status: "open", Criticality: "alta", Risk: "alto"},
	}}

	exporter := NewService(catalog.NewService(source, nil))
	// Export reads straight from the store, so the invalid row makes it
	// into the workbook and must be rejected only on import.
	f, err := exporter.Export(context.Background(), EntityBugs)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	target := &fakeStore{}
	result, err := NewService(catalog.NewService(target, nil)).Import(context.Background(), EntityBugs, &buf)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if result.Inserted != 1 {
		t.Fatalf("inserted = %d, want 1", result.Inserted)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("row errors = %v, want exactly one", result.Errors)
	}
	if len(target.bugs) != 1 || target.bugs[0].Name != "valid bug" {
		t.Fatalf("stored rows = %+v", target.bugs)
	}
}

func TestImportRejectsBadDateCell(t *testing.T) {
	if _, err := parseDate("31/02/borked"); err == nil {
		t.Fatal("expected parse error")
	}
	d, err := parseDate("05/03/2026")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if !d.Equal(time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("parsed = %v", d)
	}
	iso, err := parseDate("2026-03-05")
	if err != nil {
		t.Fatalf("ISO fallback: %v", err)
	}
	if !iso.Equal(*d) {
		t.Fatalf("ISO parsed = %v", iso)
	}
}

func TestExportUnknownEntity(t *testing.T) {
	svc := NewService(catalog.NewService(&fakeStore{}, nil))
	if _, err := svc.Export(context.Background(), "nope"); err == nil {
		t.Fatal("expected unknown entity error")
	}
}
