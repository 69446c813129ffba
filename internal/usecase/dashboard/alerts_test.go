package dashboard

import (
	"fmt"
	"testing"
	"time"

	"qaboard/internal/ports"
)

func candidateAgedDays(id uint, name string, now time.Time, days int) ports.AlertCandidate {
	return ports.AlertCandidate{
		ID:            id,
		Name:          name,
		ReferenceTime: now.AddDate(0, 0, -days),
	}
}

func TestEvaluateAlertsThresholdIsStrict(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	bugs := []ports.AlertCandidate{
		candidateAgedDays(1, "bug at threshold", now, 7),
		candidateAgedDays(2, "bug past threshold", now, 8),
	}

	alerts := EvaluateAlerts(now, bugs, nil, 7, 30)
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	if alerts[0].ID != 2 {
		t.Fatalf("alert id = %d, want 2", alerts[0].ID)
	}
	if alerts[0].DaysOpen != 8 {
		t.Fatalf("days open = %d, want 8", alerts[0].DaysOpen)
	}
	if alerts[0].Severity != SeverityCritical || alerts[0].Type != AlertTypeBug {
		t.Fatalf("unexpected classification: %+v", alerts[0])
	}
	if want := "Bug crítico não resolvido há 8 dias"; alerts[0].Title != want {
		t.Fatalf("title = %q, want %q", alerts[0].Title, want)
	}
}

func TestEvaluateAlertsFloorsPartialDays(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// 7 days and 23 hours old: still 7 whole days, under a 7-day rule.
	bug := ports.AlertCandidate{
		ID:            1,
		Name:          "almost eight days",
		ReferenceTime: now.Add(-(7*24 + 23) * time.Hour),
	}
	if alerts := EvaluateAlerts(now, []ports.AlertCandidate{bug}, nil, 7, 30); len(alerts) != 0 {
		t.Fatalf("got %d alerts, want 0", len(alerts))
	}

	// Future reference times clamp to age zero.
	future := ports.AlertCandidate{
		ID:            2,
		Name:          "clock skew",
		ReferenceTime: now.Add(time.Hour),
	}
	if alerts := EvaluateAlerts(now, []ports.AlertCandidate{future}, nil, 0, 30); len(alerts) != 0 {
		t.Fatalf("future reference produced %d alerts, want 0", len(alerts))
	}
}

func TestEvaluateAlertsCapsEachRuleAtFive(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	var bugs []ports.AlertCandidate
	for i := 1; i <= 8; i++ {
		bugs = append(bugs, candidateAgedDays(uint(i), fmt.Sprintf("bug %d", i), now, 10+i))
	}

	alerts := EvaluateAlerts(now, bugs, nil, 7, 30)
	if len(alerts) != alertsPerRule {
		t.Fatalf("got %d alerts, want %d", len(alerts), alertsPerRule)
	}
	for i := 1; i < len(alerts); i++ {
		if alerts[i-1].DaysOpen < alerts[i].DaysOpen {
			t.Fatalf("alerts not sorted by age desc: %d before %d", alerts[i-1].DaysOpen, alerts[i].DaysOpen)
		}
	}
	// The oldest candidate must survive the cap.
	if alerts[0].ID != 8 {
		t.Fatalf("top alert id = %d, want 8", alerts[0].ID)
	}
}

func TestEvaluateAlertsOrdersBugsBeforeTests(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	bugs := []ports.AlertCandidate{candidateAgedDays(1, "old bug", now, 10)}
	tests := []ports.AlertCandidate{candidateAgedDays(2, "stale test", now, 45)}

	alerts := EvaluateAlerts(now, bugs, tests, 7, 30)
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2", len(alerts))
	}
	if alerts[0].Type != AlertTypeBug || alerts[1].Type != AlertTypeTest {
		t.Fatalf("rule order broken: %s then %s", alerts[0].Type, alerts[1].Type)
	}
	if alerts[1].Severity != SeverityWarning {
		t.Fatalf("test alert severity = %s, want %s", alerts[1].Severity, SeverityWarning)
	}
	if want := "Teste sem atualização há 45 dias"; alerts[1].Title != want {
		t.Fatalf("title = %q, want %q", alerts[1].Title, want)
	}
}
