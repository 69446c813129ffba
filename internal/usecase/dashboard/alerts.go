package dashboard

import (
	"fmt"
	"sort"
	"time"

	"qaboard/internal/ports"
)

// Alert severities.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// Alert types.
const (
	AlertTypeBug  = "bug"
	AlertTypeTest = "test"
)

const alertsPerRule = 5

type Alert struct {
	ID          uint   `json:"id"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DaysOpen    int    `json:"days_open"`
}

// EvaluateAlerts applies the two staleness rules and returns a single
// ranked list: stale critical bugs first, then stale tests, each rule
// capped at its top five by age descending. Nothing is persisted; the
// caller recomputes on every dashboard load.
func EvaluateAlerts(now time.Time, criticalBugs, tests []ports.AlertCandidate, bugDays, testDays int) []Alert {
	bugAlerts := ruleAlerts(now, criticalBugs, bugDays, func(days int, c ports.AlertCandidate) Alert {
		return Alert{
			ID:          c.ID,
			Type:        AlertTypeBug,
			Severity:    SeverityCritical,
			Title:       fmt.Sprintf("Bug crítico não resolvido há %d dias", days),
			Description: c.Name,
			DaysOpen:    days,
		}
	})

	testAlerts := ruleAlerts(now, tests, testDays, func(days int, c ports.AlertCandidate) Alert {
		return Alert{
			ID:          c.ID,
			Type:        AlertTypeTest,
			Severity:    SeverityWarning,
			Title:       fmt.Sprintf("Teste sem atualização há %d dias", days),
			Description: c.Name,
			DaysOpen:    days,
		}
	})

	return append(bugAlerts, testAlerts...)
}

func ruleAlerts(now time.Time, candidates []ports.AlertCandidate, thresholdDays int, build func(int, ports.AlertCandidate) Alert) []Alert {
	alerts := make([]Alert, 0, len(candidates))
	for _, c := range candidates {
		days := wholeDays(now, c.ReferenceTime)
		if days <= thresholdDays {
			continue
		}
		alerts = append(alerts, build(days, c))
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysOpen > alerts[j].DaysOpen
	})

	if len(alerts) > alertsPerRule {
		alerts = alerts[:alertsPerRule]
	}
	return alerts
}

// wholeDays truncates (floor), it never rounds up: a bug open for
// 7 days and 23 hours is 7 days old.
func wholeDays(now, ref time.Time) int {
	if ref.After(now) {
		return 0
	}
	return int(now.Sub(ref).Hours() / 24)
}
