package qa

import "strings"

// Canonical label vocabularies. The stored data drifted across
// revisions of the product (result was variously
// aprovado/falho/quebrado/pending and aprovado/reprovado/bloqueado/
// pendente); every read path normalizes through the explicit legacy
// maps below instead of supporting both vocabularies implicitly.

// Test results.
const (
	ResultApproved = "aprovado"
	ResultFailed   = "falho"
	ResultBroken   = "quebrado"
	ResultPending  = "pendente"
)

// Test types.
const (
	TypeFunctional  = "funcional"
	TypeUnit        = "unitario"
	TypePerformance = "performance"
	TypeContract    = "contrato"
	TypeRegression  = "regressao"
	TypeExploratory = "exploratorio"
)

// Test case statuses.
const (
	CaseStatusPending = "pendente"
	CaseStatusDone    = "concluido"
	CaseStatusBlocked = "bloqueado"
)

// Bug statuses.
const (
	BugOpen       = "open"
	BugInProgress = "in_progress"
	BugResolved   = "resolved"
	BugClosed     = "closed"
)

// Bug criticality.
const (
	CriticalityLow      = "baixa"
	CriticalityMedium   = "media"
	CriticalityHigh     = "alta"
	CriticalityCritical = "critica"
)

// Bug risk.
const (
	RiskLow      = "baixo"
	RiskMedium   = "medio"
	RiskHigh     = "alto"
	RiskCritical = "critico"
)

// Improvement statuses.
const (
	ImprovementProposed   = "proposed"
	ImprovementApproved   = "approved"
	ImprovementInProgress = "in_progress"
	ImprovementCompleted  = "completed"
	ImprovementRejected   = "rejected"
)

// Performance plan statuses.
const (
	PlanPlanned    = "planned"
	PlanInProgress = "in_progress"
	PlanCompleted  = "completed"
	PlanFailed     = "failed"
)

var legacyResults = map[string]string{
	"reprovado": ResultFailed,
	"failed":    ResultFailed,
	"bloqueado": ResultBroken,
	"broken":    ResultBroken,
	"pending":   ResultPending,
	"passed":    ResultApproved,
	"aprovada":  ResultApproved,
	"approved":  ResultApproved,
}

var legacyCaseStatuses = map[string]string{
	"pending": CaseStatusPending,
	"done":    CaseStatusDone,
	"blocked": CaseStatusBlocked,
}

// NormalizeResult folds a test result label to the canonical
// vocabulary. Unknown labels pass through lower-cased and trimmed so
// aggregation never drops rows it does not recognize.
func NormalizeResult(raw string) string {
	label := foldLabel(raw)
	if canonical, ok := legacyResults[label]; ok {
		return canonical
	}
	return label
}

// NormalizeCaseStatus folds a test case status to the canonical
// vocabulary, mapping the older English labels.
func NormalizeCaseStatus(raw string) string {
	label := foldLabel(raw)
	if canonical, ok := legacyCaseStatuses[label]; ok {
		return canonical
	}
	return label
}

// NormalizeLabel is the plain case-fold + trim used for type, status,
// criticality and risk labels that never drifted.
func NormalizeLabel(raw string) string {
	return foldLabel(raw)
}

// IsOpenBugStatus reports whether a bug status counts as unresolved
// for the open-bug metrics and for the critical-bug alert rule.
func IsOpenBugStatus(status string) bool {
	switch foldLabel(status) {
	case BugOpen, BugInProgress:
		return true
	}
	return false
}

// IsCriticalBug reports whether a bug qualifies for the stale critical
// bug alert rule, age aside.
func IsCriticalBug(status, criticality string) bool {
	return IsOpenBugStatus(status) && foldLabel(criticality) == CriticalityCritical
}

// IsExecuted reports whether a test result counts as an executed test,
// that is anything but the pending sentinel.
func IsExecuted(result string) bool {
	return NormalizeResult(result) != ResultPending
}

func foldLabel(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidResults lists the canonical result vocabulary, used by
// validation and by form options.
func ValidResults() []string {
	return []string{ResultApproved, ResultFailed, ResultBroken, ResultPending}
}

func ValidTypes() []string {
	return []string{TypeFunctional, TypeUnit, TypePerformance, TypeContract, TypeRegression, TypeExploratory}
}

func ValidBugStatuses() []string {
	return []string{BugOpen, BugInProgress, BugResolved, BugClosed}
}

func ValidCriticalities() []string {
	return []string{CriticalityLow, CriticalityMedium, CriticalityHigh, CriticalityCritical}
}

func ValidRisks() []string {
	return []string{RiskLow, RiskMedium, RiskHigh, RiskCritical}
}
