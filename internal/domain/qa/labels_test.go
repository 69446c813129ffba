package qa

import "testing"

func TestNormalizeResultLegacyLabels(t *testing.T) {
	cases := map[string]string{
		"aprovado":    ResultApproved,
		"APROVADO":    ResultApproved,
		" Reprovado ": ResultFailed,
		"bloqueado":   ResultBroken,
		"pending":     ResultPending,
		"pendente":    ResultPending,
		"falho":       ResultFailed,
		"quebrado":    ResultBroken,
	}
	for raw, want := range cases {
		if got := NormalizeResult(raw); got != want {
			t.Fatalf("NormalizeResult(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeResultUnknownPassesThrough(t *testing.T) {
	if got := NormalizeResult("  Inconclusivo "); got != "inconclusivo" {
		t.Fatalf("NormalizeResult() = %q", got)
	}
}

func TestNormalizeCaseStatus(t *testing.T) {
	if got := NormalizeCaseStatus("done"); got != CaseStatusDone {
		t.Fatalf("NormalizeCaseStatus(done) = %q", got)
	}
	if got := NormalizeCaseStatus("Blocked"); got != CaseStatusBlocked {
		t.Fatalf("NormalizeCaseStatus(Blocked) = %q", got)
	}
	if got := NormalizeCaseStatus("concluido"); got != CaseStatusDone {
		t.Fatalf("NormalizeCaseStatus(concluido) = %q", got)
	}
}

func TestIsOpenBugStatus(t *testing.T) {
	for _, status := range []string{"open", "in_progress", "OPEN"} {
		if !IsOpenBugStatus(status) {
			t.Fatalf("IsOpenBugStatus(%q) = false", status)
		}
	}
	for _, status := range []string{"resolved", "closed", ""} {
		if IsOpenBugStatus(status) {
			t.Fatalf("IsOpenBugStatus(%q) = true", status)
		}
	}
}

func TestIsCriticalBug(t *testing.T) {
	if !IsCriticalBug("open", "critica") {
		t.Fatalf("IsCriticalBug(open, critica) = false")
	}
	if IsCriticalBug("resolved", "critica") {
		t.Fatalf("IsCriticalBug(resolved, critica) = true")
	}
	if IsCriticalBug("open", "alta") {
		t.Fatalf("IsCriticalBug(open, alta) = true")
	}
}

func TestIsExecuted(t *testing.T) {
	if IsExecuted("pendente") || IsExecuted("pending") {
		t.Fatalf("IsExecuted() pending sentinel counted as executed")
	}
	if !IsExecuted("aprovado") || !IsExecuted("falho") {
		t.Fatalf("IsExecuted() executed result not counted")
	}
}
