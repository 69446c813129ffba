package dashboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type sparseCell struct {
	row   string
	col   string
	count int
}

func TestPivotDensifiesSparseRows(t *testing.T) {
	rows := []sparseCell{
		{row: "aprovado", col: "billing", count: 3},
		{row: "falho", col: "auth", count: 1},
		{row: "aprovado", col: "auth", count: 2},
	}

	table := Pivot(rows,
		func(c sparseCell) string { return c.row },
		func(c sparseCell) string { return c.col },
		func(c sparseCell) int { return c.count },
		0,
	)

	if diff := cmp.Diff([]string{"aprovado", "falho"}, table.RowKeys); diff != "" {
		t.Fatalf("row keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"billing", "auth"}, table.ColKeys); diff != "" {
		t.Fatalf("col keys mismatch (-want +got):\n%s", diff)
	}

	// The (falho, billing) pair never appeared; it must read as 0.
	if got := table.Cell("falho", "billing"); got != 0 {
		t.Fatalf("absent cell = %d, want 0", got)
	}
	if got := table.Cell("aprovado", "auth"); got != 2 {
		t.Fatalf("cell(aprovado, auth) = %d, want 2", got)
	}
}

func TestPivotAccumulatesDuplicateKeys(t *testing.T) {
	rows := []sparseCell{
		{row: "falho", col: "auth", count: 2},
		{row: "falho", col: "auth", count: 5},
	}

	table := Pivot(rows,
		func(c sparseCell) string { return c.row },
		func(c sparseCell) string { return c.col },
		func(c sparseCell) int { return c.count },
		0,
	)

	if got := table.Cell("falho", "auth"); got != 7 {
		t.Fatalf("accumulated cell = %d, want 7", got)
	}
	if len(table.RowKeys) != 1 || len(table.ColKeys) != 1 {
		t.Fatalf("duplicate keys produced extra axes: rows=%v cols=%v", table.RowKeys, table.ColKeys)
	}
}

func TestTableRowIsDense(t *testing.T) {
	rows := []sparseCell{
		{row: "aprovado", col: "auth", count: 1},
		{row: "falho", col: "billing", count: 4},
	}

	table := Pivot(rows,
		func(c sparseCell) string { return c.row },
		func(c sparseCell) string { return c.col },
		func(c sparseCell) int { return c.count },
		0,
	)

	want := map[string]int{"auth": 1, "billing": 0}
	if diff := cmp.Diff(want, table.Row("aprovado")); diff != "" {
		t.Fatalf("dense row mismatch (-want +got):\n%s", diff)
	}
}
