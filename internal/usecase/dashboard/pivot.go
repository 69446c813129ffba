package dashboard

// Table is a dense pivot: every (row, col) pair present in the key
// sets has a cell, absent combinations hold the default value. Key
// order is first-seen order of the input rows.
type Table[V any] struct {
	RowKeys []string
	ColKeys []string
	cells   map[string]map[string]V
	def     V
}

// Cell returns the value at (row, col), or the default for
// combinations never seen.
func (t *Table[V]) Cell(row, col string) V {
	if byCol, ok := t.cells[row]; ok {
		if v, ok := byCol[col]; ok {
			return v
		}
	}
	return t.def
}

// Row materializes one dense row as colKey -> value.
func (t *Table[V]) Row(row string) map[string]V {
	out := make(map[string]V, len(t.ColKeys))
	for _, col := range t.ColKeys {
		out[col] = t.Cell(row, col)
	}
	return out
}

type number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Pivot widens sparse grouped rows into a dense matrix. Rows mapping
// to the same (rowKey, colKey) pair are accumulated, which is what
// lets normalized labels merge their counts.
func Pivot[T any, V number](rows []T, rowKey, colKey func(T) string, value func(T) V, def V) *Table[V] {
	t := &Table[V]{
		cells: make(map[string]map[string]V),
		def:   def,
	}

	seenRows := make(map[string]struct{})
	seenCols := make(map[string]struct{})

	for _, r := range rows {
		rk := rowKey(r)
		ck := colKey(r)

		if _, ok := seenRows[rk]; !ok {
			seenRows[rk] = struct{}{}
			t.RowKeys = append(t.RowKeys, rk)
		}
		if _, ok := seenCols[ck]; !ok {
			seenCols[ck] = struct{}{}
			t.ColKeys = append(t.ColKeys, ck)
		}

		byCol, ok := t.cells[rk]
		if !ok {
			byCol = make(map[string]V)
			t.cells[rk] = byCol
		}
		byCol[ck] += value(r)
	}

	return t
}
