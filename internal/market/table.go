package market

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Column describes a single table column. Most providers return flat columns
// where only Name is set. The ratio report returns grouped columns; those carry
// the full hierarchy in Levels (outermost first) until FlattenColumns collapses
// them.
type Column struct {
	Name   string
	Levels []string
}

// Table is an ordered sequence of rows produced by one adapter call. Cell
// values are float64, string, bool, time.Time or nil. Tables are built fresh
// per request and never shared across calls.
type Table struct {
	Columns []Column
	Rows    [][]any
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// ColumnIndex returns the position of the named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// SortByColumn stably sorts rows ascending by the named column. Numeric cells
// compare numerically, strings lexically, timestamps chronologically; nil cells
// sort first. A missing column is an error so the caller can surface it the
// same way the provider would have.
func (t Table) SortByColumn(name string) error {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return fmt.Errorf("column %q not present", name)
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return cellLess(t.Rows[i][idx], t.Rows[j][idx])
	})
	return nil
}

func cellLess(a, b any) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Before(bv)
		}
	}
	return false
}

// FlattenColumns collapses hierarchical column names into single-level ones:
// the outermost level is dropped, the remaining levels are joined with "_",
// and name collisions are disambiguated with an occurrence suffix so no two
// columns end up identical. Already-flat tables come back unchanged, which
// makes the operation idempotent.
func (t Table) FlattenColumns() Table {
	out := Table{Columns: make([]Column, len(t.Columns)), Rows: t.Rows}
	used := make(map[string]bool, len(t.Columns))
	seen := make(map[string]int, len(t.Columns))
	for i, col := range t.Columns {
		name := col.Name
		if len(col.Levels) > 1 {
			name = strings.Join(col.Levels[1:], "_")
		}
		base := name
		seen[base]++
		if n := seen[base]; n > 1 {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		// A minted suffix can land on a name another column already
		// flattens to; keep bumping until the name is unissued.
		for used[name] {
			seen[base]++
			name = fmt.Sprintf("%s_%d", base, seen[base])
		}
		used[name] = true
		out.Columns[i] = Column{Name: name}
	}
	return out
}
