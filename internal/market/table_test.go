package market

import (
	"testing"
)

func TestFlattenColumns_DropsOuterLevel(t *testing.T) {
	table := Table{
		Columns: []Column{
			{Name: "Meta|yearReport", Levels: []string{"Meta", "yearReport"}},
			{Name: "Profitability|ROE (%)", Levels: []string{"Profitability", "ROE (%)"}},
		},
	}
	flat := table.FlattenColumns()
	if flat.Columns[0].Name != "yearReport" {
		t.Fatalf("unexpected name %q", flat.Columns[0].Name)
	}
	if flat.Columns[1].Name != "ROE (%)" {
		t.Fatalf("unexpected name %q", flat.Columns[1].Name)
	}
	for _, col := range flat.Columns {
		if col.Levels != nil {
			t.Fatalf("levels should be cleared, got %v", col.Levels)
		}
	}
}

func TestFlattenColumns_JoinsInnerLevels(t *testing.T) {
	table := Table{
		Columns: []Column{
			{Levels: []string{"root", "liquidity", "currentRatio"}},
		},
	}
	flat := table.FlattenColumns()
	if flat.Columns[0].Name != "liquidity_currentRatio" {
		t.Fatalf("unexpected name %q", flat.Columns[0].Name)
	}
}

func TestFlattenColumns_DisambiguatesCollisions(t *testing.T) {
	table := Table{
		Columns: []Column{
			{Levels: []string{"Liquidity", "ratio"}},
			{Levels: []string{"Leverage", "ratio"}},
			{Levels: []string{"Valuation", "ratio"}},
		},
	}
	flat := table.FlattenColumns()
	names := map[string]bool{}
	for _, col := range flat.Columns {
		if names[col.Name] {
			t.Fatalf("duplicate column name %q", col.Name)
		}
		names[col.Name] = true
	}
	if flat.Columns[0].Name != "ratio" || flat.Columns[1].Name != "ratio_2" || flat.Columns[2].Name != "ratio_3" {
		t.Fatalf("unexpected names %v", flat.Columns)
	}
}

func TestFlattenColumns_SuffixAvoidsPreexistingName(t *testing.T) {
	table := Table{
		Columns: []Column{
			{Levels: []string{"Liquidity", "ratio"}},
			{Levels: []string{"Leverage", "ratio"}},
			{Levels: []string{"Valuation", "ratio_2"}},
		},
	}
	flat := table.FlattenColumns()
	names := map[string]bool{}
	for _, col := range flat.Columns {
		if names[col.Name] {
			t.Fatalf("duplicate column name %q in %v", col.Name, flat.Columns)
		}
		names[col.Name] = true
	}
	if flat.Columns[0].Name != "ratio" || flat.Columns[1].Name != "ratio_2" || flat.Columns[2].Name != "ratio_2_2" {
		t.Fatalf("unexpected names %v", flat.Columns)
	}
}

func TestFlattenColumns_IdempotentOnFlatInput(t *testing.T) {
	table := Table{
		Columns: []Column{{Name: "yearReport"}, {Name: "revenue"}},
		Rows:    [][]any{{2021.0, 10.0}},
	}
	once := table.FlattenColumns()
	twice := once.FlattenColumns()
	for i := range table.Columns {
		if once.Columns[i].Name != table.Columns[i].Name {
			t.Fatalf("flat input changed: %q -> %q", table.Columns[i].Name, once.Columns[i].Name)
		}
		if twice.Columns[i].Name != once.Columns[i].Name {
			t.Fatalf("not idempotent: %q -> %q", once.Columns[i].Name, twice.Columns[i].Name)
		}
	}
}

func TestSortByColumn_OrdersYearsAscending(t *testing.T) {
	table := Table{
		Columns: []Column{{Name: "yearReport"}, {Name: "revenue"}},
		Rows: [][]any{
			{2023.0, 30.0},
			{2021.0, 10.0},
			{2022.0, 20.0},
		},
	}
	if err := table.SortByColumn("yearReport"); err != nil {
		t.Fatalf("sort failed: %v", err)
	}
	got := []float64{}
	for _, row := range table.Rows {
		got = append(got, row[0].(float64))
	}
	want := []float64{2021, 2022, 2023}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSortByColumn_MissingColumn(t *testing.T) {
	table := Table{Columns: []Column{{Name: "revenue"}}, Rows: [][]any{{1.0}}}
	if err := table.SortByColumn("yearReport"); err == nil {
		t.Fatalf("expected error for missing column")
	}
}

func TestSortByColumn_NilCellsFirst(t *testing.T) {
	table := Table{
		Columns: []Column{{Name: "yearReport"}},
		Rows:    [][]any{{2022.0}, {nil}, {2021.0}},
	}
	if err := table.SortByColumn("yearReport"); err != nil {
		t.Fatalf("sort failed: %v", err)
	}
	if table.Rows[0][0] != nil {
		t.Fatalf("expected nil cell first, got %v", table.Rows[0][0])
	}
}
