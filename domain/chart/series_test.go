package chart

import (
	"errors"
	"testing"

	"chartdeck/domain/core"
	"chartdeck/domain/tabular"
)

func TestExtractSeries_BasicExtraction(t *testing.T) {
	table := tabular.Table{
		Headers: []string{"Region", "Revenue"},
		Rows: [][]string{
			{"North", "120.5"},
			{"South", "80"},
			{"East", "45%"},
			{"West", "abc"},
		},
	}

	series, err := ExtractSeries(table)
	if err != nil {
		t.Fatalf("ExtractSeries failed: %v", err)
	}

	if len(series) != 4 {
		t.Fatalf("Expected 4 points, got %d", len(series))
	}

	expectedCategories := []string{"North", "South", "East", "West"}
	expectedValues := []float64{120.5, 80, 45, 0}
	for i, p := range series {
		if p.Category != expectedCategories[i] {
			t.Errorf("Point %d: expected category %q, got %q", i, expectedCategories[i], p.Category)
		}
		if p.Value != expectedValues[i] {
			t.Errorf("Point %d: expected value %v, got %v", i, expectedValues[i], p.Value)
		}
	}
}

func TestExtractSeries_InsufficientColumns(t *testing.T) {
	table := tabular.Table{
		Headers: []string{"OnlyColumn"},
		Rows:    [][]string{{"A"}, {"B"}},
	}

	_, err := ExtractSeries(table)
	if !errors.Is(err, core.ErrInsufficientColumns) {
		t.Fatalf("Expected ErrInsufficientColumns, got %v", err)
	}
}

func TestExtractSeries_ShortRowsTolerate(t *testing.T) {
	// Ragged data: the second row is missing its value cell.
	table := tabular.Table{
		Headers: []string{"Name", "Score"},
		Rows: [][]string{
			{"A", "10"},
			{"B"},
			{"C", "30"},
		},
	}

	series, err := ExtractSeries(table)
	if err != nil {
		t.Fatalf("ExtractSeries failed: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(series))
	}
	if series[1].Value != 0 {
		t.Errorf("Short row should coerce to zero, got %v", series[1].Value)
	}
}

func TestExtractSeries_HeaderOnlyTable(t *testing.T) {
	table := tabular.Table{Headers: []string{"Category", "Value"}}

	series, err := ExtractSeries(table)
	if err != nil {
		t.Fatalf("ExtractSeries failed: %v", err)
	}
	if len(series) != 0 {
		t.Errorf("Expected empty series, got %d points", len(series))
	}
}

func TestCoerceValue(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"45%", 45.0},
		{"abc", 0},
		{"3.5", 3.5},
		{"", 0},
		{"  12 ", 12},
		{"99.9%", 99.9},
		{"4%5%", 0}, // interior percent sign survives the trim and fails the parse
		{"-7.25", -7.25},
		{"12%%", 12},
	}

	for _, tc := range cases {
		if got := CoerceValue(tc.raw); got != tc.want {
			t.Errorf("CoerceValue(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	if ParseKind("") != KindBar {
		t.Errorf("Empty kind should default to bar")
	}
	if ParseKind("pie") != KindPie {
		t.Errorf("pie should parse as KindPie")
	}
	if k := ParseKind("foo"); k != Kind("foo") || k.Known() {
		t.Errorf("Unknown kinds must keep their raw value and report !Known")
	}
	for _, k := range []Kind{KindPie, KindBar, KindLine, KindScatter, KindArea} {
		if !k.Known() {
			t.Errorf("Kind %q should be known", k)
		}
	}
}
