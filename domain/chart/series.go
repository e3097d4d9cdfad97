package chart

import (
	"strconv"
	"strings"

	"chartdeck/domain/core"
	"chartdeck/domain/tabular"
)

// ExtractSeries reduces a table to its first two columns: column 0 becomes
// the category labels, column 1 the numeric values. Cells that fail numeric
// coercion degrade to zero instead of failing the whole extraction; that is
// a deliberate data-quality tolerance, not an error.
func ExtractSeries(t tabular.Table) (Series, error) {
	if t.ColumnCount() < 2 {
		return nil, core.ErrInsufficientColumns
	}

	series := make(Series, 0, t.RowCount())
	for i := 0; i < t.RowCount(); i++ {
		series = append(series, Point{
			Category: t.Cell(i, 0),
			Value:    CoerceValue(t.Cell(i, 1)),
		})
	}
	return series, nil
}

// CoerceValue parses a raw cell into a float64. Percent-suffixed strings
// have leading and trailing percent signs stripped before parsing
// ("45%" -> 45.0). Anything
// unparseable, including empty cells, coerces to zero.
func CoerceValue(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	if strings.Contains(s, "%") {
		trimmed := strings.Trim(s, "%")
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0
		}
		return v
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
