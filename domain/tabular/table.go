package tabular

// Table is a rectangular grid of raw cell values as read from an uploaded
// file: a header row plus data rows. Rows may be ragged; consumers must
// tolerate short rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// RowCount returns the number of data rows.
func (t Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the table's width: the header width or the widest
// data row, whichever is larger.
func (t Table) ColumnCount() int {
	max := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Cell returns the value at (row, col), or "" when the row is short.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
