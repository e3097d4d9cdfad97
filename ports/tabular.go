package ports

import "chartdeck/domain/tabular"

// TableReader defines the interface for loading an uploaded data file from
// disk into a Table. Implementations pick the parser from the file
// extension and return core.ErrUnsupportedFormat for anything unrecognized.
type TableReader interface {
	ReadTable(path string) (*tabular.Table, error)
}
