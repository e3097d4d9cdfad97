package tabular

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"chartdeck/domain/core"
	"chartdeck/domain/tabular"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// maxXLSRows caps how many rows are pulled from a legacy .xls workbook.
const maxXLSRows = 65536

// DataReader loads CSV, XLSX and legacy XLS files into a Table.
type DataReader struct{}

// NewDataReader creates a reader handling all supported tabular formats.
func NewDataReader() *DataReader {
	return &DataReader{}
}

// ReadTable reads the file at path into a Table, dispatching on extension.
func (r *DataReader) ReadTable(path string) (*tabular.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	log.Printf("[DataReader] Reading %s file: %s", ext, filepath.Base(path))

	switch ext {
	case ".csv":
		return r.readCSV(path)
	case ".xlsx":
		return r.readXLSX(path)
	case ".xls":
		return r.readXLS(path)
	default:
		return nil, core.NewUnsupportedFormatError(filepath.Base(path))
	}
}

// readCSV reads delimited text. Ragged rows are allowed; the extractor
// tolerates short rows downstream.
func (r *DataReader) readCSV(path string) (*tabular.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	return r.processRows(rows, "csv")
}

// readXLSX reads the first sheet of an OOXML workbook.
func (r *DataReader) readXLSX(path string) (*tabular.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	return r.processRows(rows, "xlsx")
}

// readXLS reads the first sheet of a legacy BIFF workbook.
func (r *DataReader) readXLS(path string) (*tabular.Table, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open XLS file: %w", err)
	}

	rows := wb.ReadAllCells(maxXLSRows)
	return r.processRows(rows, "xls")
}

// processRows splits raw rows into a header row plus data rows, trimming
// cell whitespace the way spreadsheet exports tend to need.
func (r *DataReader) processRows(rows [][]string, format string) (*tabular.Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s file contains no rows", strings.ToUpper(format))
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	dataRows := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = strings.TrimSpace(cell)
		}
		dataRows = append(dataRows, cells)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(format), len(headers), len(dataRows))

	return &tabular.Table{Headers: headers, Rows: dataRows}, nil
}
