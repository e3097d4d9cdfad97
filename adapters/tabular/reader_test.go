package tabular

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"chartdeck/domain/core"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestReadTable_CSV(t *testing.T) {
	path := writeTempFile(t, "sales.csv", "Region,Revenue\nNorth, 120.5\nSouth,80\n")

	table, err := NewDataReader().ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if len(table.Headers) != 2 || table.Headers[0] != "Region" {
		t.Errorf("Unexpected headers: %v", table.Headers)
	}
	if table.RowCount() != 2 {
		t.Fatalf("Expected 2 data rows, got %d", table.RowCount())
	}
	if table.Cell(0, 1) != "120.5" {
		t.Errorf("Cells should be whitespace-trimmed, got %q", table.Cell(0, 1))
	}
}

func TestReadTable_CSVRaggedRows(t *testing.T) {
	path := writeTempFile(t, "ragged.csv", "A,B,C\n1,2,3\n4,5\n6\n")

	table, err := NewDataReader().ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable should tolerate ragged rows: %v", err)
	}
	if table.RowCount() != 3 {
		t.Errorf("Expected 3 rows, got %d", table.RowCount())
	}
	if table.Cell(2, 1) != "" {
		t.Errorf("Missing cells should read as empty, got %q", table.Cell(2, 1))
	}
	if table.ColumnCount() != 3 {
		t.Errorf("Expected column count 3, got %d", table.ColumnCount())
	}
}

func TestReadTable_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	_ = f.SetCellValue(sheet, "A1", "Category")
	_ = f.SetCellValue(sheet, "B1", "Value")
	_ = f.SetCellValue(sheet, "A2", "Alpha")
	_ = f.SetCellValue(sheet, "B2", 3.5)
	_ = f.SetCellValue(sheet, "A3", "Beta")
	_ = f.SetCellValue(sheet, "B3", "45%")

	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save xlsx fixture: %v", err)
	}

	table, err := NewDataReader().ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if table.RowCount() != 2 {
		t.Fatalf("Expected 2 data rows, got %d", table.RowCount())
	}
	if table.Cell(0, 0) != "Alpha" {
		t.Errorf("Unexpected cell: %q", table.Cell(0, 0))
	}
	if table.Cell(1, 1) != "45%" {
		t.Errorf("Percent strings must survive as text, got %q", table.Cell(1, 1))
	}
}

func TestReadTable_UnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "notes.txt", "hello")

	_, err := NewDataReader().ReadTable(path)
	if !errors.Is(err, core.ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestReadTable_EmptyCSV(t *testing.T) {
	path := writeTempFile(t, "empty.csv", "")

	if _, err := NewDataReader().ReadTable(path); err == nil {
		t.Fatalf("Expected error for empty file")
	}
}
