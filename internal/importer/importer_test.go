package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Length,Count\n1000,4\n500,2\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Length;Count\n1000;4\n500;2\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Length\tCount\n1000\t4\n500\t2\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Length|Count\n1000|4\n500|2\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Length", "Count"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Length != 0 {
		t.Errorf("expected Length at 0, got %d", mapping.Length)
	}
	if mapping.Count != 1 {
		t.Errorf("expected Count at 1, got %d", mapping.Count)
	}
}

func TestDetectColumns_Aliases(t *testing.T) {
	row := []string{"QTY", "Module (mm)"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Count != 0 {
		t.Errorf("expected Count at 0, got %d", mapping.Count)
	}
	if mapping.Length != 1 {
		t.Errorf("expected Length at 1, got %d", mapping.Length)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	row := []string{"1000", "4"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("expected no header to be detected")
	}
	if mapping.Length != 0 || mapping.Count != 1 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write temp file: %v", err)
	}
	return path
}

func TestImportCSV_WithHeader(t *testing.T) {
	path := writeTempFile(t, "inv.csv", "Length,Count\n1000,4\n500,2\n250,1\n")

	result := ImportCSV(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Inventory.Count(1000) != 4 {
		t.Errorf("expected 4 of 1000 mm, got %d", result.Inventory.Count(1000))
	}
	if result.Inventory.Count(500) != 2 {
		t.Errorf("expected 2 of 500 mm, got %d", result.Inventory.Count(500))
	}
	if result.Inventory.Count(250) != 1 {
		t.Errorf("expected 1 of 250 mm, got %d", result.Inventory.Count(250))
	}
}

func TestImportCSV_Semicolon(t *testing.T) {
	path := writeTempFile(t, "inv.csv", "Length;Count\n1000;3\n")

	result := ImportCSV(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Inventory.Count(1000) != 3 {
		t.Errorf("expected 3 of 1000 mm, got %d", result.Inventory.Count(1000))
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Error("expected delimiter warning")
	}
}

func TestImportCSV_NoHeader(t *testing.T) {
	path := writeTempFile(t, "inv.csv", "1000,4\n500,2\n")

	result := ImportCSV(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Inventory.Count(1000) != 4 || result.Inventory.Count(500) != 2 {
		t.Errorf("unexpected inventory: %v", result.Inventory)
	}
}

func TestImportCSV_RepeatedLengthsSum(t *testing.T) {
	path := writeTempFile(t, "inv.csv", "Length,Count\n1000,2\n1000,3\n")

	result := ImportCSV(path)
	if result.Inventory.Count(1000) != 5 {
		t.Errorf("expected repeated lengths to sum to 5, got %d", result.Inventory.Count(1000))
	}
}

func TestImportCSV_NegativeCountClamped(t *testing.T) {
	path := writeTempFile(t, "inv.csv", "Length,Count\n1000,-3\n500,2\n")

	result := ImportCSV(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Inventory.Count(1000) != 0 {
		t.Errorf("expected negative count clamped to 0, got %d", result.Inventory.Count(1000))
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "clamped") {
			found = true
		}
	}
	if !found {
		t.Error("expected clamp warning")
	}
}

func TestImportCSV_NonCatalogLengthWarns(t *testing.T) {
	path := writeTempFile(t, "inv.csv", "Length,Count\n750,1\n")

	result := ImportCSV(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Inventory.Count(750) != 1 {
		t.Errorf("expected 1 of 750 mm, got %d", result.Inventory.Count(750))
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "not a catalog module") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected catalog warning, got %v", result.Warnings)
	}
}

func TestImportCSV_InvalidRowsReported(t *testing.T) {
	path := writeTempFile(t, "inv.csv", "Length,Count\nabc,4\n1000,xyz\n500,2\n")

	result := ImportCSV(path)
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", result.Errors)
	}
	if result.Inventory.Count(500) != 2 {
		t.Errorf("valid rows should still import, got %d", result.Inventory.Count(500))
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "inv.csv", "")

	result := ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

func TestImportCSV_MissingFile(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func TestImportCSV_HeaderMissingCountColumn(t *testing.T) {
	path := writeTempFile(t, "inv.csv", "Length,Notes\n1000,spare\n")

	result := ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Fatal("expected error for missing count column")
	}
	if !strings.Contains(result.Errors[0], "Count") {
		t.Errorf("error should name the missing column, got %q", result.Errors[0])
	}
}

func TestImportCSVFromReader(t *testing.T) {
	r := strings.NewReader("Length;Count\n1000;7\n")

	result := ImportCSVFromReader(r, ';')
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Inventory.Count(1000) != 7 {
		t.Errorf("expected 7 of 1000 mm, got %d", result.Inventory.Count(1000))
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func writeTempExcel(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("cannot create sheet: %v", err)
		}
	}
	for r, rowValues := range rows {
		for c, v := range rowValues {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("cannot set cell: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "inv.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("cannot save workbook: %v", err)
	}
	return path
}

func TestImportExcel_WithHeader(t *testing.T) {
	path := writeTempExcel(t, "Sheet1", [][]interface{}{
		{"Length", "Count"},
		{1000, 4},
		{500, 2},
	})

	result := ImportExcel(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Inventory.Count(1000) != 4 || result.Inventory.Count(500) != 2 {
		t.Errorf("unexpected inventory: %v", result.Inventory)
	}
}

func TestImportExcel_PrefersInventorySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Inventory"); err != nil {
		t.Fatalf("cannot create sheet: %v", err)
	}
	for r, rowValues := range [][]interface{}{{"Module (mm)", "Owned"}, {1000, 9}} {
		for c, v := range rowValues {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue("Inventory", cell, v); err != nil {
				t.Fatalf("cannot set cell: %v", err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "inv.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("cannot save workbook: %v", err)
	}

	result := ImportExcel(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Inventory.Count(1000) != 9 {
		t.Errorf("expected 9 of 1000 mm from Inventory sheet, got %d", result.Inventory.Count(1000))
	}
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}
