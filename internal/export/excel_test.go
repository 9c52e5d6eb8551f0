package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportExcel_WritesAllSheets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xlsx")

	if err := ExportExcel(path, buildTestReport(t)); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	want := []string{sheetPattern, sheetPlacements, sheetOffcuts, sheetGenerations}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sheet %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestExportExcel_PatternRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xlsx")

	if err := ExportExcel(path, buildTestReport(t)); err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetPattern)
	if err != nil {
		t.Fatalf("failed to read pattern rows: %v", err)
	}
	if len(rows) < 3 {
		t.Fatalf("expected header and two type rows, got %d rows", len(rows))
	}

	shelf := rows[1]
	expected := []string{"Shelf", "400", "600", "2", "480000"}
	for i, v := range expected {
		if shelf[i] != v {
			t.Errorf("pattern row column %d: expected %q, got %q", i, v, shelf[i])
		}
	}

	placements, err := f.GetRows(sheetPlacements)
	if err != nil {
		t.Fatalf("failed to read placement rows: %v", err)
	}
	if len(placements) != 4 {
		t.Errorf("expected header plus 3 placements, got %d rows", len(placements))
	}

	generations, err := f.GetRows(sheetGenerations)
	if err != nil {
		t.Fatalf("failed to read generation rows: %v", err)
	}
	if len(generations) != 4 {
		t.Errorf("expected header plus 3 generations, got %d rows", len(generations))
	}
}

func TestExportExcel_InvalidPath(t *testing.T) {
	if err := ExportExcel("/nonexistent/dir/report.xlsx", buildTestReport(t)); err == nil {
		t.Fatal("expected error for invalid path, got nil")
	}
}
