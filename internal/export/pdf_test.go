package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// buildTestReport creates a report for a single full-width shelf on a
// 1000x2000 sheet: two 400x600 shelves and one 300x200 piece cut rotated.
func buildTestReport(t *testing.T) Report {
	t.Helper()

	types := []model.Rect{{Width: 400, Height: 600}, {Width: 300, Height: 200}}
	pattern := model.CuttingPattern{Types: types, Counts: []int{2, 1}}
	sheet := model.Sheet{Width: 1000, Height: 2000}

	project := model.NewProject()
	project.Name = "Bookcase"
	project.Sheet = sheet
	project.Pieces = []model.PieceType{
		model.NewPieceType("Shelf", 400, 600),
		model.NewPieceType("Divider", 300, 200),
	}
	project.Result = &model.Result{
		RunID:          "run-0001",
		Sheet:          sheet,
		Pattern:        pattern,
		Waste:          1460000,
		WastePercent:   73,
		Solved:         true,
		Seed:           7,
		PopulationSize: 10,
		Generations:    2,
		History: []model.GenerationStats{
			{Generation: 0, BestWaste: 1700000, MeanWaste: 1900000},
			{Generation: 1, BestWaste: 1520000, MeanWaste: 1800000},
			{Generation: 2, BestWaste: 1460000, MeanWaste: 1750000},
		},
	}

	layout := model.Layout{
		Sheet: sheet,
		Types: types,
		Placements: []model.Placement{
			{TypeIndex: 0, Rect: model.Rect{Width: 400, Height: 600}, X: 0, Y: 0},
			{TypeIndex: 0, Rect: model.Rect{Width: 400, Height: 600}, X: 400, Y: 0},
			{TypeIndex: 1, Rect: model.Rect{Width: 200, Height: 300}, X: 800, Y: 0, Rotated: true},
		},
		Shelves: []model.Shelf{{Y: 0, Height: 600, Used: 1000}},
	}

	r, err := NewReport(project, layout, model.DefaultMinOffcutDimension)
	if err != nil {
		t.Fatalf("NewReport returned error: %v", err)
	}
	return r
}

func TestNewReport_NoResult(t *testing.T) {
	if _, err := NewReport(model.NewProject(), model.Layout{}, 50); err == nil {
		t.Fatal("expected error for project without result, got nil")
	}
}

func TestNewReport_DetectsOffcuts(t *testing.T) {
	r := buildTestReport(t)

	if len(r.Offcuts) != 1 {
		t.Fatalf("expected 1 offcut below the shelf, got %d", len(r.Offcuts))
	}
	o := r.Offcuts[0]
	if o.Y != 600 || o.Width != 1000 || o.Height != 1400 {
		t.Errorf("expected 1000x1400 offcut at y=600, got %dx%d at y=%d", o.Width, o.Height, o.Y)
	}
}

func TestReport_TypeLabel(t *testing.T) {
	r := buildTestReport(t)

	if got := r.TypeLabel(0); got != "Shelf" {
		t.Errorf("expected 'Shelf', got %q", got)
	}
	if got := r.TypeLabel(1); got != "Divider" {
		t.Errorf("expected 'Divider', got %q", got)
	}
	if got := r.TypeLabel(5); got != "" {
		t.Errorf("expected empty label for out of range index, got %q", got)
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_output.pdf")

	if err := ExportPDF(path, buildTestReport(t)); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	// Layout page plus summary page should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_Unsolved(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unsolved.pdf")

	r := buildTestReport(t)
	r.Result.Solved = false
	r.Result.Pattern = r.Result.Pattern.Zeroed()
	r.Result.History = nil
	r.Layout.Placements = nil
	r.Layout.Shelves = nil
	r.Offcuts = model.DetectOffcuts(r.Layout, 50)

	if err := ExportPDF(path, r); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}

func TestExportPDF_InvalidSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invalid.pdf")

	r := buildTestReport(t)
	r.Layout.Sheet = model.Sheet{}

	if err := ExportPDF(path, r); err == nil {
		t.Fatal("expected error for empty sheet, got nil")
	}
}

func TestExportPDF_InvalidPath(t *testing.T) {
	err := ExportPDF("/nonexistent/dir/out.pdf", buildTestReport(t))
	if err == nil {
		t.Fatal("expected error for invalid path, got nil")
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{100, 50, 8},
		{30, 25, 7},
		{15, 10, 6},
	}
	for _, tt := range tests {
		if got := labelFontSize(tt.w, tt.h); got != tt.want {
			t.Errorf("labelFontSize(%g, %g) = %g, want %g", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestColorFor_WrapsAround(t *testing.T) {
	if colorFor(0) != colorFor(len(pieceColors)) {
		t.Error("expected colors to repeat after the palette is exhausted")
	}
}
