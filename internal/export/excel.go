package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names written by ExportExcel.
const (
	sheetPattern     = "Pattern"
	sheetPlacements  = "Placements"
	sheetOffcuts     = "Offcuts"
	sheetGenerations = "Generations"
)

// ExportExcel writes the report to an .xlsx workbook with one sheet each for
// the pattern, the placements, the offcuts and the per-generation history.
func ExportExcel(path string, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetPattern); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{sheetPlacements, sheetOffcuts, sheetGenerations} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	p := r.Result.Pattern
	patternRows := [][]interface{}{{"Piece", "Width", "Height", "Count", "Area"}}
	for i, t := range p.Types {
		patternRows = append(patternRows, []interface{}{r.TypeLabel(i), t.Width, t.Height, p.Counts[i], p.Counts[i] * t.Area()})
	}
	patternRows = append(patternRows,
		[]interface{}{},
		[]interface{}{"Sheet", r.Result.Sheet.Width, r.Result.Sheet.Height},
		[]interface{}{"Waste", r.Result.Waste},
		[]interface{}{"Waste %", r.Result.WastePercent},
		[]interface{}{"Solved", r.Result.Solved},
		[]interface{}{"Seed", r.Result.Seed},
		[]interface{}{"Run ID", r.Result.RunID},
	)

	placementRows := [][]interface{}{{"Piece", "Width", "Height", "X", "Y", "Shelf", "Rotated"}}
	for _, pl := range r.Layout.Placements {
		placementRows = append(placementRows, []interface{}{
			r.TypeLabel(pl.TypeIndex), pl.Rect.Width, pl.Rect.Height, pl.X, pl.Y, pl.Row + 1, pl.Rotated,
		})
	}

	offcutRows := [][]interface{}{{"ID", "Width", "Height", "X", "Y", "Area"}}
	for _, o := range r.Offcuts {
		offcutRows = append(offcutRows, []interface{}{o.ID, o.Width, o.Height, o.X, o.Y, o.Area()})
	}

	generationRows := [][]interface{}{{"Generation", "Best Waste", "Mean Waste", "Infeasible"}}
	for _, s := range r.Result.History {
		generationRows = append(generationRows, []interface{}{s.Generation, s.BestWaste, s.MeanWaste, s.Infeasible})
	}

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{sheetPattern, patternRows},
		{sheetPlacements, placementRows},
		{sheetOffcuts, offcutRows},
		{sheetGenerations, generationRows},
	}
	for _, s := range sheets {
		if err := writeRows(f, s.name, s.rows, header); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeRows fills a sheet from row 1 and styles the first row as a header.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
			}
		}
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	return f.SetColWidth(sheet, "A", "A", 20)
}
