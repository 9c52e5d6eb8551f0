package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/ShelfCut/internal/model"
)

// pieceColor represents an RGB color for a placed piece type.
type pieceColor struct {
	R, G, B int
}

// pieceColors is indexed by piece type so every copy of a type shares a color.
var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

func colorFor(typeIndex int) pieceColor {
	return pieceColors[typeIndex%len(pieceColors)]
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for the report: a page with the shelf
// layout drawn to scale, followed by a summary page with the run
// parameters, the pattern table, the offcuts and the convergence chart.
func ExportPDF(path string, r Report) error {
	if !r.Layout.Sheet.Valid() {
		return fmt.Errorf("layout sheet %s has no area to draw", r.Layout.Sheet)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle(r.Name, true)

	pdf.AddPage()
	renderLayoutPage(pdf, r)

	pdf.AddPage()
	renderSummaryPage(pdf, r)

	return pdf.OutputFileAndClose(path)
}

// renderLayoutPage draws the sheet with its placements and offcuts.
func renderLayoutPage(pdf *fpdf.Fpdf, r Report) {
	l := r.Layout
	sheetW := float64(l.Sheet.Width)
	sheetH := float64(l.Sheet.Height)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s: sheet %d x %d", r.Name, l.Sheet.Width, l.Sheet.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Shelves: %d | Used area: %d | Waste: %d (%.2f%%) | Efficiency: %.1f%%",
		len(l.Placements), len(l.Shelves), l.UsedArea(), r.Result.Waste, r.Result.WastePercent, l.Efficiency())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/sheetW, drawHeight/sheetH)
	canvasW := sheetW * scale
	canvasH := sheetH * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Sheet background (wood color)
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for _, o := range r.Offcuts {
		ox := offsetX + float64(o.X)*scale
		oy := offsetY + float64(o.Y)*scale
		ow := float64(o.Width) * scale
		oh := float64(o.Height) * scale
		pdf.SetFillColor(235, 225, 205)
		pdf.SetDrawColor(150, 150, 150)
		pdf.SetLineWidth(0.2)
		pdf.Rect(ox, oy, ow, oh, "FD")
		drawHatchPattern(pdf, ox, oy, ow, oh)
	}

	// Shelf boundaries
	pdf.SetDrawColor(120, 90, 60)
	pdf.SetLineWidth(0.2)
	for _, s := range l.Shelves[min(1, len(l.Shelves)):] {
		y := offsetY + float64(s.Y)*scale
		pdf.Line(offsetX, y, offsetX+canvasW, y)
	}

	for _, p := range l.Placements {
		col := colorFor(p.TypeIndex)
		pw := float64(p.Rect.Width) * scale
		ph := float64(p.Rect.Height) * scale
		px := offsetX + float64(p.X)*scale
		py := offsetY + float64(p.Y)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Label only if the rectangle is large enough
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := r.TypeLabel(p.TypeIndex)
			dims := p.Rect.String()
			if p.Rotated {
				dims += " R"
			}

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	if len(l.Placements) == 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(200, 0, 0)
		msg := "No feasible pattern found"
		msgW := pdf.GetStringWidth(msg)
		pdf.SetXY(offsetX+(canvasW-msgW)/2, offsetY+canvasH/2-3)
		pdf.CellFormat(msgW, 6, msg, "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	drawDimensionAnnotations(pdf, l.Sheet, offsetX, offsetY, canvasW, canvasH)
	drawTypeLegend(pdf, r, offsetY+canvasH+6)
}

// drawHatchPattern draws diagonal lines inside a rectangle to mark offcuts.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(170, 150, 120)
	pdf.SetLineWidth(0.1)

	spacing := 4.0
	for d := spacing; d < w+h; d += spacing {
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)
		pdf.Line(x1, y1, x2, y2)
	}
}

// drawDimensionAnnotations adds width and height labels outside the sheet rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, sheet model.Sheet, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%d", sheet.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%d", sheet.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawTypeLegend renders one swatch per piece type with its cut count.
func drawTypeLegend(pdf *fpdf.Fpdf, r Report, startY float64) {
	p := r.Result.Pattern
	if len(p.Types) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Piece types:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, t := range p.Types {
		col := colorFor(i)
		label := fmt.Sprintf("%s (%s) x%d", r.TypeLabel(i), t, p.Counts[i])
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the run parameters, the pattern table, the
// offcut list and the convergence chart.
func renderSummaryPage(pdf *fpdf.Fpdf, r Report) {
	res := r.Result

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Cutting Pattern Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Run", "", 0, "L", false, 0, "")
	y += 9

	status := "solved"
	if !res.Solved {
		status = "no solution found"
	}
	summaryItems := []struct {
		label string
		value string
	}{
		{"Run ID", res.RunID},
		{"Status", status},
		{"Sheet", res.Sheet.String()},
		{"Population", fmt.Sprintf("%d", res.PopulationSize)},
		{"Generations", fmt.Sprintf("%d", res.Generations)},
		{"Seed", fmt.Sprintf("%d", res.Seed)},
		{"Waste", fmt.Sprintf("%d (%.2f%%)", res.Waste, res.WastePercent)},
		{"Pieces", fmt.Sprintf("%d", res.Pattern.TotalPieces())},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(35, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(70, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 6
	}

	y += 4
	y = renderPatternTable(pdf, r, y)

	if len(r.Offcuts) > 0 {
		y += 6
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Reusable Offcuts", "", 0, "L", false, 0, "")
		y += 7

		pdf.SetFont("Helvetica", "", 9)
		for _, o := range r.Offcuts {
			if y > pageHeight-marginBottom-10 {
				break
			}
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %d x %d at (%d, %d)", o.Width, o.Height, o.X, o.Y)
			pdf.CellFormat(110, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	drawConvergenceChart(pdf, res.History, res.Sheet.Area(), 150, marginTop+18, 130, 80)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by ShelfCut - Shelf Cutting Pattern Optimizer", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderPatternTable draws one row per piece type and returns the y below
// the table.
func renderPatternTable(pdf *fpdf.Fpdf, r Report, y float64) float64 {
	p := r.Result.Pattern

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Pattern", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{45, 30, 20, 30}
	headers := []string{"Piece", "Size", "Count", "Area"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, t := range p.Types {
		xPos = marginLeft
		rowData := []string{
			r.TypeLabel(i),
			t.String(),
			fmt.Sprintf("%d", p.Counts[i]),
			fmt.Sprintf("%d", p.Counts[i]*t.Area()),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}
	return y
}

// drawConvergenceChart plots the best waste per generation as a polyline
// inside the box at (x, y) of size w by h.
func drawConvergenceChart(pdf *fpdf.Fpdf, history []model.GenerationStats, sheetArea int, x, y, w, h float64) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(x, y-9)
	pdf.CellFormat(w, 7, "Best Waste per Generation", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.3)
	pdf.Rect(x, y, w, h, "D")

	if len(history) == 0 || sheetArea == 0 {
		return
	}

	maxWaste := 0
	for _, s := range history {
		if s.BestWaste > maxWaste {
			maxWaste = s.BestWaste
		}
	}
	if maxWaste == 0 {
		maxWaste = sheetArea
	}

	step := w
	if len(history) > 1 {
		step = w / float64(len(history)-1)
	}
	point := func(i int) (float64, float64) {
		px := x + float64(i)*step
		py := y + h - float64(history[i].BestWaste)/float64(maxWaste)*h
		return px, py
	}

	pdf.SetDrawColor(33, 150, 243)
	pdf.SetLineWidth(0.4)
	for i := 1; i < len(history); i++ {
		x1, y1 := point(i - 1)
		x2, y2 := point(i)
		pdf.Line(x1, y1, x2, y2)
	}

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(x, y+h+1)
	pdf.CellFormat(w/2, 4, "gen 0", "", 0, "L", false, 0, "")
	pdf.CellFormat(w/2, 4, fmt.Sprintf("gen %d", history[len(history)-1].Generation), "", 0, "R", false, 0, "")
	pdf.SetXY(x+1, y+1)
	pdf.CellFormat(30, 4, fmt.Sprintf("%d", maxWaste), "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
