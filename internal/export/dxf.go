package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
)

// DXF layer names written by ExportDXF.
const (
	layerSheet   = "SHEET"
	layerPieces  = "PIECES"
	layerOffcuts = "OFFCUTS"
	layerLabels  = "LABELS"
)

// ExportDXF writes the layout as a DXF drawing: the sheet outline, one
// closed polyline per placed piece, the offcuts and a text label per piece.
// DXF's y axis points up, so layout rows are mirrored to keep the first
// shelf at the top of the drawing.
func ExportDXF(path string, r Report) error {
	l := r.Layout
	if !l.Sheet.Valid() {
		return fmt.Errorf("layout sheet %s has no area to draw", l.Sheet)
	}

	d := dxf.NewDrawing()
	layers := []struct {
		name string
		cl   color.ColorNumber
	}{
		{layerSheet, dxf.DefaultColor},
		{layerPieces, color.Green},
		{layerOffcuts, color.Yellow},
		{layerLabels, color.Cyan},
	}
	for _, layer := range layers {
		if _, err := d.AddLayer(layer.name, layer.cl, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", layer.name, err)
		}
	}

	sheetH := float64(l.Sheet.Height)
	rect := func(x, y, w, h int) error {
		x0, x1 := float64(x), float64(x+w)
		y1 := sheetH - float64(y)
		y0 := y1 - float64(h)
		_, err := d.LwPolyline(true, []float64{x0, y0}, []float64{x1, y0}, []float64{x1, y1}, []float64{x0, y1})
		return err
	}

	if err := d.ChangeLayer(layerSheet); err != nil {
		return err
	}
	if err := rect(0, 0, l.Sheet.Width, l.Sheet.Height); err != nil {
		return fmt.Errorf("failed to draw sheet: %w", err)
	}

	if err := d.ChangeLayer(layerPieces); err != nil {
		return err
	}
	for i, p := range l.Placements {
		if err := rect(p.X, p.Y, p.Rect.Width, p.Rect.Height); err != nil {
			return fmt.Errorf("failed to draw piece %d: %w", i+1, err)
		}
	}

	if err := d.ChangeLayer(layerOffcuts); err != nil {
		return err
	}
	for _, o := range r.Offcuts {
		if err := rect(o.X, o.Y, o.Width, o.Height); err != nil {
			return fmt.Errorf("failed to draw offcut %s: %w", o.ID, err)
		}
	}

	if err := d.ChangeLayer(layerLabels); err != nil {
		return err
	}
	for _, p := range l.Placements {
		size := float64(min(p.Rect.Width, p.Rect.Height)) / 8
		x := float64(p.X) + float64(p.Rect.Width)/10
		y := sheetH - float64(p.Y) - float64(p.Rect.Height)/2
		if _, err := d.Text(r.TypeLabel(p.TypeIndex), x, y, 0, size); err != nil {
			return fmt.Errorf("failed to write label: %w", err)
		}
	}

	return d.SaveAs(path)
}
