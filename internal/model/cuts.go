package model

// CutKind classifies a saw cut of a shelf layout.
type CutKind string

const (
	CutRip   CutKind = "rip"   // Full sheet width, below a shelf
	CutCross CutKind = "cross" // Shelf height, right of a piece
	CutTrim  CutKind = "trim"  // Piece width, below a piece shorter than its shelf
)

// Cut is one straight cut from (X1, Y1) to (X2, Y2) in sheet coordinates.
type Cut struct {
	Kind  CutKind `json:"kind"`
	Shelf int     `json:"shelf"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
}

// Length returns the length of the cut.
func (c Cut) Length() int {
	return (c.X2 - c.X1) + (c.Y2 - c.Y1)
}

// CutSequence returns the guillotine cuts that free every piece of a shelf
// layout, shelf by shelf: the rip cut separating the shelf strip from the
// rest of the sheet, then a cross cut after each piece, then the trim cuts
// of pieces shorter than the shelf. Cuts along a sheet edge are omitted.
func CutSequence(l Layout) []Cut {
	var cuts []Cut
	for i, s := range l.Shelves {
		bottom := s.Y + s.Height
		if bottom < l.Sheet.Height {
			cuts = append(cuts, Cut{Kind: CutRip, Shelf: i, X1: 0, Y1: bottom, X2: l.Sheet.Width, Y2: bottom})
		}

		var row []Placement
		for _, p := range l.Placements {
			if p.Row == i {
				row = append(row, p)
			}
		}

		for _, p := range row {
			if p.Right() < l.Sheet.Width {
				cuts = append(cuts, Cut{Kind: CutCross, Shelf: i, X1: p.Right(), Y1: s.Y, X2: p.Right(), Y2: bottom})
			}
		}
		for _, p := range row {
			if p.Bottom() < bottom {
				cuts = append(cuts, Cut{Kind: CutTrim, Shelf: i, X1: p.X, Y1: p.Bottom(), X2: p.Right(), Y2: p.Bottom()})
			}
		}
	}
	return cuts
}

// TotalCutLength returns the summed length of all cuts.
func TotalCutLength(cuts []Cut) int {
	var total int
	for _, c := range cuts {
		total += c.Length()
	}
	return total
}
