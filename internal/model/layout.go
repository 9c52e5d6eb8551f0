package model

// Placement is one piece positioned on the sheet. Rect holds the placed
// (normalized) dimensions; Rotated is set when they differ from the
// type's original orientation.
type Placement struct {
	TypeIndex int  `json:"type_index"`
	Rect      Rect `json:"rect"`
	X         int  `json:"x"` // From the left edge
	Y         int  `json:"y"` // From the top edge
	Rotated   bool `json:"rotated"`
	Row       int  `json:"row"`
}

// Right returns the x coordinate of the placement's right edge.
func (p Placement) Right() int {
	return p.X + p.Rect.Width
}

// Bottom returns the y coordinate of the placement's bottom edge.
func (p Placement) Bottom() int {
	return p.Y + p.Rect.Height
}

// Shelf is one closed or open row of a shelf layout.
type Shelf struct {
	Y      int `json:"y"`
	Height int `json:"height"` // Tallest piece in the row
	Used   int `json:"used"`   // Width consumed by pieces
}

// Layout is a concrete arrangement of a cutting pattern on a sheet.
type Layout struct {
	Sheet      Sheet       `json:"sheet"`
	Types      []Rect      `json:"types"`
	Placements []Placement `json:"placements"`
	Shelves    []Shelf     `json:"shelves"`
}

// UsedArea returns the total area covered by placements.
func (l Layout) UsedArea() int {
	var total int
	for _, p := range l.Placements {
		total += p.Rect.Area()
	}
	return total
}

// Efficiency returns the covered share of the sheet in percent.
func (l Layout) Efficiency() float64 {
	area := l.Sheet.Area()
	if area == 0 {
		return 0
	}
	return float64(l.UsedArea()) / float64(area) * 100.0
}
