package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut represents a usable rectangular remnant left over after cutting.
type Offcut struct {
	ID     string `json:"id"`
	X      int    `json:"x"` // Position on the sheet from the left
	Y      int    `json:"y"` // Position on the sheet from the top
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Area returns the area of the offcut.
func (o Offcut) Area() int {
	return o.Width * o.Height
}

// ToSheet converts an offcut into a sheet for a follow-up run.
func (o Offcut) ToSheet() Sheet {
	return Sheet{Width: o.Width, Height: o.Height}
}

// DefaultMinOffcutDimension is the smallest side length for a remnant to
// count as reusable.
const DefaultMinOffcutDimension = 50

// DetectOffcuts lists the remnants of a shelf layout whose sides are both at
// least minDim: the strip to the right of each shelf's last piece and the
// strip below the last shelf. Results are sorted by area, largest first.
func DetectOffcuts(l Layout, minDim int) []Offcut {
	if minDim < 1 {
		minDim = 1
	}
	usable := func(w, h int) bool {
		return w >= minDim && h >= minDim
	}

	if len(l.Placements) == 0 {
		if !usable(l.Sheet.Width, l.Sheet.Height) {
			return nil
		}
		return []Offcut{{
			ID:     uuid.New().String()[:8],
			Width:  l.Sheet.Width,
			Height: l.Sheet.Height,
		}}
	}

	var offcuts []Offcut
	bottom := 0
	for _, s := range l.Shelves {
		if tail := l.Sheet.Width - s.Used; usable(tail, s.Height) {
			offcuts = append(offcuts, Offcut{
				ID:     uuid.New().String()[:8],
				X:      s.Used,
				Y:      s.Y,
				Width:  tail,
				Height: s.Height,
			})
		}
		if s.Y+s.Height > bottom {
			bottom = s.Y + s.Height
		}
	}

	if rest := l.Sheet.Height - bottom; usable(l.Sheet.Width, rest) {
		offcuts = append(offcuts, Offcut{
			ID:     uuid.New().String()[:8],
			X:      0,
			Y:      bottom,
			Width:  l.Sheet.Width,
			Height: rest,
		})
	}

	sort.SliceStable(offcuts, func(i, j int) bool {
		return offcuts[i].Area() > offcuts[j].Area()
	})
	return offcuts
}

// TotalOffcutArea returns the total area of all offcuts.
func TotalOffcutArea(offcuts []Offcut) int {
	var total int
	for _, o := range offcuts {
		total += o.Area()
	}
	return total
}
