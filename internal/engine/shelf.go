package engine

import (
	"sort"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// shelfItem is one piece of the flattened packing sequence.
type shelfItem struct {
	typeIndex int
	rect      model.Rect // normalized
	rotated   bool
}

// expandPattern flattens a pattern into the packing sequence: types ordered
// by normalized height descending (stable on type index), each repeated
// count times.
func expandPattern(p model.CuttingPattern) []shelfItem {
	order := make([]int, len(p.Types))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return p.Types[order[a]].Normalize().Height > p.Types[order[b]].Normalize().Height
	})

	items := make([]shelfItem, 0, p.TotalPieces())
	for _, idx := range order {
		orig := p.Types[idx]
		norm := orig.Normalize()
		for c := 0; c < p.Counts[idx]; c++ {
			items = append(items, shelfItem{
				typeIndex: idx,
				rect:      norm,
				rotated:   norm != orig,
			})
		}
	}
	return items
}

// packShelves runs the greedy shelf packer. Pieces are placed left to right
// in the open shelf until one does not fit the remaining width; the shelf is
// then closed, consuming its tallest piece's height, and the same piece is
// retried in a fresh full-width shelf. Packing fails as soon as a piece is
// taller than the remaining sheet height, or wider than the sheet itself.
// When layout is non-nil the placements and shelves are recorded into it.
func packShelves(p model.CuttingPattern, sheet model.Sheet, layout *model.Layout) bool {
	items := expandPattern(p)
	remainingHeight := sheet.Height
	y := 0
	cursor := 0

	for cursor < len(items) {
		rowWidth := sheet.Width
		rowHeight := 0

		for cursor < len(items) {
			it := items[cursor]
			if it.rect.Height > remainingHeight {
				return false
			}
			if it.rect.Width > rowWidth {
				break
			}
			if layout != nil {
				layout.Placements = append(layout.Placements, model.Placement{
					TypeIndex: it.typeIndex,
					Rect:      it.rect,
					X:         sheet.Width - rowWidth,
					Y:         y,
					Rotated:   it.rotated,
					Row:       len(layout.Shelves),
				})
			}
			rowWidth -= it.rect.Width
			if it.rect.Height > rowHeight {
				rowHeight = it.rect.Height
			}
			cursor++
		}

		// Nothing fit into a fresh shelf: the piece is wider than the sheet.
		if rowHeight == 0 {
			return false
		}

		if layout != nil {
			layout.Shelves = append(layout.Shelves, model.Shelf{
				Y:      y,
				Height: rowHeight,
				Used:   sheet.Width - rowWidth,
			})
		}
		remainingHeight -= rowHeight
		y += rowHeight
	}

	return true
}

// Feasible reports whether every piece of the pattern can be arranged on
// the sheet by the shelf packer. An empty pattern is always feasible.
func Feasible(p model.CuttingPattern, sheet model.Sheet) bool {
	return packShelves(p, sheet, nil)
}

// PackShelves arranges the pattern on the sheet and returns the layout along
// with whether all pieces were placed. On failure the layout holds the
// pieces placed before packing stopped.
func PackShelves(p model.CuttingPattern, sheet model.Sheet) (model.Layout, bool) {
	layout := model.Layout{Sheet: sheet, Types: p.Types}
	ok := packShelves(p, sheet, &layout)
	return layout, ok
}

// LayoutFor re-packs the best pattern of a result into a concrete layout.
func LayoutFor(r model.Result) model.Layout {
	layout, _ := PackShelves(r.Pattern, r.Sheet)
	return layout
}
