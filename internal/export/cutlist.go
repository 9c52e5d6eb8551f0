package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/piwi3910/ShelfCut/internal/model"
)

const cutListComment = ";"

// CutList renders the report's saw cuts as a plain text sheet for the
// operator, one numbered cut per line in cutting order.
func CutList(r Report) string {
	var b strings.Builder

	writeCutListHeader(&b, r)

	shelf := -1
	for i, c := range r.Cuts {
		if c.Shelf != shelf {
			shelf = c.Shelf
			b.WriteString("\n")
			b.WriteString(comment(fmt.Sprintf("--- Shelf %d ---", shelf+1)))
		}
		b.WriteString(fmt.Sprintf("%3d  %-5s  (%d, %d) -> (%d, %d)  length %d\n",
			i+1, c.Kind, c.X1, c.Y1, c.X2, c.Y2, c.Length()))
	}

	writeCutListFooter(&b, r)
	return b.String()
}

// ExportCutList writes the cut list of the report to path.
func ExportCutList(path string, r Report) error {
	if !r.Layout.Sheet.Valid() {
		return fmt.Errorf("invalid sheet %s", r.Layout.Sheet)
	}
	return os.WriteFile(path, []byte(CutList(r)), 0644)
}

func writeCutListHeader(b *strings.Builder, r Report) {
	b.WriteString(comment(fmt.Sprintf("ShelfCut cut list: %s", r.Name)))
	b.WriteString(comment(fmt.Sprintf("Sheet: %s", r.Layout.Sheet)))
	b.WriteString(comment(fmt.Sprintf("Pieces: %d, Shelves: %d", len(r.Layout.Placements), len(r.Layout.Shelves))))
	if r.Result.RunID != "" {
		b.WriteString(comment(fmt.Sprintf("Run: %s", r.Result.RunID)))
	}
}

func writeCutListFooter(b *strings.Builder, r Report) {
	b.WriteString("\n")
	if len(r.Cuts) == 0 {
		b.WriteString(comment("No cuts required"))
		return
	}
	b.WriteString(comment(fmt.Sprintf("Cuts: %d, Total length: %d", len(r.Cuts), model.TotalCutLength(r.Cuts))))
}

func comment(text string) string {
	return cutListComment + " " + text + "\n"
}
