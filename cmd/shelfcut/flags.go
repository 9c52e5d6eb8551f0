package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/ShelfCut/internal/model"
)

// inputFlags are the flags shared by optimize and compare.
type inputFlags struct {
	sheet       *string
	preset      *string
	importPath  *string
	projectPath *string
	name        *string
	population  *int
	generations *int
	seed        *int64
	workers     *int
	verbose     *bool
	pieces      pieceList
}

func registerInputFlags(fs *flag.FlagSet) *inputFlags {
	in := &inputFlags{
		sheet:       fs.String("sheet", "", "sheet size as WxH"),
		preset:      fs.String("preset", "", "sheet preset name or ID from the inventory"),
		importPath:  fs.String("import", "", "import piece types from a .csv, .xlsx or .dxf file"),
		projectPath: fs.String("project", "", "load sheet, pieces and settings from a project file"),
		name:        fs.String("name", "", "project name"),
		population:  fs.Int("population", 0, "population size (0 derives it from the piece density)"),
		generations: fs.Int("generations", -1, "generation count (-1 derives it from the population)"),
		seed:        fs.Int64("seed", 0, "random seed (0 picks one from the clock)"),
		workers:     fs.Int("workers", 0, "fitness evaluation workers"),
		verbose:     fs.Bool("v", false, "log progress per generation"),
	}
	fs.Var(&in.pieces, "piece", "piece type as WxH or LABEL=WxH (repeatable)")
	return in
}

// pieceList collects repeated -piece flags.
type pieceList []model.PieceType

func (p *pieceList) String() string {
	parts := make([]string, len(*p))
	for i, pc := range *p {
		parts[i] = pc.Rect.String()
	}
	return strings.Join(parts, ",")
}

func (p *pieceList) Set(value string) error {
	piece, err := parsePiece(value)
	if err != nil {
		return err
	}
	*p = append(*p, piece)
	return nil
}

// parsePiece parses "WxH" or "LABEL=WxH". A missing label is left empty.
func parsePiece(s string) (model.PieceType, error) {
	label := ""
	dims := s
	if i := strings.LastIndex(s, "="); i >= 0 {
		label = strings.TrimSpace(s[:i])
		dims = s[i+1:]
	}
	r, err := parseDims(dims)
	if err != nil {
		return model.PieceType{}, err
	}
	return model.NewPieceType(label, r.Width, r.Height), nil
}

// parseDims parses "WxH" into a rectangle with positive whole dimensions.
func parseDims(s string) (model.Rect, error) {
	parts := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(s)), func(r rune) bool {
		return r == 'x' || r == '*'
	})
	if len(parts) != 2 {
		return model.Rect{}, fmt.Errorf("size %q is not of the form WxH", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Rect{}, fmt.Errorf("size %q: invalid width", s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Rect{}, fmt.Errorf("size %q: invalid height", s)
	}
	r := model.Rect{Width: w, Height: h}
	if !r.Valid() {
		return model.Rect{}, fmt.Errorf("size %q must be positive", s)
	}
	return r, nil
}

// printResult writes the run summary and the pattern table.
func (a *app) printResult(p model.Project) {
	r := p.Result
	fmt.Fprintf(a.out, "project:     %s\n", p.Name)
	fmt.Fprintf(a.out, "sheet:       %s\n", r.Sheet)
	fmt.Fprintf(a.out, "population:  %d\n", r.PopulationSize)
	fmt.Fprintf(a.out, "generations: %d\n", r.Generations)
	fmt.Fprintf(a.out, "seed:        %d\n", r.Seed)
	if !r.Solved {
		fmt.Fprintln(a.out, "no solution found")
	}
	fmt.Fprintf(a.out, "waste:       %d (%.2f%%)\n", r.Waste, r.WastePercent)
	fmt.Fprintln(a.out)

	fmt.Fprintf(a.out, "%-24s %-12s %6s\n", "PIECE", "SIZE", "COUNT")
	for i, t := range r.Pattern.Types {
		fmt.Fprintf(a.out, "%-24s %-12s %6d\n", p.Label(t), t, r.Pattern.Counts[i])
	}
}
