package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Rect is a rectangle specification in whole units. The exact pair supplied
// by the caller identifies a piece type; orientation is not canonicalized.
type Rect struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Normalize returns the rectangle with the shorter side as width.
func (r Rect) Normalize() Rect {
	if r.Width > r.Height {
		return Rect{Width: r.Height, Height: r.Width}
	}
	return r
}

// Area returns width times height.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Valid reports whether both dimensions are positive.
func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Sheet is the stock sheet pieces are cut from.
type Sheet struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns the sheet area.
func (s Sheet) Area() int {
	return s.Width * s.Height
}

// Normalize returns the sheet with the shorter side as width.
func (s Sheet) Normalize() Sheet {
	if s.Width > s.Height {
		return Sheet{Width: s.Height, Height: s.Width}
	}
	return s
}

// Valid reports whether both dimensions are positive.
func (s Sheet) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

func (s Sheet) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// PieceType is a labelled rectangle the user wants cut from the sheet.
type PieceType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Rect  Rect   `json:"rect"`
}

func NewPieceType(label string, w, h int) PieceType {
	return PieceType{
		ID:    uuid.New().String()[:8],
		Label: label,
		Rect:  Rect{Width: w, Height: h},
	}
}

// Rects returns the distinct rectangles of the given piece types in input
// order. Later duplicates of an already seen rectangle are dropped.
func Rects(pieces []PieceType) []Rect {
	seen := make(map[Rect]bool, len(pieces))
	rects := make([]Rect, 0, len(pieces))
	for _, p := range pieces {
		if seen[p.Rect] {
			continue
		}
		seen[p.Rect] = true
		rects = append(rects, p.Rect)
	}
	return rects
}

// CuttingPattern holds how many copies of each piece type to cut.
// Counts[i] belongs to Types[i]; the Types slice is shared by every
// pattern of one optimization run and must not be modified.
type CuttingPattern struct {
	Types  []Rect `json:"types"`
	Counts []int  `json:"counts"`
}

// NewCuttingPattern returns a pattern over types with all counts zero.
func NewCuttingPattern(types []Rect) CuttingPattern {
	return CuttingPattern{Types: types, Counts: make([]int, len(types))}
}

// Clone copies the counts. Types stay shared.
func (p CuttingPattern) Clone() CuttingPattern {
	counts := make([]int, len(p.Counts))
	copy(counts, p.Counts)
	return CuttingPattern{Types: p.Types, Counts: counts}
}

// Count returns the count of the given rectangle, or 0 if it is not a type
// of this pattern.
func (p CuttingPattern) Count(r Rect) int {
	for i, t := range p.Types {
		if t == r {
			return p.Counts[i]
		}
	}
	return 0
}

// Map returns the pattern keyed by rectangle.
func (p CuttingPattern) Map() map[Rect]int {
	m := make(map[Rect]int, len(p.Types))
	for i, t := range p.Types {
		m[t] = p.Counts[i]
	}
	return m
}

// Zeroed returns a copy with every count set to zero.
func (p CuttingPattern) Zeroed() CuttingPattern {
	return NewCuttingPattern(p.Types)
}

// TotalPieces returns the number of pieces across all types.
func (p CuttingPattern) TotalPieces() int {
	total := 0
	for _, c := range p.Counts {
		total += c
	}
	return total
}

// UsedArea returns the summed area of all pieces using their original
// dimensions.
func (p CuttingPattern) UsedArea() int {
	used := 0
	for i, t := range p.Types {
		used += p.Counts[i] * t.Area()
	}
	return used
}

// GenerationStats summarizes one ranked generation.
type GenerationStats struct {
	Generation  int     `json:"generation"`
	BestWaste   int     `json:"best_waste"`
	MeanWaste   float64 `json:"mean_waste"`
	Infeasible  int     `json:"infeasible"`
	BestPattern []int   `json:"best_pattern"`
}

// Result holds the outcome of one optimization run.
type Result struct {
	RunID          string            `json:"run_id"`
	Sheet          Sheet             `json:"sheet"`
	Pattern        CuttingPattern    `json:"pattern"`
	Waste          int               `json:"waste"`
	WastePercent   float64           `json:"waste_percent"`
	Solved         bool              `json:"solved"`
	Seed           int64             `json:"seed"`
	PopulationSize int               `json:"population_size"`
	Generations    int               `json:"generations"`
	History        []GenerationStats `json:"history,omitempty"`
}

// Efficiency returns the used share of the sheet in percent.
func (r Result) Efficiency() float64 {
	return 100.0 - r.WastePercent
}

// Project ties a sheet, its piece types, settings and the last result
// together for save/load.
type Project struct {
	Name     string      `json:"name"`
	Sheet    Sheet       `json:"sheet"`
	Pieces   []PieceType `json:"pieces"`
	Settings Settings    `json:"settings"`
	Result   *Result     `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Pieces:   []PieceType{},
		Settings: DefaultSettings(),
	}
}

// Label returns the label of the first piece with the given rectangle, or
// the rectangle's dimensions if none matches.
func (p Project) Label(r Rect) string {
	for _, pc := range p.Pieces {
		if pc.Rect == r && pc.Label != "" {
			return pc.Label
		}
	}
	return r.String()
}
