package model

import (
	"testing"
)

func TestRectNormalize(t *testing.T) {
	cases := []struct {
		in, want Rect
	}{
		{Rect{Width: 5, Height: 3}, Rect{Width: 3, Height: 5}},
		{Rect{Width: 3, Height: 5}, Rect{Width: 3, Height: 5}},
		{Rect{Width: 4, Height: 4}, Rect{Width: 4, Height: 4}},
	}
	for _, c := range cases {
		if got := c.in.Normalize(); got != c.want {
			t.Errorf("Normalize(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSheetNormalize(t *testing.T) {
	s := Sheet{Width: 2440, Height: 1220}.Normalize()
	if s.Width != 1220 || s.Height != 2440 {
		t.Errorf("expected 1220x2440, got %v", s)
	}
}

func TestRectsDropsDuplicates(t *testing.T) {
	pieces := []PieceType{
		NewPieceType("A", 10, 20),
		NewPieceType("B", 30, 40),
		NewPieceType("A again", 10, 20),
		NewPieceType("A rotated", 20, 10),
	}
	rects := Rects(pieces)
	if len(rects) != 3 {
		t.Fatalf("expected 3 distinct rects, got %d", len(rects))
	}
	if rects[2] != (Rect{Width: 20, Height: 10}) {
		t.Errorf("rotated spec should be its own type, got %v", rects[2])
	}
}

func TestCuttingPatternCloneIsIndependent(t *testing.T) {
	types := []Rect{{Width: 1, Height: 2}, {Width: 3, Height: 4}}
	p := CuttingPattern{Types: types, Counts: []int{1, 2}}
	c := p.Clone()
	c.Counts[0] = 9

	if p.Counts[0] != 1 {
		t.Errorf("clone shares counts with original")
	}
	if &c.Types[0] != &p.Types[0] {
		t.Errorf("clone should share the type slice")
	}
}

func TestCuttingPatternAccessors(t *testing.T) {
	types := []Rect{{Width: 2, Height: 3}, {Width: 5, Height: 5}}
	p := CuttingPattern{Types: types, Counts: []int{4, 1}}

	if got := p.UsedArea(); got != 4*6+25 {
		t.Errorf("expected used area 49, got %d", got)
	}
	if got := p.TotalPieces(); got != 5 {
		t.Errorf("expected 5 pieces, got %d", got)
	}
	if got := p.Count(Rect{Width: 5, Height: 5}); got != 1 {
		t.Errorf("expected count 1, got %d", got)
	}
	if got := p.Count(Rect{Width: 9, Height: 9}); got != 0 {
		t.Errorf("expected count 0 for unknown type, got %d", got)
	}

	m := p.Map()
	if len(m) != 2 || m[Rect{Width: 2, Height: 3}] != 4 {
		t.Errorf("unexpected map %v", m)
	}

	z := p.Zeroed()
	if z.TotalPieces() != 0 || len(z.Counts) != 2 {
		t.Errorf("expected two zero counts, got %v", z.Counts)
	}
	if p.TotalPieces() != 5 {
		t.Errorf("Zeroed must not modify the original")
	}
}

func TestProjectLabel(t *testing.T) {
	p := NewProject()
	p.Pieces = []PieceType{NewPieceType("Shelf", 600, 300)}

	if got := p.Label(Rect{Width: 600, Height: 300}); got != "Shelf" {
		t.Errorf("expected Shelf, got %s", got)
	}
	if got := p.Label(Rect{Width: 1, Height: 2}); got != "1x2" {
		t.Errorf("expected fallback 1x2, got %s", got)
	}
}
