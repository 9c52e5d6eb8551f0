package model

import (
	"strings"

	"github.com/google/uuid"
)

// SheetPreset represents a reusable stock sheet definition.
type SheetPreset struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Material string `json:"material"`
}

// NewSheetPreset creates a new SheetPreset with a generated ID.
func NewSheetPreset(name string, width, height int, material string) SheetPreset {
	return SheetPreset{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Width:    width,
		Height:   height,
		Material: material,
	}
}

// Sheet returns the preset's dimensions as a sheet.
func (sp SheetPreset) Sheet() Sheet {
	return Sheet{Width: sp.Width, Height: sp.Height}
}

// Inventory holds the user's saved sheet presets.
type Inventory struct {
	Sheets []SheetPreset `json:"sheets"`
}

// DefaultInventory returns an inventory populated with common stock sizes.
func DefaultInventory() Inventory {
	return Inventory{
		Sheets: []SheetPreset{
			NewSheetPreset("Plywood 2440x1220 (8'x4')", 2440, 1220, "Plywood"),
			NewSheetPreset("MDF 2440x1220 (8'x4')", 2440, 1220, "MDF"),
			NewSheetPreset("MDF 1220x610 (4'x2')", 1220, 610, "MDF"),
			NewSheetPreset("Float Glass 3210x2250", 3210, 2250, "Glass"),
			NewSheetPreset("Acrylic 600x400", 600, 400, "Acrylic"),
			NewSheetPreset("Aluminium 2000x1000", 2000, 1000, "Aluminium"),
		},
	}
}

// Add appends a preset.
func (inv *Inventory) Add(sp SheetPreset) {
	inv.Sheets = append(inv.Sheets, sp)
}

// Remove deletes the preset with the given ID. Returns true if found.
func (inv *Inventory) Remove(id string) bool {
	for i, s := range inv.Sheets {
		if s.ID == id {
			inv.Sheets = append(inv.Sheets[:i], inv.Sheets[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindByID(id string) *SheetPreset {
	for i := range inv.Sheets {
		if inv.Sheets[i].ID == id {
			return &inv.Sheets[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset whose name matches,
// ignoring case, or nil.
func (inv *Inventory) FindByName(name string) *SheetPreset {
	for i := range inv.Sheets {
		if strings.EqualFold(inv.Sheets[i].Name, name) {
			return &inv.Sheets[i]
		}
	}
	return nil
}

// Names returns the preset names in order.
func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.Sheets))
	for i, s := range inv.Sheets {
		names[i] = s.Name
	}
	return names
}
