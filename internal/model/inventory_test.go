package model

import (
	"testing"
)

func TestDefaultInventoryHasPresets(t *testing.T) {
	inv := DefaultInventory()
	if len(inv.Sheets) == 0 {
		t.Fatal("expected default sheet presets")
	}
	seen := make(map[string]bool)
	for _, s := range inv.Sheets {
		if s.ID == "" {
			t.Errorf("preset %s has no ID", s.Name)
		}
		if seen[s.ID] {
			t.Errorf("duplicate preset ID %s", s.ID)
		}
		seen[s.ID] = true
		if !s.Sheet().Valid() {
			t.Errorf("preset %s has invalid size", s.Name)
		}
	}
}

func TestInventoryAddFindRemove(t *testing.T) {
	inv := Inventory{}
	sp := NewSheetPreset("Birch 1525x1525", 1525, 1525, "Plywood")
	inv.Add(sp)

	if got := inv.FindByName("birch 1525X1525"); got == nil || got.ID != sp.ID {
		t.Fatalf("expected case-insensitive name lookup to find preset")
	}
	if got := inv.FindByID(sp.ID); got == nil {
		t.Fatal("expected lookup by ID to find preset")
	}
	if names := inv.Names(); len(names) != 1 || names[0] != sp.Name {
		t.Errorf("unexpected names %v", names)
	}

	if !inv.Remove(sp.ID) {
		t.Fatal("expected Remove to report success")
	}
	if inv.Remove(sp.ID) {
		t.Error("second Remove should report not found")
	}
	if inv.FindByID(sp.ID) != nil {
		t.Error("preset still present after removal")
	}
}
