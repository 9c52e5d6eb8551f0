package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/ShelfCut/internal/model"
)

func TestDefaultInventoryPath(t *testing.T) {
	path := DefaultInventoryPath()
	if filepath.Base(path) != "inventory.json" {
		t.Errorf("expected filename inventory.json, got %s", filepath.Base(path))
	}
	if dir := filepath.Base(filepath.Dir(path)); dir != ".shelfcut" {
		t.Errorf("expected parent dir .shelfcut, got %s", dir)
	}
}

func TestSaveAndLoadInventory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test_inventory.json")

	inv := model.Inventory{
		Sheets: []model.SheetPreset{
			model.NewSheetPreset("Test Plywood", 2440, 1220, "Plywood"),
		},
	}

	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("inventory file was not created")
	}

	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}

	if len(loaded.Sheets) != 1 {
		t.Fatalf("expected 1 sheet preset, got %d", len(loaded.Sheets))
	}
	if loaded.Sheets[0].Name != "Test Plywood" {
		t.Errorf("expected name 'Test Plywood', got %q", loaded.Sheets[0].Name)
	}
	if loaded.Sheets[0].Width != 2440 {
		t.Errorf("expected width 2440, got %d", loaded.Sheets[0].Width)
	}
	if loaded.Sheets[0].ID != inv.Sheets[0].ID {
		t.Errorf("expected ID %q to survive, got %q", inv.Sheets[0].ID, loaded.Sheets[0].ID)
	}
}

func TestLoadInventoryCreatesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nonexistent", "inventory.json")

	inv, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(inv.Sheets) == 0 {
		t.Error("expected default sheet presets, got none")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("expected default inventory file to be created")
	}
}

func TestImportInventory(t *testing.T) {
	tmpDir := t.TempDir()

	existing := model.Inventory{
		Sheets: []model.SheetPreset{
			{ID: "sheet-001", Name: "Existing Plywood", Width: 2440, Height: 1220, Material: "Plywood"},
		},
	}

	imported := model.Inventory{
		Sheets: []model.SheetPreset{
			{ID: "sheet-001", Name: "Duplicate", Width: 1, Height: 1},
			{ID: "sheet-002", Name: "New Glass", Width: 3210, Height: 2250, Material: "Glass"},
		},
	}
	data, err := json.Marshal(imported)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(tmpDir, "import.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	merged, err := ImportInventory(path, existing)
	if err != nil {
		t.Fatalf("ImportInventory failed: %v", err)
	}

	if len(merged.Sheets) != 2 {
		t.Fatalf("expected 2 sheet presets after merge, got %d", len(merged.Sheets))
	}
	if merged.Sheets[0].Name != "Existing Plywood" {
		t.Errorf("expected existing preset to win, got %q", merged.Sheets[0].Name)
	}
	if merged.Sheets[1].Name != "New Glass" {
		t.Errorf("expected 'New Glass' to be appended, got %q", merged.Sheets[1].Name)
	}
}

func TestImportInventoryMissingFile(t *testing.T) {
	existing := model.DefaultInventory()
	merged, err := ImportInventory(filepath.Join(t.TempDir(), "nope.json"), existing)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(merged.Sheets) != len(existing.Sheets) {
		t.Error("expected existing inventory to be returned unchanged")
	}
}
