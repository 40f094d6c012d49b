package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/framewright/framebom/internal/model"
)

func TestSaveAndLoadPresets(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "presets.json")

	store := model.NewPresetStore()
	store.Add(model.NewFramePreset("Test Booth", 2000, 2000, 500))

	if err := SavePresets(path, store); err != nil {
		t.Fatalf("SavePresets failed: %v", err)
	}

	loaded, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if len(loaded.Presets) != 1 {
		t.Fatalf("expected 1 preset, got %d", len(loaded.Presets))
	}
	p := loaded.Presets[0]
	if p.Name != "Test Booth" || p.Width != 2000 || p.Height != 2000 || p.Depth != 500 {
		t.Errorf("round-trip lost preset data: %+v", p)
	}
}

func TestLoadPresetsMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	store, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if len(store.Presets) == 0 {
		t.Error("expected built-in defaults for missing file")
	}
}

func TestLoadPresetsEmptyStore(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "empty.json")
	if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	store, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if store.Presets == nil {
		t.Error("Presets slice must never be nil after load")
	}
}
