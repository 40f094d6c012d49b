package model

import "github.com/google/uuid"

// FramePreset represents a reusable named frame size.
type FramePreset struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`  // mm
	Height int    `json:"height"` // mm
	Depth  int    `json:"depth"`  // mm
}

// NewFramePreset creates a new FramePreset with a generated ID.
func NewFramePreset(name string, width, height, depth int) FramePreset {
	return FramePreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  width,
		Height: height,
		Depth:  depth,
	}
}

// ToFrame converts the preset into a Frame value.
func (fp FramePreset) ToFrame() Frame {
	return NewFrame(fp.Width, fp.Height, fp.Depth)
}

// PresetStore holds a collection of frame presets.
type PresetStore struct {
	Presets []FramePreset `json:"presets"`
}

// NewPresetStore creates an empty preset store.
func NewPresetStore() PresetStore {
	return PresetStore{Presets: []FramePreset{}}
}

// DefaultPresets returns a store populated with common frame sizes.
func DefaultPresets() PresetStore {
	return PresetStore{
		Presets: []FramePreset{
			NewFramePreset("Market Stall 3x2.5m", 3000, 2500, 600),
			NewFramePreset("Booth 2x2m", 2000, 2000, 500),
			NewFramePreset("Shelving Bay 1x2m", 1000, 2000, 400),
			NewFramePreset("Counter 1.5x1m", 1500, 1000, 500),
		},
	}
}

// Add appends a preset to the store.
func (ps *PresetStore) Add(p FramePreset) {
	ps.Presets = append(ps.Presets, p)
}

// Remove removes a preset by ID. Returns true if found and removed.
func (ps *PresetStore) Remove(id string) bool {
	for i, p := range ps.Presets {
		if p.ID == id {
			ps.Presets = append(ps.Presets[:i], ps.Presets[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (ps *PresetStore) FindByID(id string) *FramePreset {
	for i := range ps.Presets {
		if ps.Presets[i].ID == id {
			return &ps.Presets[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (ps *PresetStore) FindByName(name string) *FramePreset {
	for i := range ps.Presets {
		if ps.Presets[i].Name == name {
			return &ps.Presets[i]
		}
	}
	return nil
}

// Names returns a list of preset names for selection prompts.
func (ps *PresetStore) Names() []string {
	names := make([]string, len(ps.Presets))
	for i, p := range ps.Presets {
		names[i] = p.Name
	}
	return names
}
