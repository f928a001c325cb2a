package model

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyPresetName is returned when saving a preset without a usable name.
var ErrEmptyPresetName = errors.New("preset name is empty")

// Preset is a named, persisted snapshot of the full selection state.
type Preset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	Selection Selection `json:"selection"`
}

// NewPreset creates a preset from a copy of the given selection.
func NewPreset(name string, sel Selection) Preset {
	now := time.Now().UTC().Format(time.RFC3339)
	return Preset{
		ID:        uuid.New().String()[:8],
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Selection: sel.Clone(),
	}
}

// ApplyTo restores the preset's snapshot into a live selection. Restore
// replays the client→brand→project cascade in parent-first order, so the
// loaded brand and project are not wiped by the cascade clearing.
func (p Preset) ApplyTo(sel *Selection) {
	sel.Restore(p.Selection)
}

// PresetStore holds all saved presets keyed by name.
type PresetStore struct {
	Presets map[string]Preset `json:"presets"`
}

// NewPresetStore creates an empty preset store.
func NewPresetStore() PresetStore {
	return PresetStore{
		Presets: map[string]Preset{},
	}
}

// Put saves the selection under the given name, overwriting any existing
// preset of that name while keeping its ID and creation time. Saving with
// an empty or whitespace-only name fails with ErrEmptyPresetName and
// leaves the store unchanged.
func (ps *PresetStore) Put(name string, sel Selection) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyPresetName
	}
	if ps.Presets == nil {
		ps.Presets = map[string]Preset{}
	}

	if existing, ok := ps.Presets[name]; ok {
		existing.Selection = sel.Clone()
		existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		ps.Presets[name] = existing
		return nil
	}
	ps.Presets[name] = NewPreset(name, sel)
	return nil
}

// Get returns the preset with the given name.
func (ps *PresetStore) Get(name string) (Preset, bool) {
	p, ok := ps.Presets[name]
	return p, ok
}

// Remove deletes the preset with the given name. Returns true if it existed.
func (ps *PresetStore) Remove(name string) bool {
	if _, ok := ps.Presets[name]; !ok {
		return false
	}
	delete(ps.Presets, name)
	return true
}

// Names returns all preset names sorted for display.
func (ps *PresetStore) Names() []string {
	names := make([]string, 0, len(ps.Presets))
	for name := range ps.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of saved presets.
func (ps *PresetStore) Len() int {
	return len(ps.Presets)
}
