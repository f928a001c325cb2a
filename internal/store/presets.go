package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dverhagen/namesmith/internal/model"
)

// DefaultPresetsPath returns the default path for the preset store file.
func DefaultPresetsPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SavePresets writes the preset store to a JSON file.
func SavePresets(path string, store model.PresetStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets reads a preset store from a JSON file. A missing file is
// not an error and yields an empty store. A corrupt file also yields an
// empty store, together with the parse error so the caller can warn the
// user instead of refusing to start.
func LoadPresets(path string) (model.PresetStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewPresetStore(), nil
		}
		return model.NewPresetStore(), err
	}
	var store model.PresetStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.NewPresetStore(), err
	}
	if store.Presets == nil {
		store.Presets = map[string]model.Preset{}
	}
	return store, nil
}
