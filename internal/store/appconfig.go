// Package store persists application state as JSON files under the
// user's config directory: settings, saved presets, and the history of
// generated names.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dverhagen/namesmith/internal/model"
)

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.namesmith/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".namesmith")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// Structural fields left empty by older config files are backfilled with
// their defaults so the app never runs with a blank source URL or sheet
// names.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	return normalizeConfig(config), nil
}

func normalizeConfig(config model.AppConfig) model.AppConfig {
	defaults := model.DefaultAppConfig()
	if config.SourceBaseURL == "" {
		config.SourceBaseURL = defaults.SourceBaseURL
	}
	if config.HierarchySheet == "" {
		config.HierarchySheet = defaults.HierarchySheet
	}
	if config.MediumSheet == "" {
		config.MediumSheet = defaults.MediumSheet
	}
	if config.MaterialSheet == "" {
		config.MaterialSheet = defaults.MaterialSheet
	}
	if config.DefaultUnit == "" {
		config.DefaultUnit = defaults.DefaultUnit
	}
	if config.Theme == "" {
		config.Theme = defaults.Theme
	}
	return config
}
