package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dverhagen/namesmith/internal/model"
)

// DefaultHistoryPath returns the default path for the name history file.
func DefaultHistoryPath() string {
	return filepath.Join(DefaultConfigDir(), "history.json")
}

// SaveNameLog writes the name history to a JSON file.
func SaveNameLog(path string, log model.NameLog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadNameLog reads the name history from a JSON file. Like the preset
// store, a missing or corrupt file yields an empty log; the parse error
// is returned alongside so it can be surfaced as a warning.
func LoadNameLog(path string) (model.NameLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewNameLog(), nil
		}
		return model.NewNameLog(), err
	}
	var log model.NameLog
	if err := json.Unmarshal(data, &log); err != nil {
		return model.NewNameLog(), err
	}
	if log.Records == nil {
		log.Records = []model.NameRecord{}
	}
	return log, nil
}
