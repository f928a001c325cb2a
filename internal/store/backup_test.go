package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dverhagen/namesmith/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.SourceDocID = "doc-123"
	cfg.Theme = "dark"

	presets := model.NewPresetStore()
	sel := model.NewSelection()
	sel.SetClient("Acme")
	presets.Put("campaign", sel)

	history := model.NewNameLog()
	history.Append(model.NewNameRecord("ACM_DIG", sel))

	if err := ExportAllData(path, cfg, presets, history); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.SourceDocID != "doc-123" {
		t.Errorf("expected doc-123, got %q", backup.Config.SourceDocID)
	}
	if backup.Config.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", backup.Config.Theme)
	}
	if _, ok := backup.Presets.Get("campaign"); !ok {
		t.Error("expected preset campaign in backup")
	}
	if backup.History.Len() != 1 {
		t.Errorf("expected 1 history record, got %d", backup.History.Len())
	}
}

func TestImportAllData_MissingFile(t *testing.T) {
	_, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportAllData_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")
	if err := os.WriteFile(path, []byte("{definitely not json"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportAllData_MissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for backup without version")
	}
}

func TestImportAllData_NormalizesEmptySections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")
	if err := os.WriteFile(path, []byte(`{"version":"1.0.0","config":{}}`), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Presets.Presets == nil {
		t.Error("expected non-nil preset map")
	}
	if backup.History.Records == nil {
		t.Error("expected non-nil history records")
	}
	if backup.Config.SourceBaseURL == "" {
		t.Error("expected config defaults backfilled")
	}
}
