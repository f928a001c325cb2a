package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dverhagen/namesmith/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.SourceDocID = "doc-123"
	cfg.AllowedDomain = "agency.example"
	cfg.Theme = "dark"

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.SourceDocID != "doc-123" {
		t.Errorf("expected doc-123, got %q", loaded.SourceDocID)
	}
	if loaded.AllowedDomain != "agency.example" {
		t.Errorf("expected agency.example, got %q", loaded.AllowedDomain)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected dark, got %q", loaded.Theme)
	}
}

func TestLoadAppConfig_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	defaults := model.DefaultAppConfig()
	if cfg.SourceBaseURL != defaults.SourceBaseURL {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoadAppConfig_BackfillsEmptyFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	// A config written by an older version that only knew the doc ID.
	if err := os.WriteFile(path, []byte(`{"source_doc_id":"doc-123"}`), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.SourceDocID != "doc-123" {
		t.Errorf("expected doc-123 kept, got %q", cfg.SourceDocID)
	}
	defaults := model.DefaultAppConfig()
	if cfg.SourceBaseURL != defaults.SourceBaseURL {
		t.Errorf("expected base URL backfilled, got %q", cfg.SourceBaseURL)
	}
	if cfg.HierarchySheet != defaults.HierarchySheet || cfg.MediumSheet != defaults.MediumSheet || cfg.MaterialSheet != defaults.MaterialSheet {
		t.Errorf("expected sheet names backfilled, got %q/%q/%q", cfg.HierarchySheet, cfg.MediumSheet, cfg.MaterialSheet)
	}
	if cfg.DefaultUnit != defaults.DefaultUnit {
		t.Errorf("expected default unit backfilled, got %q", cfg.DefaultUnit)
	}
}

func TestLoadAppConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := LoadAppConfig(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSaveAppConfig_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "config.json")

	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file created: %v", err)
	}
}
