package model

import (
	"errors"
	"testing"
)

func TestPresetStorePutAndGet(t *testing.T) {
	store := NewPresetStore()
	sel := NewSelection()
	sel.SetClient("Acme")
	sel.SetBrand("Nova")

	if err := store.Put("campaign", sel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := store.Get("campaign")
	if !ok {
		t.Fatal("expected preset to exist")
	}
	if p.Selection.Client != "Acme" || p.Selection.Brand != "Nova" {
		t.Errorf("unexpected snapshot %+v", p.Selection)
	}
	if p.ID == "" || p.CreatedAt == "" {
		t.Error("expected ID and timestamp to be set")
	}
}

func TestPresetStoreRejectsEmptyName(t *testing.T) {
	store := NewPresetStore()
	for _, name := range []string{"", "   ", "\t"} {
		if err := store.Put(name, NewSelection()); !errors.Is(err, ErrEmptyPresetName) {
			t.Errorf("Put(%q): expected ErrEmptyPresetName, got %v", name, err)
		}
	}
	if store.Len() != 0 {
		t.Errorf("rejected saves must not change the store, have %d presets", store.Len())
	}
}

func TestPresetStoreTrimsName(t *testing.T) {
	store := NewPresetStore()
	if err := store.Put("  campaign  ", NewSelection()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.Get("campaign"); !ok {
		t.Error("expected trimmed name as key")
	}
}

func TestPresetStoreOverwriteKeepsIdentity(t *testing.T) {
	store := NewPresetStore()
	first := NewSelection()
	first.SetClient("Acme")
	if err := store.Put("campaign", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	original, _ := store.Get("campaign")

	second := NewSelection()
	second.SetClient("Globex")
	if err := store.Put("campaign", second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, _ := store.Get("campaign")
	if updated.ID != original.ID {
		t.Errorf("overwrite changed the ID: %q -> %q", original.ID, updated.ID)
	}
	if updated.CreatedAt != original.CreatedAt {
		t.Errorf("overwrite changed CreatedAt: %q -> %q", original.CreatedAt, updated.CreatedAt)
	}
	if updated.Selection.Client != "Globex" {
		t.Errorf("overwrite kept the old snapshot: %+v", updated.Selection)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 preset after overwrite, got %d", store.Len())
	}
}

func TestPresetStoreSnapshotIsDetached(t *testing.T) {
	store := NewPresetStore()
	sel := NewSelection()
	sel.SetPart(0, "v1")
	if err := store.Put("campaign", sel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sel.SetPart(0, "v2")
	p, _ := store.Get("campaign")
	if p.Selection.Parts[0] != "v1" {
		t.Errorf("live edits leaked into the saved snapshot: %v", p.Selection.Parts)
	}
}

func TestPresetStoreRemove(t *testing.T) {
	store := NewPresetStore()
	store.Put("campaign", NewSelection())

	if !store.Remove("campaign") {
		t.Error("expected removal of existing preset to succeed")
	}
	if store.Remove("campaign") {
		t.Error("expected second removal to report missing")
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d presets", store.Len())
	}
}

func TestPresetStoreNamesSorted(t *testing.T) {
	store := NewPresetStore()
	store.Put("zeta", NewSelection())
	store.Put("alpha", NewSelection())
	store.Put("mid", NewSelection())

	names := store.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
			break
		}
	}
}

func TestPresetApplyToRestoresHierarchy(t *testing.T) {
	snap := NewSelection()
	snap.SetClient("Acme")
	snap.SetBrand("Nova")
	snap.SetProject("Launch")
	p := NewPreset("campaign", snap)

	live := NewSelection()
	live.SetClient("Globex")
	p.ApplyTo(&live)

	if live.Client != "Acme" || live.Brand != "Nova" || live.Project != "Launch" {
		t.Errorf("preset did not restore hierarchy: %q/%q/%q", live.Client, live.Brand, live.Project)
	}
}
