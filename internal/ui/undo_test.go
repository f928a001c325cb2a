package ui

import (
	"testing"

	"github.com/dverhagen/namesmith/internal/model"
)

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	// Push initial state (before the client was selected)
	initial := model.NewSelection()
	h.Push(MakeSnapshot(initial, "initial"))

	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	current := model.NewSelection()
	current.SetClient("Acme")

	restored, ok := h.Undo(MakeSnapshot(current, "current"))
	if !ok {
		t.Fatal("undo should succeed")
	}
	if restored.Selection.Client != "" {
		t.Errorf("expected empty client after undo, got %q", restored.Selection.Client)
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()

	before := model.NewSelection()
	h.Push(MakeSnapshot(before, "Select Client"))

	after := model.NewSelection()
	after.SetClient("Acme")
	after.SetBrand("Nova")

	restored, ok := h.Undo(MakeSnapshot(after, "current"))
	if !ok {
		t.Fatal("undo should succeed")
	}
	if restored.Selection.Client != "" {
		t.Errorf("undo should restore the pre-select state, got client %q", restored.Selection.Client)
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if redone.Selection.Client != "Acme" || redone.Selection.Brand != "Nova" {
		t.Errorf("redo should restore client Acme / brand Nova, got %q / %q",
			redone.Selection.Client, redone.Selection.Brand)
	}
	if !h.CanUndo() {
		t.Error("should be able to undo again after redo")
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(model.NewSelection(), "first"))
	if _, ok := h.Undo(MakeSnapshot(model.NewSelection(), "current")); !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("redo stack should be populated")
	}

	h.Push(MakeSnapshot(model.NewSelection(), "second"))
	if h.CanRedo() {
		t.Error("push should clear the redo stack")
	}
}

func TestMaxDepth(t *testing.T) {
	h := NewHistory()
	h.maxDepth = 3

	for i := 0; i < 5; i++ {
		sel := model.NewSelection()
		sel.SetPart(0, string(rune('a'+i)))
		h.Push(MakeSnapshot(sel, "edit"))
	}

	if len(h.undoStack) != 3 {
		t.Errorf("expected undo stack capped at 3, got %d", len(h.undoStack))
	}
	// The oldest snapshots are dropped first.
	if h.undoStack[0].Selection.Parts[0] != "c" {
		t.Errorf("expected oldest retained part 'c', got %q", h.undoStack[0].Selection.Parts[0])
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(model.NewSelection(), "one"))
	if _, ok := h.Undo(MakeSnapshot(model.NewSelection(), "current")); !ok {
		t.Fatal("undo should succeed")
	}

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("clear should empty both stacks")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	sel := model.NewSelection()
	sel.SetPart(0, "draft")

	snap := MakeSnapshot(sel, "edit")
	sel.SetPart(0, "final")

	if snap.Selection.Parts[0] != "draft" {
		t.Errorf("snapshot should not alias the live parts slice, got %q", snap.Selection.Parts[0])
	}
}
