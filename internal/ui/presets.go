package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dverhagen/namesmith/internal/model"
)

// ─── Presets Panel ─────────────────────────────────────────

func (a *App) buildPresetsPanel() fyne.CanvasObject {
	a.presetsContainer = container.NewVBox()
	a.refreshPresetsList()

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Preset name")

	saveBtn := widget.NewButtonWithIcon("Save Current", theme.DocumentSaveIcon(), func() {
		a.savePreset(nameEntry.Text)
		nameEntry.SetText("")
	})

	return container.NewBorder(
		container.NewBorder(nil, nil,
			widget.NewLabelWithStyle("Saved Presets", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			saveBtn,
			nameEntry,
		),
		nil, nil, nil,
		container.NewVScroll(a.presetsContainer),
	)
}

func (a *App) refreshPresetsList() {
	if a.presetsContainer == nil {
		return
	}
	a.presetsContainer.RemoveAll()

	names := a.presets.Names()
	if len(names) == 0 {
		a.presetsContainer.Add(widget.NewLabel("No presets saved yet. Fill in the generator, then save it here under a name."))
		a.presetsContainer.Refresh()
		return
	}

	for _, name := range names {
		preset, _ := a.presets.Get(name)
		summary := presetSummary(preset)

		loadBtn := newIconButtonWithTooltip(theme.MediaPlayIcon(), "Load this preset into the generator", func() {
			a.loadPreset(preset.Name)
		})
		deleteBtn := newIconButtonWithTooltip(theme.DeleteIcon(), "Delete this preset", func() {
			a.deletePreset(preset.Name)
		})

		row := container.NewBorder(nil, nil, nil,
			container.NewHBox(loadBtn, deleteBtn),
			container.NewVBox(
				widget.NewLabelWithStyle(preset.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				widget.NewLabel(summary),
			),
		)
		a.presetsContainer.Add(row)
		a.presetsContainer.Add(widget.NewSeparator())
	}
	a.presetsContainer.Refresh()
}

// presetSummary renders one line describing what the preset restores.
func presetSummary(p model.Preset) string {
	sel := p.Selection
	path := sel.Client
	if sel.Brand != "" {
		path += " / " + sel.Brand
	}
	if sel.Project != "" {
		path += " / " + sel.Project
	}
	if path == "" {
		path = "(empty selection)"
	}
	return fmt.Sprintf("%s — updated %s", path, datePart(p.UpdatedAt))
}

// savePreset stores the current selection under the given name,
// overwriting an existing preset of the same name. An empty name is
// rejected and nothing changes.
func (a *App) savePreset(name string) {
	if err := a.presets.Put(name, a.selection); err != nil {
		if errors.Is(err, model.ErrEmptyPresetName) {
			dialog.ShowInformation("Name required", "Enter a name for the preset before saving.", a.window)
			return
		}
		dialog.ShowError(err, a.window)
		return
	}
	a.savePresets()
	a.refreshPresetsList()
}

// loadPreset restores a saved snapshot into the generator. The restore
// replays client, brand, then project in order so the cascade clearing
// cannot wipe the restored dependent fields.
func (a *App) loadPreset(name string) {
	preset, ok := a.presets.Get(name)
	if !ok {
		return
	}
	a.pushUndo("Load Preset")
	preset.ApplyTo(&a.selection)
	a.applySelectionToForm()
	a.recompute()
	a.tabs.SelectIndex(0)
}

func (a *App) deletePreset(name string) {
	dialog.ShowConfirm("Delete Preset",
		fmt.Sprintf("Delete the preset %q?", name),
		func(ok bool) {
			if !ok {
				return
			}
			if a.presets.Remove(name) {
				a.savePresets()
				a.refreshPresetsList()
			}
		},
		a.window,
	)
}

// datePart trims an RFC3339 timestamp to its date component.
func datePart(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
