package ui

import (
	"fmt"
	"time"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dverhagen/namesmith/internal/model"
)

// ─── Generator Panel ───────────────────────────────────────

func (a *App) buildGeneratorPanel() fyne.CanvasObject {
	a.generatorArea = container.NewStack()
	a.refreshGeneratorArea()
	return a.generatorArea
}

// refreshGeneratorArea swaps the generator between its four states:
// gated account, loading, load failure, and the working form.
func (a *App) refreshGeneratorArea() {
	if a.generatorArea == nil {
		return
	}
	a.generatorArea.RemoveAll()

	switch {
	case !a.config.AccountAllowed():
		a.generatorArea.Add(a.buildGateNotice())
	case a.loading:
		a.generatorArea.Add(container.NewCenter(container.NewVBox(
			widget.NewLabelWithStyle("Loading lookup tables...", fyne.TextAlignCenter, fyne.TextStyle{}),
			widget.NewProgressBarInfinite(),
		)))
	case a.loadErr != nil:
		a.generatorArea.Add(a.buildLoadErrorNotice())
	case a.catalog == nil:
		a.generatorArea.Add(container.NewCenter(
			widget.NewLabel("No lookup tables loaded yet."),
		))
	default:
		if a.generatorForm == nil {
			a.generatorForm = a.buildGeneratorForm()
		}
		a.generatorArea.Add(a.generatorForm)
	}
	a.generatorArea.Refresh()
}

// buildGateNotice blocks the generator for accounts outside the
// configured domain. The check is a plain suffix match; there is no
// sign-in flow beyond asking for the address.
func (a *App) buildGateNotice() fyne.CanvasObject {
	msg := fmt.Sprintf("The account %q is not on the allowed domain %q.\n"+
		"Update the account or allowed domain in Settings.",
		a.config.AccountEmail, a.config.AllowedDomain)

	return container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle("Access Restricted", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle(msg, fyne.TextAlignCenter, fyne.TextStyle{}),
		widget.NewButtonWithIcon("Open Settings", theme.SettingsIcon(), func() {
			a.showSettingsDialog()
		}),
	))
}

// buildLoadErrorNotice is the single generic load-failure state: no
// partial generator, just the error and a manual retry.
func (a *App) buildLoadErrorNotice() fyne.CanvasObject {
	return container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle("Could not load the lookup tables", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle(a.loadErr.Error(), fyne.TextAlignCenter, fyne.TextStyle{}),
		widget.NewButtonWithIcon("Reload", theme.ViewRefreshIcon(), func() {
			a.reloadCatalog()
		}),
	))
}

func (a *App) buildGeneratorForm() fyne.CanvasObject {
	a.clientSelect = widget.NewSelect(nil, func(selected string) {
		if a.muteEvents {
			return
		}
		a.pushUndo("Select Client")
		a.selection.SetClient(selected)
		a.refreshDependentOptions()
		a.recompute()
	})
	a.clientSelect.PlaceHolder = "Select a client..."

	a.brandSelect = widget.NewSelect(nil, func(selected string) {
		if a.muteEvents {
			return
		}
		a.pushUndo("Select Brand")
		a.selection.SetBrand(selected)
		a.refreshDependentOptions()
		a.recompute()
	})
	a.brandSelect.PlaceHolder = "Select a brand..."

	a.projectSelect = widget.NewSelect(nil, func(selected string) {
		if a.muteEvents {
			return
		}
		a.pushUndo("Select Project")
		a.selection.SetProject(selected)
		a.recompute()
	})
	a.projectSelect.PlaceHolder = "Select a project..."

	a.mediumSelect = widget.NewSelect(nil, func(selected string) {
		if a.muteEvents {
			return
		}
		a.pushUndo("Select Medium")
		a.selection.SetMedium(selected)
		a.recompute()
	})
	a.mediumSelect.PlaceHolder = "Select a medium..."

	a.materialSelect = widget.NewSelect(nil, func(selected string) {
		if a.muteEvents {
			return
		}
		a.pushUndo("Select Material")
		a.selection.SetMaterial(selected)
		a.recompute()
	})
	a.materialSelect.PlaceHolder = "Select a material..."

	a.widthEntry = widget.NewEntry()
	a.widthEntry.SetPlaceHolder("Width")
	a.widthEntry.OnChanged = func(string) { a.sizeChanged() }

	a.heightEntry = widget.NewEntry()
	a.heightEntry.SetPlaceHolder("Height")
	a.heightEntry.OnChanged = func(string) { a.sizeChanged() }

	a.unitSelect = widget.NewSelect(model.SizeUnits, func(string) { a.sizeChanged() })
	a.unitSelect.Selected = a.selection.Unit

	a.partsContainer = container.NewVBox()
	a.refreshPartsList()

	addPartBtn := widget.NewButtonWithIcon("Add Part", theme.ContentAddIcon(), func() {
		a.pushUndo("Add Part")
		a.selection.AddPart()
		a.refreshPartsList()
		a.recompute()
	})

	selectionCard := widget.NewCard("Selection", "", container.NewGridWithColumns(2,
		widget.NewLabel("Client"), a.clientSelect,
		widget.NewLabel("Brand"), a.brandSelect,
		widget.NewLabel("Project"), a.projectSelect,
		widget.NewLabel("Medium"), a.mediumSelect,
		widget.NewLabel("Material"), a.materialSelect,
	))

	sizeCard := widget.NewCard("Size", "Rendered only when both width and height are set",
		container.NewGridWithColumns(3, a.widthEntry, a.heightEntry, a.unitSelect))

	partsCard := widget.NewCard("Free-Text Parts", "", container.NewVBox(
		a.partsContainer,
		container.NewHBox(layout.NewSpacer(), addPartBtn),
	))

	a.nameLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true, Monospace: true})
	a.nameLabel.Wrapping = fyne.TextWrapBreak
	a.lengthLabel = widget.NewLabel("")
	a.statusLabel = widget.NewLabel("")

	a.copyBtn = widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), func() {
		a.copyName()
	})
	a.copyBtn.Disable()

	resultBar := widget.NewCard("Generated Name", "", container.NewVBox(
		a.nameLabel,
		container.NewHBox(a.lengthLabel, layout.NewSpacer(), a.statusLabel, a.copyBtn),
	))

	a.refreshOptions()
	a.recompute()

	return container.NewBorder(
		nil,
		resultBar,
		nil, nil,
		container.NewVScroll(container.NewVBox(selectionCard, sizeCard, partsCard)),
	)
}

func (a *App) sizeChanged() {
	if a.muteEvents {
		return
	}
	a.selection.SetSize(a.widthEntry.Text, a.heightEntry.Text, a.unitSelect.Selected)
	a.recompute()
}

func (a *App) refreshPartsList() {
	a.partsContainer.RemoveAll()

	for i := range a.selection.Parts {
		entry := widget.NewEntry()
		entry.SetPlaceHolder("e.g. v2, draft, social")
		entry.Text = a.selection.Parts[i]
		entry.OnChanged = func(text string) {
			if a.muteEvents {
				return
			}
			a.selection.SetPart(i, text)
			a.recompute()
		}

		removeBtn := newIconButtonWithTooltip(theme.DeleteIcon(), "Remove this part", func() {
			a.pushUndo("Remove Part")
			a.selection.RemovePart(i)
			a.refreshPartsList()
			a.recompute()
		})

		a.partsContainer.Add(container.NewBorder(nil, nil, nil, removeBtn, entry))
	}
	a.partsContainer.Refresh()
}

// refreshOptions rebuilds every dropdown's option set from the catalog.
func (a *App) refreshOptions() {
	if a.clientSelect == nil {
		return
	}
	a.clientSelect.Options = a.catalog.ClientNames()
	a.clientSelect.Refresh()
	a.mediumSelect.Options = model.OptionNames(a.catalog.Mediums)
	a.mediumSelect.Refresh()
	a.materialSelect.Options = model.OptionNames(a.catalog.Materials)
	a.materialSelect.Refresh()
	a.refreshDependentOptions()
}

// refreshDependentOptions recomputes the brand and project option sets
// for the current client/brand path and syncs the dependent dropdowns
// with the (possibly just-cleared) selection.
func (a *App) refreshDependentOptions() {
	mute := a.muteEvents
	a.muteEvents = true

	a.brandSelect.Options = a.catalog.BrandNames(a.selection.Client)
	a.brandSelect.Selected = a.selection.Brand
	a.brandSelect.Refresh()

	a.projectSelect.Options = a.catalog.ProjectNames(a.selection.Client, a.selection.Brand)
	a.projectSelect.Selected = a.selection.Project
	a.projectSelect.Refresh()

	a.muteEvents = mute
}

// applySelectionToForm rewrites every widget from the selection state
// without firing change callbacks. Used after preset load, undo/redo,
// and Clear Form.
func (a *App) applySelectionToForm() {
	if a.clientSelect == nil {
		return
	}
	a.muteEvents = true

	a.clientSelect.Selected = a.selection.Client
	a.clientSelect.Refresh()
	a.mediumSelect.Selected = a.selection.Medium
	a.mediumSelect.Refresh()
	a.materialSelect.Selected = a.selection.Material
	a.materialSelect.Refresh()
	a.widthEntry.SetText(a.selection.Width)
	a.heightEntry.SetText(a.selection.Height)
	a.unitSelect.Selected = a.selection.Unit
	a.unitSelect.Refresh()
	a.refreshPartsList()
	a.refreshDependentOptions()

	a.muteEvents = false
}

// recompute regenerates the name from the current state. Every mutation
// funnels through here; there is no incremental update path.
func (a *App) recompute() {
	a.generated = model.Generate(a.catalog, a.selection)
	if a.nameLabel == nil {
		return
	}

	if a.generated.Value == "" {
		a.nameLabel.SetText("—")
	} else {
		a.nameLabel.SetText(a.generated.Value)
	}

	length := utf8.RuneCountInString(a.generated.Value)
	if a.generated.OverLimit {
		a.lengthLabel.SetText(fmt.Sprintf("%d / %d characters — too long to copy",
			length, model.MaxNameLength))
	} else {
		a.lengthLabel.SetText(fmt.Sprintf("%d / %d characters",
			length, model.MaxNameLength))
	}

	if a.generated.Value == "" || a.generated.OverLimit {
		a.copyBtn.Disable()
	} else {
		a.copyBtn.Enable()
	}
}

// copyName puts the generated name on the system clipboard and records
// it in the history log.
func (a *App) copyName() {
	if a.generated.Value == "" || a.generated.OverLimit {
		return
	}

	a.window.Clipboard().SetContent(a.generated.Value)
	a.nameLog.Append(model.NewNameRecord(a.generated.Value, a.selection))
	a.saveNameLog()
	a.refreshHistoryList()
	a.setStatus("Copied to clipboard")
}

// setStatus shows a transient status message next to the copy button.
func (a *App) setStatus(msg string) {
	if a.statusLabel == nil {
		return
	}
	a.statusLabel.SetText(msg)
	time.AfterFunc(4*time.Second, func() {
		fyne.Do(func() {
			if a.statusLabel.Text == msg {
				a.statusLabel.SetText("")
			}
		})
	})
}
