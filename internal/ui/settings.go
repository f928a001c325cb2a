package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dverhagen/namesmith/internal/model"
	"github.com/dverhagen/namesmith/internal/store"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	// Helper to create a string entry bound to a pointer
	textEntry := func(val *string, placeholder string) *widget.Entry {
		e := widget.NewEntry()
		e.SetPlaceHolder(placeholder)
		e.SetText(*val)
		e.OnChanged = func(text string) {
			*val = text
		}
		return e
	}

	unitSelect := widget.NewSelect(model.SizeUnits, func(selected string) {
		cfg.DefaultUnit = selected
	})
	unitSelect.SetSelected(cfg.DefaultUnit)

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Source Document ID", textEntry(&cfg.SourceDocID, "published spreadsheet ID")),
		widget.NewFormItem("Source Base URL", textEntry(&cfg.SourceBaseURL, "")),
		widget.NewFormItem("Hierarchy Sheet", textEntry(&cfg.HierarchySheet, "")),
		widget.NewFormItem("Medium Sheet", textEntry(&cfg.MediumSheet, "")),
		widget.NewFormItem("Material Sheet", textEntry(&cfg.MaterialSheet, "")),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Allowed Domain", textEntry(&cfg.AllowedDomain, "example.com (empty = no gate)")),
		widget.NewFormItem("Account Email", textEntry(&cfg.AccountEmail, "you@example.com")),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Size Unit", unitSelect),
		widget.NewFormItem("Theme", themeSelect),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			sourceChanged := cfg.SourceDocID != a.config.SourceDocID ||
				cfg.SourceBaseURL != a.config.SourceBaseURL ||
				cfg.HierarchySheet != a.config.HierarchySheet ||
				cfg.MediumSheet != a.config.MediumSheet ||
				cfg.MaterialSheet != a.config.MaterialSheet

			a.config = cfg
			a.applyTheme()
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
				return
			}

			a.refreshGeneratorArea()
			if sourceChanged || a.catalog == nil {
				a.reloadCatalog()
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(520, 480))
	d.Show()
}

// exportAllData saves settings, presets, and history into one backup file.
func (a *App) exportAllData() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := store.ExportAllData(path, a.config, a.presets, a.nameLog); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("All application data exported to:\n%s", path), a.window)
	}, a.window)
	d.SetFileName("namesmith-backup.json")
	d.Show()
}

// importAllData replaces settings, presets, and history from a backup.
func (a *App) importAllData() {
	dialog.ShowConfirm("Import Data",
		"Importing data will replace your current settings, presets, and history.\n\nAre you sure you want to continue?",
		func(ok bool) {
			if !ok {
				return
			}
			d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
				if err != nil || reader == nil {
					return
				}
				defer reader.Close()
				backup, err := store.ImportAllData(reader.URI().Path())
				if err != nil {
					dialog.ShowError(err, a.window)
					return
				}

				a.config = backup.Config
				a.presets = backup.Presets
				a.nameLog = backup.History
				a.applyTheme()

				if err := a.saveConfig(); err != nil {
					dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
					return
				}
				a.savePresets()
				a.saveNameLog()

				a.refreshPresetsList()
				a.refreshHistoryList()
				a.refreshGeneratorArea()
				a.reloadCatalog()

				dialog.ShowInformation("Import Complete",
					fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
			}, a.window)
			d.Show()
		},
		a.window,
	)
}
