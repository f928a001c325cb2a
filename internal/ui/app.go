package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dverhagen/namesmith/internal/export"
	"github.com/dverhagen/namesmith/internal/importer"
	"github.com/dverhagen/namesmith/internal/model"
	"github.com/dverhagen/namesmith/internal/sheets"
	"github.com/dverhagen/namesmith/internal/store"
)

// fetchTimeout bounds one load of the three lookup tables.
const fetchTimeout = 30 * time.Second

// App holds all application state and UI references.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	theme   *NameSmithTheme

	config    model.AppConfig
	catalog   *model.Catalog
	selection model.Selection
	presets   model.PresetStore
	nameLog   model.NameLog
	generated model.GeneratedName
	undo      *History

	// loadErr holds the last catalog load failure; nil once a load
	// succeeded. While set, the generator form is replaced by an error
	// notice with a Reload button.
	loadErr error
	loading bool

	startupWarnings []string

	tabs *container.AppTabs

	// UI references for dynamic updates
	generatorArea    *fyne.Container
	generatorForm    fyne.CanvasObject
	partsContainer   *fyne.Container
	presetsContainer *fyne.Container
	historyContainer *fyne.Container

	clientSelect   *widget.Select
	brandSelect    *widget.Select
	projectSelect  *widget.Select
	mediumSelect   *widget.Select
	materialSelect *widget.Select
	widthEntry     *widget.Entry
	heightEntry    *widget.Entry
	unitSelect     *widget.Select

	nameLabel   *widget.Label
	lengthLabel *widget.Label
	copyBtn     *widget.Button
	statusLabel *widget.Label

	// muteEvents suppresses widget callbacks while the form is being
	// programmatically rewritten (preset load, undo, option refresh),
	// so SetSelected/SetText do not re-enter the transition logic.
	muteEvents bool
}

// NewApp creates the application, loading persisted state from the
// user's config directory. Missing files fall back to defaults; corrupt
// files are reported once the window is up, not fatally.
func NewApp(fyneApp fyne.App, window fyne.Window) *App {
	a := &App{
		fyneApp:   fyneApp,
		window:    window,
		theme:     NewNameSmithTheme(),
		selection: model.NewSelection(),
		undo:      NewHistory(),
	}

	var err error
	a.config, err = store.LoadAppConfig(store.DefaultConfigPath())
	if err != nil {
		a.config = model.DefaultAppConfig()
		a.startupWarnings = append(a.startupWarnings,
			fmt.Sprintf("Settings could not be read and were reset: %v", err))
	}
	a.presets, err = store.LoadPresets(store.DefaultPresetsPath())
	if err != nil {
		a.startupWarnings = append(a.startupWarnings,
			fmt.Sprintf("Saved presets could not be read: %v", err))
	}
	a.nameLog, err = store.LoadNameLog(store.DefaultHistoryPath())
	if err != nil {
		a.startupWarnings = append(a.startupWarnings,
			fmt.Sprintf("Name history could not be read: %v", err))
	}

	a.config.ApplyDefaults(&a.selection)
	a.applyTheme()
	return a
}

// applyTheme installs the compact theme with the configured variant.
func (a *App) applyTheme() {
	switch a.config.Theme {
	case "light":
		a.theme.SetVariant(theme.VariantLight)
	case "dark":
		a.theme.SetVariant(theme.VariantDark)
	}
	a.fyneApp.Settings().SetTheme(a.theme)
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Reload Lookup Tables", func() {
			a.reloadCatalog()
		}),
		fyne.NewMenuItem("Import Catalog from Excel...", func() {
			a.importWorkbook()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Labels...", func() {
			a.exportLabels()
		}),
		fyne.NewMenuItem("Export Name Log...", func() {
			a.exportNameLog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export All Data...", func() {
			a.exportAllData()
		}),
		fyne.NewMenuItem("Import All Data...", func() {
			a.importAllData()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undoSelection()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redoSelection()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Form", func() {
			a.clearForm()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About NameSmith",
		"NameSmith — Brand Asset Name Generator\n\n"+
			"Builds standardized asset filenames from the\n"+
			"client/brand/project catalog and attribute lists.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	generatorTab := container.NewTabItem("Generator", a.buildGeneratorPanel())
	presetsTab := container.NewTabItem("Presets", a.buildPresetsPanel())
	historyTab := container.NewTabItem("History", a.buildHistoryPanel())

	a.tabs = container.NewAppTabs(generatorTab, presetsTab, historyTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return a.tabs
}

// Start kicks off the initial catalog load and first-run prompts. Call
// after the window content is set.
func (a *App) Start() {
	for _, warning := range a.startupWarnings {
		dialog.ShowInformation("Warning", warning, a.window)
	}
	a.startupWarnings = nil

	if a.config.AllowedDomain != "" && a.config.AccountEmail == "" {
		a.promptForAccount()
		return
	}
	a.reloadCatalog()
}

// promptForAccount asks for the user's work email on first run. The
// catalog load only starts afterwards so a gated account never fetches.
func (a *App) promptForAccount() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("you@" + a.config.AllowedDomain)
	d := dialog.NewForm("Sign In", "Continue", "Quit",
		[]*widget.FormItem{
			widget.NewFormItem("Work Email", entry),
		},
		func(ok bool) {
			if !ok {
				a.window.Close()
				return
			}
			a.config.AccountEmail = strings.TrimSpace(entry.Text)
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			}
			a.refreshGeneratorArea()
			a.reloadCatalog()
		},
		a.window,
	)
	d.Resize(fyne.NewSize(400, 150))
	d.Show()
}

// ─── Catalog loading ───────────────────────────────────────

// reloadCatalog downloads the three lookup tables and swaps in the new
// catalog. The load is all or nothing: on failure the generator shows a
// single error notice and keeps whatever catalog it already had.
func (a *App) reloadCatalog() {
	if a.loading || !a.config.AccountAllowed() {
		a.refreshGeneratorArea()
		return
	}
	if a.config.SourceDocID == "" {
		a.loadErr = fmt.Errorf("no source document configured — set the document ID in Settings")
		a.refreshGeneratorArea()
		return
	}

	a.loading = true
	a.refreshGeneratorArea()

	client := sheets.New(sheets.Options{
		DocID:   a.config.SourceDocID,
		BaseURL: a.config.SourceBaseURL,
	})
	tables := sheets.Tables{
		Hierarchy: a.config.HierarchySheet,
		Mediums:   a.config.MediumSheet,
		Materials: a.config.MaterialSheet,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		catalog, warnings, err := client.FetchCatalog(ctx, tables)

		fyne.Do(func() {
			a.loading = false
			if err != nil {
				a.loadErr = err
				a.refreshGeneratorArea()
				return
			}
			a.applyCatalog(catalog, warnings)
		})
	}()
}

// importWorkbook loads the catalog from a local Excel workbook instead
// of the hosted document.
func (a *App) importWorkbook() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := importer.ImportWorkbook(reader.URI().Path(),
			a.config.HierarchySheet, a.config.MediumSheet, a.config.MaterialSheet)
		if !result.Ok() {
			dialog.ShowError(fmt.Errorf("%s", strings.Join(result.Errors, "\n")), a.window)
			return
		}
		if result.Catalog.IsEmpty() {
			dialog.ShowError(fmt.Errorf("workbook has no hierarchy data"), a.window)
			return
		}
		a.applyCatalog(result.Catalog, result.Warnings)
	}, a.window)
}

// applyCatalog swaps in a freshly loaded catalog and refreshes every
// dropdown's option set. The current selection is kept; values that no
// longer exist in the catalog degrade to their raw text in the name.
func (a *App) applyCatalog(catalog *model.Catalog, warnings []string) {
	a.catalog = catalog
	a.loadErr = nil
	a.refreshGeneratorArea()
	a.refreshOptions()
	a.recompute()

	if len(warnings) > 0 {
		a.setStatus(fmt.Sprintf("Loaded with %d skipped rows", len(warnings)))
	} else {
		a.setStatus(fmt.Sprintf("Loaded %d clients", len(catalog.Clients)))
	}
}

// ─── Undo / redo ───────────────────────────────────────────

// pushUndo records the current selection before a mutation.
func (a *App) pushUndo(label string) {
	a.undo.Push(MakeSnapshot(a.selection, label))
}

func (a *App) undoSelection() {
	snap, ok := a.undo.Undo(MakeSnapshot(a.selection, "current"))
	if !ok {
		return
	}
	a.selection.Restore(snap.Selection)
	a.applySelectionToForm()
	a.recompute()
}

func (a *App) redoSelection() {
	snap, ok := a.undo.Redo(MakeSnapshot(a.selection, "current"))
	if !ok {
		return
	}
	a.selection.Restore(snap.Selection)
	a.applySelectionToForm()
	a.recompute()
}

func (a *App) clearForm() {
	a.pushUndo("Clear Form")
	a.selection = model.NewSelection()
	a.config.ApplyDefaults(&a.selection)
	a.applySelectionToForm()
	a.recompute()
}

// ─── Exports ───────────────────────────────────────────────

func (a *App) exportLabels() {
	if a.nameLog.Len() == 0 {
		dialog.ShowInformation("Nothing to export", "Copy at least one name first; labels are built from the history.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := export.ExportLabels(path, a.nameLog); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Labels saved to %s", path), a.window)
	}, a.window)
	d.SetFileName("namesmith-labels.pdf")
	d.Show()
}

func (a *App) exportNameLog() {
	if a.nameLog.Len() == 0 {
		dialog.ShowInformation("Nothing to export", "The name history is empty.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := export.ExportNameLog(path, a.nameLog); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Name log saved to %s", path), a.window)
	}, a.window)
	d.SetFileName("namesmith-log.pdf")
	d.Show()
}

// ─── Persistence helpers ───────────────────────────────────

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return store.SaveAppConfig(store.DefaultConfigPath(), a.config)
}

// savePresets persists the preset store, surfacing failures in a dialog.
func (a *App) savePresets() {
	if err := store.SavePresets(store.DefaultPresetsPath(), a.presets); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save presets: %w", err), a.window)
	}
}

// saveNameLog persists the name history, surfacing failures in a dialog.
func (a *App) saveNameLog() {
	if err := store.SaveNameLog(store.DefaultHistoryPath(), a.nameLog); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save history: %w", err), a.window)
	}
}
