package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dverhagen/namesmith/internal/model"
)

// ─── History Panel ─────────────────────────────────────────

func (a *App) buildHistoryPanel() fyne.CanvasObject {
	a.historyContainer = container.NewVBox()
	a.refreshHistoryList()

	labelsBtn := widget.NewButtonWithIcon("Export Labels", theme.DocumentPrintIcon(), func() {
		a.exportLabels()
	})
	reportBtn := widget.NewButtonWithIcon("Export Report", theme.DocumentIcon(), func() {
		a.exportNameLog()
	})
	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		a.clearHistory()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Generated Names", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			labelsBtn,
			reportBtn,
			clearBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.historyContainer),
	)
}

func (a *App) refreshHistoryList() {
	if a.historyContainer == nil {
		return
	}
	a.historyContainer.RemoveAll()

	if a.nameLog.Len() == 0 {
		a.historyContainer.Add(widget.NewLabel("No names generated yet. Every copied name is recorded here."))
		a.historyContainer.Refresh()
		return
	}

	// Newest first.
	for i := a.nameLog.Len() - 1; i >= 0; i-- {
		rec := a.nameLog.Records[i]

		copyBtn := newIconButtonWithTooltip(theme.ContentCopyIcon(), "Copy this name again", func() {
			a.window.Clipboard().SetContent(rec.Name)
			a.setStatus("Copied to clipboard")
		})
		removeBtn := newIconButtonWithTooltip(theme.DeleteIcon(), "Remove from history", func() {
			if a.nameLog.Remove(rec.ID) {
				a.saveNameLog()
				a.refreshHistoryList()
			}
		})

		row := container.NewBorder(nil, nil, nil,
			container.NewHBox(copyBtn, removeBtn),
			container.NewVBox(
				widget.NewLabelWithStyle(rec.Name, fyne.TextAlignLeading, fyne.TextStyle{Monospace: true}),
				widget.NewLabel(historySummary(rec)),
			),
		)
		a.historyContainer.Add(row)
		a.historyContainer.Add(widget.NewSeparator())
	}
	a.historyContainer.Refresh()
}

// historySummary renders the selection context of one record.
func historySummary(rec model.NameRecord) string {
	path := rec.Client
	if rec.Brand != "" {
		path += " / " + rec.Brand
	}
	if rec.Project != "" {
		path += " / " + rec.Project
	}
	if path == "" {
		path = "(free text)"
	}
	return fmt.Sprintf("%s — %s", path, datePart(rec.CreatedAt))
}

func (a *App) clearHistory() {
	if a.nameLog.Len() == 0 {
		return
	}
	dialog.ShowConfirm("Clear History",
		"Remove all recorded names? Exported labels and reports are not affected.",
		func(ok bool) {
			if !ok {
				return
			}
			a.nameLog.Clear()
			a.saveNameLog()
			a.refreshHistoryList()
		},
		a.window,
	)
}
