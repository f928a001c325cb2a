// NameSmith — Brand Asset Name Generator
//
// A cross-platform desktop application that assembles standardized
// asset filenames from a published client/brand/project catalog.
//
// Build:
//   go build -o namesmith ./cmd/namesmith
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o namesmith.exe ./cmd/namesmith
//   GOOS=darwin  GOARCH=amd64 go build -o namesmith-darwin ./cmd/namesmith
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/dverhagen/namesmith/internal/ui"
)

func main() {
	application := app.NewWithID("com.dverhagen.namesmith")
	window := application.NewWindow("NameSmith — Brand Asset Name Generator")

	appUI := ui.NewApp(application, window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(900, 700))
	window.CenterOnScreen()

	appUI.Start()
	window.ShowAndRun()
}
