// namegen — headless NameSmith companion for scripts and CI.
//
// Generates one asset filename from flags, a saved preset, or both,
// using the hosted lookup tables, a local Excel workbook, or no catalog
// at all. Prints the name to stdout; everything else goes to stderr.
//
// Examples:
//   namegen -client Acme -brand Nova -project Launch -medium Digital \
//     -material PNG -width 1080 -height 1920 -unit px -parts v2
//   namegen -preset "social-tiles" -parts v3 -copy
//   namegen -offline catalog.xlsx -client Acme -no-fetch=false
//
// Configuration comes from ~/.namesmith/config.json, overridden by
// NAMESMITH_* environment variables (a .env file is honored), overridden
// by flags.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/joho/godotenv"

	"github.com/dverhagen/namesmith/internal/importer"
	"github.com/dverhagen/namesmith/internal/model"
	"github.com/dverhagen/namesmith/internal/sheets"
	"github.com/dverhagen/namesmith/internal/store"
)

func main() {
	_ = godotenv.Load()

	var (
		clientName  = flag.String("client", "", "client name")
		brandName   = flag.String("brand", "", "brand name (cleared when -client changes it)")
		projectName = flag.String("project", "", "project name")
		mediumName  = flag.String("medium", "", "medium name")
		material    = flag.String("material", "", "material name")
		width       = flag.String("width", "", "size width (needs -height)")
		height      = flag.String("height", "", "size height (needs -width)")
		unit        = flag.String("unit", "", "size unit suffix (px, mm, cm, in)")
		parts       = flag.String("parts", "", "comma-separated free-text parts")
		presetName  = flag.String("preset", "", "load this saved preset before applying flags")
		savePreset  = flag.String("save-preset", "", "save the resulting selection under this name")
		listPresets = flag.Bool("list-presets", false, "list saved preset names and exit")
		offline     = flag.String("offline", "", "read the catalog from this Excel workbook instead of fetching")
		noFetch     = flag.Bool("no-fetch", false, "skip the catalog entirely; values become their own abbreviations")
		copyName    = flag.Bool("copy", false, "copy the generated name to the system clipboard")
		docID       = flag.String("doc", "", "source document ID (overrides config and NAMESMITH_DOC_ID)")
		timeout     = flag.Duration("timeout", 30*time.Second, "fetch timeout")
	)
	flag.Parse()

	logger := newLogger()

	cfg, err := store.LoadAppConfig(store.DefaultConfigPath())
	if err != nil {
		logger.Warn("settings could not be read, using defaults", "err", err)
		cfg = model.DefaultAppConfig()
	}
	applyEnv(&cfg)
	if *docID != "" {
		cfg.SourceDocID = *docID
	}

	presets, err := store.LoadPresets(store.DefaultPresetsPath())
	if err != nil {
		logger.Warn("saved presets could not be read", "err", err)
	}

	if *listPresets {
		for _, name := range presets.Names() {
			fmt.Println(name)
		}
		return
	}

	sel := model.NewSelection()
	cfg.ApplyDefaults(&sel)

	if *presetName != "" {
		preset, ok := presets.Get(*presetName)
		if !ok {
			fatalf("unknown preset %q", *presetName)
		}
		preset.ApplyTo(&sel)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Apply overrides in cascade order so an explicit -client clears a
	// preset's brand/project, exactly like changing the dropdown would.
	if set["client"] {
		sel.SetClient(*clientName)
	}
	if set["brand"] {
		sel.SetBrand(*brandName)
	}
	if set["project"] {
		sel.SetProject(*projectName)
	}
	if set["medium"] {
		sel.SetMedium(*mediumName)
	}
	if set["material"] {
		sel.SetMaterial(*material)
	}
	if set["width"] || set["height"] || set["unit"] {
		w, h, u := sel.Width, sel.Height, sel.Unit
		if set["width"] {
			w = *width
		}
		if set["height"] {
			h = *height
		}
		if set["unit"] {
			u = *unit
		}
		sel.SetSize(w, h, u)
	}
	if set["parts"] {
		sel.SetParts(strings.Split(*parts, ","))
	}

	catalog := loadCatalog(logger, cfg, *offline, *noFetch, *timeout)

	name := model.Generate(catalog, sel)

	if *savePreset != "" {
		if err := presets.Put(*savePreset, sel); err != nil {
			fatalf("save preset: %v", err)
		}
		if err := store.SavePresets(store.DefaultPresetsPath(), presets); err != nil {
			fatalf("save preset: %v", err)
		}
		logger.Info("preset saved", "name", *savePreset)
	}

	if name.Value == "" {
		fatalf("nothing to generate: no fields set")
	}

	fmt.Println(name.Value)

	if name.OverLimit {
		fmt.Fprintf(os.Stderr, "name is %d characters, over the %d character limit\n",
			utf8.RuneCountInString(name.Value), model.MaxNameLength)
		os.Exit(1)
	}

	if *copyName {
		if err := clipboard.WriteAll(name.Value); err != nil {
			fmt.Fprintf(os.Stderr, "copy to clipboard failed: %v\n", err)
		}
	}
}

// loadCatalog resolves the catalog source: none, a local workbook, or
// the hosted document. Any load failure is fatal; there is no partial
// catalog.
func loadCatalog(logger *slog.Logger, cfg model.AppConfig, offline string, noFetch bool, timeout time.Duration) *model.Catalog {
	switch {
	case noFetch:
		return nil

	case offline != "":
		result := importer.ImportWorkbook(offline, cfg.HierarchySheet, cfg.MediumSheet, cfg.MaterialSheet)
		if !result.Ok() {
			fatalf("load workbook: %s", strings.Join(result.Errors, "; "))
		}
		for _, warning := range result.Warnings {
			logger.Warn("workbook", "warning", warning)
		}
		return result.Catalog

	default:
		if cfg.SourceDocID == "" {
			fatalf("no source document configured: set -doc, NAMESMITH_DOC_ID, or the app settings (or pass -no-fetch)")
		}
		client := sheets.New(sheets.Options{
			DocID:   cfg.SourceDocID,
			BaseURL: cfg.SourceBaseURL,
			Logger:  logger,
		})
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		catalog, warnings, err := client.FetchCatalog(ctx, sheets.Tables{
			Hierarchy: cfg.HierarchySheet,
			Mediums:   cfg.MediumSheet,
			Materials: cfg.MaterialSheet,
		})
		if err != nil {
			fatalf("%v", err)
		}
		for _, warning := range warnings {
			logger.Warn("catalog", "warning", warning)
		}
		return catalog
	}
}

// applyEnv overlays NAMESMITH_* environment variables onto the config.
func applyEnv(cfg *model.AppConfig) {
	overlay := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	overlay(&cfg.SourceDocID, "NAMESMITH_DOC_ID")
	overlay(&cfg.SourceBaseURL, "NAMESMITH_BASE_URL")
	overlay(&cfg.HierarchySheet, "NAMESMITH_HIERARCHY_SHEET")
	overlay(&cfg.MediumSheet, "NAMESMITH_MEDIUM_SHEET")
	overlay(&cfg.MaterialSheet, "NAMESMITH_MATERIAL_SHEET")
	overlay(&cfg.DefaultUnit, "NAMESMITH_UNIT")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("NAMESMITH_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(os.Getenv("NAMESMITH_LOG"), "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
