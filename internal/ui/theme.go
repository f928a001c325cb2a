// Package ui provides the NameSmith application UI components.
//
// This file defines a custom compact Fyne theme for a dense form layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// NameSmithTheme wraps the default Fyne theme with compact sizing
// overrides so the generator form, preset list, and history table stay
// readable without scrolling on a small window.
type NameSmithTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewNameSmithTheme creates a new NameSmithTheme with the system default variant.
func NewNameSmithTheme() *NameSmithTheme {
	return &NameSmithTheme{
		base:    theme.DefaultTheme(),
		variant: 0, // system default
	}
}

// SetVariant updates the theme variant (light/dark/system).
func (t *NameSmithTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
}

// Color delegates to the base theme with the stored variant.
func (t *NameSmithTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *NameSmithTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *NameSmithTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense layout.
func (t *NameSmithTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
