package model

import "strings"

// SizeUnits lists the units the size fields accept, in display order.
var SizeUnits = []string{"px", "mm", "cm", "in"}

// AppConfig holds application-wide preferences and data-source settings.
type AppConfig struct {
	// Lookup table source (Google Sheets document published as CSV)
	SourceDocID    string `json:"source_doc_id"`
	SourceBaseURL  string `json:"source_base_url"`
	HierarchySheet string `json:"hierarchy_sheet"`
	MediumSheet    string `json:"medium_sheet"`
	MaterialSheet  string `json:"material_sheet"`

	// Identity gate: only accounts on this domain may use the hosted source
	AllowedDomain string `json:"allowed_domain"`
	AccountEmail  string `json:"account_email"`

	// Application preferences
	DefaultUnit string `json:"default_unit"`
	Theme       string `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		SourceDocID:    "",
		SourceBaseURL:  "https://docs.google.com/spreadsheets/d",
		HierarchySheet: "Hierarchy",
		MediumSheet:    "Mediums",
		MaterialSheet:  "Materials",
		AllowedDomain:  "",
		AccountEmail:   "",
		DefaultUnit:    "px",
		Theme:          "system",
	}
}

// ApplyDefaults copies the configured defaults into a fresh selection.
// This is used when clearing the form so it inherits the user's settings.
func (c AppConfig) ApplyDefaults(sel *Selection) {
	sel.Unit = c.DefaultUnit
	if sel.Unit == "" {
		sel.Unit = "px"
	}
}

// AccountAllowed reports whether the configured account may use the hosted
// lookup source. An empty allowed domain disables the gate entirely.
func (c AppConfig) AccountAllowed() bool {
	if c.AllowedDomain == "" {
		return true
	}
	email := strings.ToLower(strings.TrimSpace(c.AccountEmail))
	domain := strings.ToLower(strings.TrimSpace(c.AllowedDomain))
	if email == "" {
		return false
	}
	return strings.HasSuffix(email, "@"+domain)
}
