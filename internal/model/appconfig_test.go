package model

import "testing"

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()
	if cfg.SourceBaseURL != "https://docs.google.com/spreadsheets/d" {
		t.Errorf("unexpected base URL %q", cfg.SourceBaseURL)
	}
	if cfg.HierarchySheet != "Hierarchy" || cfg.MediumSheet != "Mediums" || cfg.MaterialSheet != "Materials" {
		t.Errorf("unexpected sheet names %q/%q/%q", cfg.HierarchySheet, cfg.MediumSheet, cfg.MaterialSheet)
	}
	if cfg.DefaultUnit != "px" {
		t.Errorf("expected default unit px, got %q", cfg.DefaultUnit)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %q", cfg.Theme)
	}
}

func TestAccountAllowed(t *testing.T) {
	cases := []struct {
		domain string
		email  string
		want   bool
	}{
		{"", "", true}, // gate disabled
		{"", "anyone@elsewhere.com", true},
		{"agency.example", "dana@agency.example", true},
		{"agency.example", "DANA@AGENCY.EXAMPLE", true},
		{"Agency.Example", "dana@agency.example", true},
		{"agency.example", " dana@agency.example ", true},
		{"agency.example", "dana@elsewhere.com", false},
		{"agency.example", "", false},
		{"agency.example", "dana@subagency.example", false},
	}
	for _, c := range cases {
		cfg := AppConfig{AllowedDomain: c.domain, AccountEmail: c.email}
		if got := cfg.AccountAllowed(); got != c.want {
			t.Errorf("AccountAllowed(domain=%q, email=%q) = %v, want %v", c.domain, c.email, got, c.want)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultUnit = "mm"
	sel := NewSelection()
	cfg.ApplyDefaults(&sel)
	if sel.Unit != "mm" {
		t.Errorf("expected configured unit mm, got %q", sel.Unit)
	}

	empty := AppConfig{}
	sel2 := NewSelection()
	empty.ApplyDefaults(&sel2)
	if sel2.Unit != "px" {
		t.Errorf("expected px fallback, got %q", sel2.Unit)
	}
}
