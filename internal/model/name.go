package model

import (
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the upper bound for a generated filename, counted in
// characters. Names over the limit are still shown but the copy action
// is disabled.
const MaxNameLength = 220

// nameDelimiter joins the formatted components of a generated name.
const nameDelimiter = "_"

// GeneratedName is the derived output of the generator. It is never stored:
// it is recomputed from the selection on every change.
type GeneratedName struct {
	Value     string `json:"value"`
	OverLimit bool   `json:"over_limit"`
}

// Generate assembles the filename for a selection against a catalog.
// Component order: client, brand, project, medium, material, size token,
// free-text parts. Components that are empty or equal "N/A" in any case
// are dropped. The function is pure; a nil catalog degrades to using the
// raw field values as their own abbreviations.
func Generate(cat *Catalog, sel Selection) GeneratedName {
	components := make([]string, 0, 6+len(sel.Parts))

	add := func(c string) {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" || c == "N/A" {
			return
		}
		components = append(components, c)
	}

	cl := cat.Client(sel.Client)
	br := cl.Brand(sel.Brand)
	add(resolveClient(cl, sel.Client))
	add(resolveBrand(br, sel.Brand))
	add(resolveProject(br, sel.Project))
	add(resolveOption(cat, sel.Medium, mediums))
	add(resolveOption(cat, sel.Material, materials))
	add(SizeToken(sel.Width, sel.Height, sel.Unit))
	for _, p := range sel.Parts {
		add(FormatPart(p))
	}

	value := strings.Join(components, nameDelimiter)
	return GeneratedName{
		Value:     value,
		OverLimit: utf8.RuneCountInString(value) > MaxNameLength,
	}
}

// SizeToken renders the dimension component, e.g. "1080x1920px". It is
// empty unless both width and height are set; the caller upper-cases it.
func SizeToken(width, height, unit string) string {
	width = strings.TrimSpace(width)
	height = strings.TrimSpace(height)
	if width == "" || height == "" {
		return ""
	}
	return width + "x" + height + strings.TrimSpace(unit)
}

// FormatPart normalizes one free-text part: trimmed, internal whitespace
// runs collapsed to a single hyphen. A part that is all whitespace
// formats to the empty string and is dropped by the assembler.
func FormatPart(part string) string {
	return strings.Join(strings.Fields(part), "-")
}

type optionKind int

const (
	mediums optionKind = iota
	materials
)

// resolveClient maps the selected client to its abbreviation, falling back
// to the raw value when the catalog has no such client.
func resolveClient(cl *Client, raw string) string {
	if cl == nil {
		return raw
	}
	return abbrOrName(cl.Abbr, cl.Name)
}

func resolveBrand(br *Brand, raw string) string {
	if br == nil {
		return raw
	}
	return abbrOrName(br.Abbr, br.Name)
}

// resolveProject looks the project up under the selected brand only; a
// stale project (brand changed underneath it) degrades to the raw value.
func resolveProject(br *Brand, raw string) string {
	if p := br.Project(raw); p != nil {
		return abbrOrName(p.Abbr, p.Name)
	}
	return raw
}

func resolveOption(cat *Catalog, raw string, kind optionKind) string {
	if cat == nil {
		return raw
	}
	list := cat.Mediums
	if kind == materials {
		list = cat.Materials
	}
	if abbr, ok := AbbrFor(list, raw); ok {
		return abbr
	}
	return raw
}
