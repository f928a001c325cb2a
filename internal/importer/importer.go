// Package importer parses the published lookup tables into a catalog.
// The same row rules apply to CSV payloads fetched from the hosted
// spreadsheet and to Excel workbooks opened from disk: the first row is
// a header, empty rows and #-comment rows are skipped, and malformed
// rows are reported as warnings instead of failing the import.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/dverhagen/namesmith/internal/model"
)

// Column layout of the hierarchy table.
const (
	colClientName = iota
	colClientAbbr
	colBrandName
	colBrandAbbr
	colProjectName
	colProjectAbbr
)

// Result holds the outcome of an import operation. Errors are file-level
// problems that make the result unusable; Warnings are row-level problems
// in an otherwise usable import.
type Result struct {
	Catalog  *model.Catalog
	Errors   []string
	Warnings []string
}

// Ok reports whether the import produced a usable catalog.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// BuildCatalog assembles a catalog from the three CSV payloads as served
// by the published spreadsheet: the client/brand/project hierarchy plus
// the medium and material lists.
func BuildCatalog(hierarchy, mediums, materials []byte) Result {
	result := Result{Catalog: model.NewCatalog()}

	rows, err := readRows(hierarchy)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read hierarchy table: %v", err))
		return result
	}
	result.Warnings = append(result.Warnings, mergeHierarchyRows(result.Catalog, rows, "Hierarchy line")...)

	rows, err = readRows(mediums)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read medium table: %v", err))
		return result
	}
	var warns []string
	result.Catalog.Mediums, warns = mergeOptionRows(result.Catalog.Mediums, rows, "Mediums line")
	result.Warnings = append(result.Warnings, warns...)

	rows, err = readRows(materials)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read material table: %v", err))
		return result
	}
	result.Catalog.Materials, warns = mergeOptionRows(result.Catalog.Materials, rows, "Materials line")
	result.Warnings = append(result.Warnings, warns...)

	return result
}

// readRows parses one CSV payload. Variable field counts and stray quotes
// are tolerated; the spreadsheet exporter quotes cells inconsistently.
func readRows(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// numberedRow pairs a data row with its original 1-based line number so
// warnings point at the line the user sees in the source table.
type numberedRow struct {
	line  int
	cells []string
}

// dataRows strips the header row, empty rows, and comment rows.
func dataRows(rows [][]string) []numberedRow {
	out := make([]numberedRow, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			// The first row is always the column header.
			continue
		}
		if isEmptyRow(row) || isCommentRow(row) {
			continue
		}
		out = append(out, numberedRow{line: i + 1, cells: row})
	}
	return out
}

// mergeHierarchyRows folds hierarchy rows into the catalog and returns
// warnings for rows that could not be attached.
func mergeHierarchyRows(cat *model.Catalog, rows [][]string, rowPrefix string) []string {
	var warnings []string
	for _, r := range dataRows(rows) {
		clientName := getCell(r.cells, colClientName)
		if clientName == "" {
			warnings = append(warnings, fmt.Sprintf("%s %d: row has no client name, skipped", rowPrefix, r.line))
			continue
		}

		brandName := getCell(r.cells, colBrandName)
		projectName := getCell(r.cells, colProjectName)
		if brandName == "" && projectName != "" && !strings.EqualFold(projectName, "N/A") {
			warnings = append(warnings, fmt.Sprintf("%s %d: project %q has no brand, ignored", rowPrefix, r.line, projectName))
		}

		cat.AddHierarchyEntry(
			clientName,
			getCell(r.cells, colClientAbbr),
			brandName,
			getCell(r.cells, colBrandAbbr),
			projectName,
			getCell(r.cells, colProjectAbbr),
		)
	}
	return warnings
}

// mergeOptionRows folds a flat name/abbreviation table into a lookup list.
func mergeOptionRows(list []model.Option, rows [][]string, rowPrefix string) ([]model.Option, []string) {
	var warnings []string
	for _, r := range dataRows(rows) {
		name := getCell(r.cells, 0)
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("%s %d: row has no name, skipped", rowPrefix, r.line))
			continue
		}
		list = model.AddOption(list, name, getCell(r.cells, 1))
	}
	return list, warnings
}

// getCell safely retrieves a trimmed cell value from a row by column index.
// Returns empty string if the index is out of range.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// isCommentRow reports whether the row is a comment: its first cell
// starts with "#", possibly behind a stray quote from sloppy exports.
func isCommentRow(row []string) bool {
	first := strings.TrimPrefix(getCell(row, 0), `"`)
	return strings.HasPrefix(first, "#")
}
