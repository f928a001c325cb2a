package importer

import (
	"fmt"
	"strings"

	"github.com/dverhagen/namesmith/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportWorkbook reads the three lookup tables from an Excel workbook on
// disk, for working offline or from a local copy of the source document.
// Sheets are matched by name case-insensitively; when a configured name
// is absent the sheet at its conventional position is used instead
// (hierarchy first, mediums second, materials third).
func ImportWorkbook(path, hierarchySheet, mediumSheet, materialSheet string) Result {
	result := Result{Catalog: model.NewCatalog()}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open workbook: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Workbook has no sheets")
		return result
	}

	hier := pickSheet(sheets, hierarchySheet, 0)
	rows, err := f.GetRows(hier)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read sheet %q: %v", hier, err))
		return result
	}
	result.Warnings = append(result.Warnings, mergeHierarchyRows(result.Catalog, rows, hier+" row")...)

	// The option sheets are optional; a missing one leaves its list empty.
	options := []struct {
		name string
		pos  int
		dst  *[]model.Option
	}{
		{mediumSheet, 1, &result.Catalog.Mediums},
		{materialSheet, 2, &result.Catalog.Materials},
	}
	for _, src := range options {
		sheet := pickSheet(sheets, src.name, src.pos)
		if sheet == "" || sheet == hier {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Workbook has no sheet for %q, list left empty", src.name))
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Cannot read sheet %q: %v", sheet, err))
			return result
		}
		var warns []string
		*src.dst, warns = mergeOptionRows(*src.dst, rows, sheet+" row")
		result.Warnings = append(result.Warnings, warns...)
	}

	return result
}

// pickSheet resolves a sheet by case-insensitive name, falling back to
// position when the workbook does not use the configured names.
func pickSheet(sheets []string, name string, pos int) string {
	for _, s := range sheets {
		if strings.EqualFold(s, name) {
			return s
		}
	}
	if pos < len(sheets) {
		return sheets[pos]
	}
	return ""
}
