package export

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/dverhagen/namesmith/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	reportPageWidth  = 210.0
	reportPageHeight = 297.0
	reportMargin     = 15.0
	reportRowHeight  = 6.0
)

var (
	reportColWidths = []float64{72, 22, 24, 20, 20, 22}
	reportHeaders   = []string{"Name", "Brand", "Project", "Medium", "Material", "Created"}
)

// clientGroup collects the history records of one client, in log order.
type clientGroup struct {
	Client  string
	Records []model.NameRecord
}

// ExportNameLog generates a PDF report of the name history: a summary
// block followed by one table per client, in order of first appearance.
func ExportNameLog(path string, log model.NameLog) error {
	if log.Len() == 0 {
		return fmt.Errorf("no names to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, reportMargin)
	pdf.AddPage()

	y := renderReportHeader(pdf, log)
	for _, group := range groupByClient(log.Records) {
		y = renderClientGroup(pdf, group, y)
	}

	// Footer on the last page
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(reportMargin, reportPageHeight-reportMargin)
	pdf.CellFormat(reportPageWidth-2*reportMargin, 4, "Generated by NameSmith - Asset Name Generator", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// renderReportHeader draws the title and summary block, returning the y
// position below it.
func renderReportHeader(pdf *fpdf.Fpdf, log model.NameLog) float64 {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(reportMargin, reportMargin)
	pdf.CellFormat(reportPageWidth-2*reportMargin, 10, "Name History", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(reportMargin, reportMargin+12, reportPageWidth-reportMargin, reportMargin+12)

	y := reportMargin + 18

	summaryItems := []struct {
		label string
		value string
	}{
		{"Names Generated", fmt.Sprintf("%d", log.Len())},
		{"Clients", fmt.Sprintf("%d", len(groupByClient(log.Records)))},
		{"Exported", time.Now().UTC().Format("2006-01-02 15:04 UTC")},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(reportMargin+5, y)
		pdf.CellFormat(45, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	return y + 4
}

// renderClientGroup draws one client's heading and record table, adding
// pages as needed, and returns the y position below the table.
func renderClientGroup(pdf *fpdf.Fpdf, group clientGroup, y float64) float64 {
	// The heading and the first table row must fit together.
	y = ensureSpace(pdf, y, 9+2*reportRowHeight)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(reportMargin, y)
	heading := fmt.Sprintf("%s (%d)", group.Client, len(group.Records))
	pdf.CellFormat(reportPageWidth-2*reportMargin, 7, heading, "", 0, "L", false, 0, "")
	y += 9

	y = renderTableHeader(pdf, y)

	for i, rec := range group.Records {
		prevY := y
		y = ensureSpace(pdf, y, reportRowHeight)
		if y != prevY {
			// Repeat the column header after a page break.
			y = renderTableHeader(pdf, y)
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		pdf.SetFont("Helvetica", "", 8)
		row := []string{rec.Name, rec.Brand, rec.Project, rec.Medium, rec.Material, datePart(rec.CreatedAt)}
		xPos := reportMargin
		for j, cell := range row {
			align := "L"
			if j > 0 {
				align = "C"
			}
			pdf.SetXY(xPos, y)
			pdf.CellFormat(reportColWidths[j], reportRowHeight, truncateToWidth(pdf, cell, reportColWidths[j]-2), "1", 0, align, true, 0, "")
			xPos += reportColWidths[j]
		}
		y += reportRowHeight
	}

	return y + 6
}

// renderTableHeader draws the column header row at y and returns the y
// position below it.
func renderTableHeader(pdf *fpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	xPos := reportMargin
	for i, header := range reportHeaders {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(reportColWidths[i], reportRowHeight, header, "1", 0, "C", true, 0, "")
		xPos += reportColWidths[i]
	}
	return y + reportRowHeight
}

// ensureSpace starts a new page when fewer than needed millimeters are
// left above the bottom margin.
func ensureSpace(pdf *fpdf.Fpdf, y, needed float64) float64 {
	if y+needed > reportPageHeight-reportMargin-8 {
		pdf.AddPage()
		return reportMargin
	}
	return y
}

// groupByClient buckets records by client in order of first appearance.
func groupByClient(records []model.NameRecord) []clientGroup {
	index := map[string]int{}
	var groups []clientGroup
	for _, rec := range records {
		key := rec.Client
		if key == "" {
			key = "(no client)"
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, clientGroup{Client: key})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}
