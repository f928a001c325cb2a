// Package export renders the generated-name history into printable
// artifacts: QR-coded asset labels and a PDF report.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/dverhagen/namesmith/internal/model"
)

// LabelInfo holds the data encoded into each asset label's QR code.
type LabelInfo struct {
	AssetName string `json:"name"`
	Client    string `json:"client,omitempty"`
	Brand     string `json:"brand,omitempty"`
	Project   string `json:"project,omitempty"`
	Medium    string `json:"medium,omitempty"`
	Material  string `json:"material,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per name in the
// history. Each label carries the asset name, its selection context, and
// a QR code encoding the same data as JSON, laid out on a standard label
// sheet format (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, log model.NameLog) error {
	labels := LabelsFromLog(log)
	if len(labels) == 0 {
		return fmt.Errorf("no names to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		// Add new page when needed
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label, i); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.AssetName, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo, seq int) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d", seq)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Asset name (bold, larger)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, truncateToWidth(pdf, info.AssetName, textW), "", 1, "L", false, 0, "")

	// Selection context
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetXY(textX, y+labelPadding+5.5)
	hierarchy := joinNonEmpty(" / ", info.Client, info.Brand, info.Project)
	pdf.CellFormat(textW, 3, truncateToWidth(pdf, hierarchy, textW), "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+9)
	options := joinNonEmpty(" / ", info.Medium, info.Material)
	pdf.CellFormat(textW, 3, truncateToWidth(pdf, options, textW), "", 1, "L", false, 0, "")

	// Creation date
	if info.CreatedAt != "" {
		pdf.SetFont("Helvetica", "", 6)
		pdf.SetTextColor(100, 100, 100)
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.CellFormat(textW, 3, datePart(info.CreatedAt), "", 0, "L", false, 0, "")
	}

	// Reset text color
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// LabelsFromLog extracts label information from the name history for use
// in testing or alternative export formats.
func LabelsFromLog(log model.NameLog) []LabelInfo {
	var labels []LabelInfo
	for _, rec := range log.Records {
		labels = append(labels, LabelInfo{
			AssetName: rec.Name,
			Client:    rec.Client,
			Brand:     rec.Brand,
			Project:   rec.Project,
			Medium:    rec.Medium,
			Material:  rec.Material,
			CreatedAt: rec.CreatedAt,
		})
	}
	return labels
}

// truncateToWidth shortens s with an ellipsis until it fits the cell.
func truncateToWidth(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w {
		s = s[:len(s)-1]
	}
	return s + "..."
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

// datePart trims an RFC3339 timestamp to its date component.
func datePart(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
