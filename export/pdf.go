package export

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// A4 landscape printable width with 10mm margins.
const pdfPageWidth = 277.0

// PDF renders the document as an A4 landscape table.
func PDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, doc.Title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.Cell(0, 6, doc.generatedAt().Format("2006-01-02 15:04"))
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(10)

	widths := columnWidths(doc.Columns)

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(235, 235, 235)
		for i, col := range doc.Columns {
			pdf.CellFormat(widths[i], 8, col.Header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	header()

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range doc.Rows {
		if pdf.GetY() > 185 {
			pdf.AddPage()
			header()
			pdf.SetFont("Helvetica", "", 9)
		}
		for i := range doc.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, fmt.Sprintf("%d rows", len(doc.Rows)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths honors explicit widths and splits the leftover space across
// the rest.
func columnWidths(cols []Column) []float64 {
	widths := make([]float64, len(cols))
	remaining := pdfPageWidth
	flexible := 0
	for i, c := range cols {
		if c.Width > 0 {
			widths[i] = c.Width
			remaining -= c.Width
		} else {
			flexible++
		}
	}
	if flexible > 0 {
		share := remaining / float64(flexible)
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}
