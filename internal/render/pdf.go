// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/paperforge/pkg/types"
)

// writePDF renders the document onto US Letter pages with one-inch
// margins. Heading levels map to the same hierarchy the HTML output
// uses: the level-1 title is centered, deeper levels step down in size.
func writePDF(doc types.Document, path string) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle(doc.Title(), true)
	pdf.SetMargins(25.4, 25.4, 25.4)
	pdf.SetAutoPageBreak(true, 25.4)
	pdf.AddPage()

	// Core fonts are cp1252 only; translate what we can.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, b := range doc.Blocks {
		switch b.Kind {
		case types.KindBlank:
			pdf.Ln(4)
		case types.KindHeading:
			pdfHeading(pdf, b.Level, tr(b.Text))
		default:
			pdf.SetFont("Times", "", 11)
			pdf.MultiCell(0, 5, tr(b.Text), "", "L", false)
			pdf.Ln(2)
		}
	}

	return pdf.OutputFileAndClose(path)
}

func pdfHeading(pdf *fpdf.Fpdf, level int, text string) {
	switch level {
	case 1:
		pdf.SetFont("Times", "B", 16)
		pdf.MultiCell(0, 8, text, "", "C", false)
		pdf.Ln(10)
	case 2:
		pdf.SetFont("Times", "B", 14)
		pdf.MultiCell(0, 7, text, "", "L", false)
		pdf.Ln(3)
	case 3:
		pdf.SetFont("Times", "B", 12)
		pdf.MultiCell(0, 6, text, "", "L", false)
		pdf.Ln(2)
	default:
		pdf.SetFont("Times", "BI", 11)
		pdf.MultiCell(0, 6, text, "", "L", false)
		pdf.Ln(2)
	}
}
