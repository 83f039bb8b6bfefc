// Package render — PDF renderer.
// Produces an outline document with gofpdf: the title, the contents list,
// and one entry per section showing its id and reconciled nav link.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/deckparse/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders a navigation outline as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the analysis result into PDF bytes.
func (r *PDFRenderer) Render(result *core.AnalysisResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	title := result.Title
	if title == "" {
		title = "Untitled document"
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, title, "", "L", false)
	pdf.Ln(4)

	if len(result.TocEntries) > 0 {
		renderOutlineHeading(pdf, "Contents")
		for _, e := range result.TocEntries {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, "• "+e.Text, "", "L", false)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.SetTextColor(100, 100, 100)
			pdf.MultiCell(0, 4, "    #"+e.ID, "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(4)
	}

	renderOutlineHeading(pdf, fmt.Sprintf("Sections (%d)", len(result.Sections)))
	for _, s := range result.Sections {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, s.Title, "", "L", false)

		detail := "id: " + s.ID
		if s.NavRef != "" {
			detail += "  ·  nav: " + s.NavRef
		}
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, detail, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func renderOutlineHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 7, text, "", "L", false)
	pdf.Ln(2)
}
