package helper

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

type GoPdf struct {
	*gofpdf.Fpdf
}

// PdfDocument is a printable document with a line-item table.
type PdfDocument struct {
	Title    string
	Company  []string
	Number   string
	Date     string
	Status   string
	BillTo   []string
	Headers  []string
	Widths   []float64
	Aligns   []string
	Rows     [][]string
	Totals   [][2]string
	Footnote string
}

func GeneratePDF(doc PdfDocument) ([]byte, error) {
	if len(doc.Widths) != len(doc.Headers) {
		return nil, fmt.Errorf("pdf: %d headers but %d widths", len(doc.Headers), len(doc.Widths))
	}
	pdf := GoPdf{gofpdf.New("P", "mm", "A4", "")}
	pdf.SetTitle(doc.Title, true)
	pdf.AddPage()

	// header: company on the left, title on the right
	pdf.SetFont("Arial", "B", 16)
	titleWidth := pdf.GetStringWidth(doc.Title)
	pdf.SetXY(210-titleWidth-10, 10)
	pdf.Cell(titleWidth, 10, doc.Title)
	pdf.SetXY(10, 10)
	pdf.SetFont("Arial", "", 10)
	for _, line := range doc.Company {
		pdf.Cell(100, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(95, 8, "Number : "+doc.Number)
	pdf.Cell(95, 8, "Date : "+doc.Date)
	pdf.Ln(8)
	if doc.Status != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(95, 8, "Status : "+doc.Status)
		pdf.Ln(8)
	}
	if len(doc.BillTo) > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(95, 8, "Bill To:")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		for _, line := range doc.BillTo {
			pdf.Cell(95, 6, line)
			pdf.Ln(6)
		}
	}
	pdf.Ln(6)
	pdf.addTable(doc)

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	tableWidth := 0.0
	for _, w := range doc.Widths {
		tableWidth += w
	}
	for _, t := range doc.Totals {
		pdf.SetX(10 + tableWidth - 80)
		pdf.CellFormat(50, 8, t[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, t[1], "1", 1, "R", false, 0, "")
	}
	if doc.Footnote != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(190, 5, doc.Footnote, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (pdf GoPdf) addTable(doc PdfDocument) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range doc.Headers {
		pdf.CellFormat(doc.Widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, row := range doc.Rows {
		for i := range doc.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			align := "L"
			if i < len(doc.Aligns) {
				align = doc.Aligns[i]
			}
			pdf.CellFormat(doc.Widths[i], 8, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}
