package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// US Letter in points, drawn top to bottom with a manual cursor.
const (
	pageWidth    = 612.0
	pageHeight   = 792.0
	leftMargin   = 48.0
	topMargin    = 56.0
	bottomMargin = 64.0
	contentWidth = pageWidth - 2*leftMargin
	rowHeight    = 18.0
)

var columnWidths = [4]float64{contentWidth - 300, 60, 120, 120}

type PDFRenderer struct{}

func NewPDFRenderer() Renderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(input RenderInput) ([]byte, error) {
	pdf := r.build(input)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) build(input RenderInput) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	y := topMargin

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(leftMargin, y)
	pdf.CellFormat(contentWidth, 24, "INVOICE", "", 0, "C", false, 0, "")
	y += 36

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(leftMargin, y)
	pdf.CellFormat(contentWidth/2, rowHeight, "Invoice No: "+input.InvoiceNumber, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth/2, rowHeight, "Date: "+input.IssueDate.Format("02 Jan 2006"), "", 0, "R", false, 0, "")
	y += 30

	y = r.drawParty(pdf, "From", input.Seller, y)
	y = r.drawParty(pdf, "Bill To", input.Buyer, y)

	y = r.drawTableHeader(pdf, y)
	for _, row := range input.Items {
		// A row is drawn whole or not at all on the current page.
		if y+rowHeight > pageHeight-bottomMargin {
			pdf.AddPage()
			y = r.drawTableHeader(pdf, topMargin)
		}
		y = r.drawRow(pdf, row, y)
	}

	r.drawFooter(pdf, input, y)
	return pdf
}

func (r *PDFRenderer) drawParty(pdf *gofpdf.Fpdf, label string, party PartyView, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(leftMargin, y)
	pdf.CellFormat(contentWidth, rowHeight, label+":", "", 0, "L", false, 0, "")
	y += rowHeight

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{party.Name, party.Phone, party.Email, party.Address} {
		if line == "" {
			continue
		}
		pdf.SetXY(leftMargin, y)
		pdf.CellFormat(contentWidth, 14, line, "", 0, "L", false, 0, "")
		y += 14
	}
	return y + 10
}

func (r *PDFRenderer) drawTableHeader(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetXY(leftMargin, y)
	headers := [4]string{"Item", "Qty", "Unit Price", "Amount"}
	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(columnWidths[i], rowHeight, header, "1", 0, align, true, 0, "")
	}
	return y + rowHeight
}

func (r *PDFRenderer) drawRow(pdf *gofpdf.Fpdf, row RowView, y float64) float64 {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(leftMargin, y)

	name := row.Name
	if row.Description != "" {
		name = fmt.Sprintf("%s - %s", row.Name, row.Description)
	}
	pdf.CellFormat(columnWidths[0], rowHeight, name, "1", 0, "L", false, 0, "")
	pdf.CellFormat(columnWidths[1], rowHeight, strconv.Itoa(row.Quantity), "1", 0, "R", false, 0, "")
	pdf.CellFormat(columnWidths[2], rowHeight, formatAmount(row.UnitAmount), "1", 0, "R", false, 0, "")
	pdf.CellFormat(columnWidths[3], rowHeight, formatAmount(row.LineTotal), "1", 0, "R", false, 0, "")
	return y + rowHeight
}

func (r *PDFRenderer) drawFooter(pdf *gofpdf.Fpdf, input RenderInput, y float64) {
	footerHeight := 3 * rowHeight
	if input.Notes != "" {
		footerHeight += rowHeight
	}
	if y+footerHeight+10 > pageHeight-bottomMargin {
		pdf.AddPage()
		y = topMargin
	}
	y += 10

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(leftMargin, y)
	pdf.CellFormat(contentWidth, rowHeight, "Total: "+formatAmount(input.TotalMinor), "", 0, "R", false, 0, "")
	y += rowHeight

	pdf.SetFont("Helvetica", "", 10)
	if input.PaymentMethod != "" {
		pdf.SetXY(leftMargin, y)
		pdf.CellFormat(contentWidth, rowHeight, "Payment Method: "+input.PaymentMethod, "", 0, "L", false, 0, "")
		y += rowHeight
	}
	if input.Terms != "" {
		pdf.SetXY(leftMargin, y)
		pdf.CellFormat(contentWidth, rowHeight, "Terms: "+input.Terms, "", 0, "L", false, 0, "")
		y += rowHeight
	}
	if input.Notes != "" {
		pdf.SetXY(leftMargin, y)
		pdf.CellFormat(contentWidth, rowHeight, "Notes: "+input.Notes, "", 0, "L", false, 0, "")
	}
}

// formatAmount prefixes the fixed currency marker to the literal minor-unit
// value; amounts are not reformatted back to major units here.
func formatAmount(amount int64) string {
	return "Rs. " + strconv.FormatInt(amount, 10)
}
