package render

import (
	"bytes"
	"fmt"
	"testing"
	"time"
)

func sampleInput(rows int) RenderInput {
	input := RenderInput{
		InvoiceNumber: "INV-1001",
		IssueDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Seller:        PartyView{Name: "Acme Traders", Phone: "+91 98765 43210", Email: "sales@acme.example", Address: "12 Market Road, Pune"},
		Buyer:         PartyView{Name: "Beta Retail", Email: "accounts@beta.example"},
		TotalMinor:    0,
		PaymentMethod: "UPI",
		Terms:         "Payable within 15 days.",
	}
	for i := 0; i < rows; i++ {
		input.Items = append(input.Items, RowView{
			Name:       fmt.Sprintf("Item %d", i+1),
			Quantity:   1,
			UnitAmount: 10000,
			LineTotal:  10000,
		})
		input.TotalMinor += 10000
	}
	return input
}

func TestRenderProducesPDF(t *testing.T) {
	r := &PDFRenderer{}
	out, err := r.Render(sampleInput(3))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF magic header, got %q", out[:8])
	}
}

func TestRenderSinglePageForFewRows(t *testing.T) {
	r := &PDFRenderer{}
	pdf := r.build(sampleInput(5))
	if err := pdf.Error(); err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := pdf.PageCount(); got != 1 {
		t.Fatalf("expected 1 page, got %d", got)
	}
}

func TestRenderPaginatesLongItemTables(t *testing.T) {
	r := &PDFRenderer{}
	pdf := r.build(sampleInput(60))
	if err := pdf.Error(); err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := pdf.PageCount(); got < 2 {
		t.Fatalf("expected at least 2 pages for 60 rows, got %d", got)
	}
}

func TestRenderRowCountNeverExceedsPageCapacity(t *testing.T) {
	// Every page must fit its header plus whole rows above the bottom
	// margin; row heights are fixed, so capacity is derivable.
	usable := pageHeight - topMargin - bottomMargin
	perPage := int(usable / rowHeight)

	r := &PDFRenderer{}
	for _, rows := range []int{1, perPage, perPage + 1, 3 * perPage} {
		pdf := r.build(sampleInput(rows))
		if err := pdf.Error(); err != nil {
			t.Fatalf("build %d rows: %v", rows, err)
		}
		minPages := 1 + rows/perPage
		if pdf.PageCount() < minPages-1 {
			t.Fatalf("%d rows produced %d pages, expected at least %d", rows, pdf.PageCount(), minPages-1)
		}
	}
}

func TestFormatAmountUsesLiteralMinorUnits(t *testing.T) {
	if got := formatAmount(20000); got != "Rs. 20000" {
		t.Fatalf("expected literal minor units, got %q", got)
	}
}
