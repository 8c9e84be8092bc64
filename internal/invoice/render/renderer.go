package render

import "time"

// RenderInput is the deterministic input used for invoice rendering.
type RenderInput struct {
	InvoiceNumber string
	IssueDate     time.Time
	Seller        PartyView
	Buyer         PartyView
	Items         []RowView
	TotalMinor    int64
	PaymentMethod string
	Terms         string
	Notes         string
}

type PartyView struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// RowView is one table row. Amounts are the literal minor-unit values the
// resolver produced; the renderer prefixes the currency marker and does
// not reformat them.
type RowView struct {
	Name        string
	Description string
	Quantity    int
	UnitAmount  int64
	LineTotal   int64
}

type Renderer interface {
	Render(input RenderInput) ([]byte, error)
}
