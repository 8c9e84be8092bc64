package domain

import "time"

// Product is a catalog entry supplied with the request. Prices arrive in
// major currency units and are converted to minor units before any math.
type Product struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DiscountedPrice float64 `json:"discounted_price"`
}

// LineItem is a priced, quantified invoice row. Amounts are in minor units
// and the struct is never mutated after resolution.
type LineItem struct {
	Name        string
	Description string
	UnitAmount  int64
	Quantity    int
	LineTotal   int64
}

type PartyInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Website string `json:"website"`
}

type CreateInvoiceRequest struct {
	InvoiceNumber     string
	Seller            PartyInfo
	Buyer             PartyInfo
	Products          []Product
	ProductCodes      []string
	ProductQuantities []int
	TotalAmount       float64
	PaymentMethod     string
	Terms             string
	AdditionalNotes   string
}

// RenderedInvoice is the finished document, built once per request and
// never cached.
type RenderedInvoice struct {
	Filename   string
	PDF        []byte
	IssuedAt   time.Time
	TotalMinor int64
	Items      []LineItem
}
