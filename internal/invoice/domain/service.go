package domain

import (
	"context"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (*RenderedInvoice, error)
}

var (
	ErrInvoiceNumberRequired = errors.New("invoice_number_required")
	ErrSellerRequired        = errors.New("seller_name_required")
	ErrBuyerRequired         = errors.New("buyer_name_required")
	ErrNoProducts            = errors.New("no_products")
	ErrEmptyCatalog          = errors.New("empty_catalog")
	ErrQuantityMismatch      = errors.New("quantity_mismatch")
	ErrInvalidQuantity       = errors.New("invalid_quantity")
	ErrProductNotFound       = errors.New("product_not_found")
	ErrFractionalPrice       = errors.New("fractional_price")
	ErrTotalMismatch         = errors.New("total_mismatch")
	ErrRenderFailed          = errors.New("render_failed")
)
