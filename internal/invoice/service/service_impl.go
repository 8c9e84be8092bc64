package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/paydesk/paydesk/internal/clock"
	"github.com/paydesk/paydesk/internal/invoice/domain"
	"github.com/paydesk/paydesk/internal/invoice/render"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Clock    clock.Clock
	Renderer render.Renderer
}

type Service struct {
	log      *zap.Logger
	clock    clock.Clock
	renderer render.Renderer
}

func NewService(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("invoice.service"),
		clock:    p.Clock,
		renderer: p.Renderer,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (*domain.RenderedInvoice, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	codes, quantities := requestedItems(req)
	items, total, err := domain.ResolveLineItems(codes, quantities, req.Products)
	if err != nil {
		return nil, err
	}

	if req.TotalAmount != 0 {
		declared, err := domain.MinorUnits(req.TotalAmount)
		if err != nil {
			return nil, err
		}
		if declared != total {
			return nil, fmt.Errorf("%w: declared total %d does not match computed total %d", domain.ErrTotalMismatch, declared, total)
		}
	}

	// The issue date is always generation time, never client input.
	issuedAt := s.clock.Now()

	input := render.RenderInput{
		InvoiceNumber: req.InvoiceNumber,
		IssueDate:     issuedAt,
		Seller:        partyView(req.Seller),
		Buyer:         partyView(req.Buyer),
		Items:         rowViews(items),
		TotalMinor:    total,
		PaymentMethod: req.PaymentMethod,
		Terms:         req.Terms,
		Notes:         req.AdditionalNotes,
	}

	pdf, err := s.renderer.Render(input)
	if err != nil {
		s.log.Error("invoice render failed",
			zap.String("invoice_number", req.InvoiceNumber),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	s.log.Info("invoice rendered",
		zap.String("invoice_number", req.InvoiceNumber),
		zap.Int("line_items", len(items)),
		zap.Int64("total_minor", total),
	)

	return &domain.RenderedInvoice{
		Filename:   fmt.Sprintf("invoice_%s.pdf", req.InvoiceNumber),
		PDF:        pdf,
		IssuedAt:   issuedAt,
		TotalMinor: total,
		Items:      items,
	}, nil
}

func validate(req domain.CreateInvoiceRequest) error {
	if strings.TrimSpace(req.InvoiceNumber) == "" {
		return domain.ErrInvoiceNumberRequired
	}
	if strings.TrimSpace(req.Seller.Name) == "" {
		return domain.ErrSellerRequired
	}
	if strings.TrimSpace(req.Buyer.Name) == "" {
		return domain.ErrBuyerRequired
	}
	if len(req.Products) == 0 {
		return domain.ErrNoProducts
	}
	return nil
}

// requestedItems returns the codes and quantities to resolve. When the
// request carries no explicit code list, every catalog product is billed
// once in catalog order, which is how the plain products-only variant of
// the create-invoice payload behaves.
func requestedItems(req domain.CreateInvoiceRequest) ([]string, []int) {
	if len(req.ProductCodes) > 0 {
		return req.ProductCodes, req.ProductQuantities
	}
	codes := make([]string, len(req.Products))
	quantities := make([]int, len(req.Products))
	for i, product := range req.Products {
		codes[i] = product.Code
		quantities[i] = 1
	}
	return codes, quantities
}

func partyView(party domain.PartyInfo) render.PartyView {
	address := party.Address
	if address == "" {
		address = party.Website
	}
	return render.PartyView{
		Name:    party.Name,
		Phone:   party.Phone,
		Email:   party.Email,
		Address: address,
	}
}

func rowViews(items []domain.LineItem) []render.RowView {
	rows := make([]render.RowView, len(items))
	for i, item := range items {
		rows[i] = render.RowView{
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitAmount:  item.UnitAmount,
			LineTotal:   item.LineTotal,
		}
	}
	return rows
}
