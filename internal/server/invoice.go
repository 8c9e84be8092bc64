package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/paydesk/paydesk/internal/invoice/domain"
)

type partyPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Website string `json:"website"`
}

type productPayload struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DiscountedPrice float64 `json:"discounted_price"`
}

type createInvoiceRequest struct {
	InvoiceNumber     string           `json:"invoice_number"`
	Seller            partyPayload     `json:"seller"`
	Buyer             partyPayload     `json:"buyer"`
	Products          []productPayload `json:"products"`
	ProductCodes      []string         `json:"product_codes"`
	ProductQuantities []int            `json:"product_quantities"`
	TotalAmount       float64          `json:"total_amount"`
	PaymentMethod     string           `json:"payment_method"`
	TermsConditions   string           `json:"terms_conditions"`
	AdditionalNotes   string           `json:"additional_notes"`
}

// CreateInvoice resolves line items against the supplied catalog and
// streams the rendered PDF back as a download.
func (s *Server) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidBody)
		return
	}

	out, err := s.invoiceSvc.Create(c.Request.Context(), toDomainInvoice(req))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", out.Filename))
	c.Header("Content-Length", strconv.Itoa(len(out.PDF)))
	c.Data(http.StatusOK, "application/pdf", out.PDF)
}

func toDomainInvoice(req createInvoiceRequest) invoicedomain.CreateInvoiceRequest {
	products := make([]invoicedomain.Product, len(req.Products))
	for i, p := range req.Products {
		products[i] = invoicedomain.Product{
			Code:            strings.TrimSpace(p.Code),
			Name:            strings.TrimSpace(p.Name),
			Description:     p.Description,
			DiscountedPrice: p.DiscountedPrice,
		}
	}
	return invoicedomain.CreateInvoiceRequest{
		InvoiceNumber:     strings.TrimSpace(req.InvoiceNumber),
		Seller:            toDomainParty(req.Seller),
		Buyer:             toDomainParty(req.Buyer),
		Products:          products,
		ProductCodes:      req.ProductCodes,
		ProductQuantities: req.ProductQuantities,
		TotalAmount:       req.TotalAmount,
		PaymentMethod:     strings.TrimSpace(req.PaymentMethod),
		Terms:             strings.TrimSpace(req.TermsConditions),
		AdditionalNotes:   strings.TrimSpace(req.AdditionalNotes),
	}
}

func toDomainParty(p partyPayload) invoicedomain.PartyInfo {
	return invoicedomain.PartyInfo{
		Name:    strings.TrimSpace(p.Name),
		Phone:   strings.TrimSpace(p.Phone),
		Email:   strings.TrimSpace(p.Email),
		Address: strings.TrimSpace(p.Address),
		Website: strings.TrimSpace(p.Website),
	}
}
