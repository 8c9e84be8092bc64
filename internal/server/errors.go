package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/paydesk/paydesk/internal/invoice/domain"
	notificationdomain "github.com/paydesk/paydesk/internal/notification/domain"
	paymentdomain "github.com/paydesk/paydesk/internal/payment/domain"
)

// errInvalidBody covers unparseable request payloads.
var errInvalidBody = errors.New("invalid_request_body")

// The fixed error table: validation 400, unresolved product 404, upstream
// and build failures 500. Entries with an empty message expose the error's
// own text, which carries dynamic detail such as the missing product code
// or the upstream failure passed through verbatim.
var errorTable = []struct {
	err     error
	status  int
	message string
}{
	{errInvalidBody, http.StatusBadRequest, "Invalid request body"},

	{paymentdomain.ErrAmountRequired, http.StatusBadRequest, "Amount is required"},
	{paymentdomain.ErrPaymentIDRequired, http.StatusBadRequest, "Payment ID is required"},
	{paymentdomain.ErrGatewayUnavailable, http.StatusInternalServerError, ""},

	{invoicedomain.ErrInvoiceNumberRequired, http.StatusBadRequest, "Invoice number is required"},
	{invoicedomain.ErrSellerRequired, http.StatusBadRequest, "Seller name is required"},
	{invoicedomain.ErrBuyerRequired, http.StatusBadRequest, "Buyer name is required"},
	{invoicedomain.ErrNoProducts, http.StatusBadRequest, "At least one product is required"},
	{invoicedomain.ErrEmptyCatalog, http.StatusBadRequest, "Product catalog is empty"},
	{invoicedomain.ErrQuantityMismatch, http.StatusBadRequest, ""},
	{invoicedomain.ErrInvalidQuantity, http.StatusBadRequest, ""},
	{invoicedomain.ErrFractionalPrice, http.StatusBadRequest, ""},
	{invoicedomain.ErrTotalMismatch, http.StatusBadRequest, ""},
	{invoicedomain.ErrProductNotFound, http.StatusNotFound, ""},
	{invoicedomain.ErrRenderFailed, http.StatusInternalServerError, ""},

	{notificationdomain.ErrEmailRequired, http.StatusBadRequest, "Email is required"},
	{notificationdomain.ErrCustomerNameRequired, http.StatusBadRequest, "Customer name is required"},
	{notificationdomain.ErrOrderIDRequired, http.StatusBadRequest, "Order ID is required"},
	{notificationdomain.ErrOrderDateRequired, http.StatusBadRequest, "Order date is required"},
	{notificationdomain.ErrTotalRequired, http.StatusBadRequest, "Total amount is required"},
	{notificationdomain.ErrProviderUnavailable, http.StatusInternalServerError, ""},
}

// AbortWithError converts a domain error into the JSON error body. Email
// provider rejections keep their upstream status code.
func AbortWithError(c *gin.Context, err error) {
	var provErr *notificationdomain.ProviderError
	if errors.As(err, &provErr) {
		abortJSON(c, provErr.StatusCode, provErr.Message)
		return
	}

	for _, entry := range errorTable {
		if !errors.Is(err, entry.err) {
			continue
		}
		message := entry.message
		if message == "" {
			message = upstreamText(err, entry.err)
		}
		abortJSON(c, entry.status, message)
		return
	}

	abortJSON(c, http.StatusInternalServerError, "internal error")
}

func abortJSON(c *gin.Context, status int, message string) {
	_ = c.Error(errors.New(message))
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// upstreamText strips the sentinel prefix so the caller sees the wrapped
// detail (upstream error text, missing code) rather than our internal tag.
func upstreamText(err, sentinel error) string {
	text := err.Error()
	if trimmed := strings.TrimPrefix(text, sentinel.Error()+": "); trimmed != "" {
		return trimmed
	}
	return text
}
