package domain

import (
	"context"
	"errors"
	"fmt"
)

type SendConfirmationRequest struct {
	Email        string
	CustomerName string
	OrderID      string
	OrderDate    string
	ExpiryDate   string
	TotalAmount  float64
}

type SendConfirmationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Service interface {
	SendOrderConfirmation(ctx context.Context, req SendConfirmationRequest) (*SendConfirmationResponse, error)
}

// MailSender relays one message through the email provider and reports the
// provider's HTTP status. Delivery is not verified beyond that status.
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) (int, error)
}

var (
	ErrEmailRequired        = errors.New("email_required")
	ErrCustomerNameRequired = errors.New("customer_name_required")
	ErrOrderIDRequired      = errors.New("order_id_required")
	ErrOrderDateRequired    = errors.New("order_date_required")
	ErrTotalRequired        = errors.New("total_amount_required")
	ErrProviderUnavailable  = errors.New("email_provider_unavailable")
)

// ProviderError carries a non-success provider status through to the
// caller unchanged.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("email provider returned status %d: %s", e.StatusCode, e.Message)
}
