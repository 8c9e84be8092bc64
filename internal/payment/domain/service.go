package domain

import (
	"context"
	"errors"
)

// StatusCaptured is the gateway status meaning funds were collected.
const StatusCaptured = "captured"

type CreateOrderResponse struct {
	OrderID     string `json:"id"`
	Receipt     string `json:"receipt"`
	AmountMinor int64  `json:"amount"`
	Currency    string `json:"currency"`
}

type VerifyPaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Service interface {
	CreateOrder(ctx context.Context, amount float64) (*CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, paymentID string) (*VerifyPaymentResponse, error)
}

var (
	ErrAmountRequired     = errors.New("amount_required")
	ErrPaymentIDRequired  = errors.New("payment_id_required")
	ErrGatewayUnavailable = errors.New("gateway_unavailable")
)
