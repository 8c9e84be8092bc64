package domain

import "context"

// GatewayAdapter is the seam to the payment gateway. Handlers and services
// only ever see this interface, so tests substitute a fake and the real
// provider stays swappable.
type GatewayAdapter interface {
	// CreateOrder registers an order for the given minor-unit amount and
	// returns the gateway's order id.
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error)
	// FetchPayment returns the gateway's status string for a payment id.
	FetchPayment(ctx context.Context, paymentID string) (string, error)
}
