package razorpay

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/paydesk/paydesk/internal/payment/domain"
)

// Adapter implements domain.GatewayAdapter on the Razorpay SDK.
type Adapter struct {
	client *razorpay.Client
}

func New(keyID, keySecret string) *Adapter {
	return &Adapter{client: razorpay.NewClient(keyID, keySecret)}
}

func (a *Adapter) CreateOrder(_ context.Context, amountMinor int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	body, err := a.client.Order.Create(data, nil)
	if err != nil {
		return "", err
	}
	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("gateway returned no order id")
	}
	return orderID, nil
}

func (a *Adapter) FetchPayment(_ context.Context, paymentID string) (string, error) {
	body, err := a.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return "", err
	}
	status, ok := body["status"].(string)
	if !ok {
		return "", fmt.Errorf("gateway returned no payment status")
	}
	return status, nil
}

var _ domain.GatewayAdapter = (*Adapter)(nil)
