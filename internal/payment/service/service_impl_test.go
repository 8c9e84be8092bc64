package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/payment/domain"
	"go.uber.org/zap"
)

type fakeGateway struct {
	lastAmount   int64
	lastCurrency string
	lastReceipt  string
	orderID      string
	status       string
	err          error
}

func (f *fakeGateway) CreateOrder(_ context.Context, amountMinor int64, currency, receipt string) (string, error) {
	f.lastAmount = amountMinor
	f.lastCurrency = currency
	f.lastReceipt = receipt
	if f.err != nil {
		return "", f.err
	}
	return f.orderID, nil
}

func (f *fakeGateway) FetchPayment(_ context.Context, paymentID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.status, nil
}

func newTestService(gw domain.GatewayAdapter) domain.Service {
	return NewService(Params{
		Log:     zap.NewNop(),
		Cfg:     config.Config{Currency: "INR"},
		Gateway: gw,
	})
}

func TestCreateOrderConvertsToMinorUnits(t *testing.T) {
	gw := &fakeGateway{orderID: "order_123"}
	svc := newTestService(gw)

	resp, err := svc.CreateOrder(context.Background(), 500)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if resp.AmountMinor != 50000 {
		t.Fatalf("expected 50000 paise, got %d", resp.AmountMinor)
	}
	if gw.lastAmount != 50000 {
		t.Fatalf("gateway received %d, want 50000", gw.lastAmount)
	}
	if gw.lastCurrency != "INR" {
		t.Fatalf("gateway received currency %q", gw.lastCurrency)
	}
	if resp.OrderID != "order_123" {
		t.Fatalf("expected order_123, got %q", resp.OrderID)
	}
}

func TestCreateOrderReceiptIsUniqueUUID(t *testing.T) {
	gw := &fakeGateway{orderID: "order_123"}
	svc := newTestService(gw)

	first, err := svc.CreateOrder(context.Background(), 10)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := uuid.Parse(first.Receipt); err != nil {
		t.Fatalf("receipt %q is not a UUID: %v", first.Receipt, err)
	}

	second, err := svc.CreateOrder(context.Background(), 10)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if first.Receipt == second.Receipt {
		t.Fatalf("receipts must be unique per order")
	}
}

func TestCreateOrderRoundsFractionalAmounts(t *testing.T) {
	gw := &fakeGateway{orderID: "order_123"}
	svc := newTestService(gw)

	resp, err := svc.CreateOrder(context.Background(), 99.99)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if resp.AmountMinor != 9999 {
		t.Fatalf("expected 9999 paise, got %d", resp.AmountMinor)
	}
}

func TestCreateOrderRejectsMissingAmount(t *testing.T) {
	svc := newTestService(&fakeGateway{})
	for _, amount := range []float64{0, -5} {
		if _, err := svc.CreateOrder(context.Background(), amount); !errors.Is(err, domain.ErrAmountRequired) {
			t.Fatalf("amount %v: expected ErrAmountRequired, got %v", amount, err)
		}
	}
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	svc := newTestService(&fakeGateway{err: errors.New("auth failed")})
	_, err := svc.CreateOrder(context.Background(), 100)
	if !errors.Is(err, domain.ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}

func TestVerifyPaymentCaptured(t *testing.T) {
	svc := newTestService(&fakeGateway{status: "captured"})
	resp, err := svc.VerifyPayment(context.Background(), "pay_1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success for captured payment")
	}
}

func TestVerifyPaymentNonCapturedStatusIsNotAnError(t *testing.T) {
	for _, status := range []string{"failed", "authorized", "refunded", "created"} {
		svc := newTestService(&fakeGateway{status: status})
		resp, err := svc.VerifyPayment(context.Background(), "pay_1")
		if err != nil {
			t.Fatalf("status %q: unexpected error %v", status, err)
		}
		if resp.Success {
			t.Fatalf("status %q: expected success=false", status)
		}
	}
}

func TestVerifyPaymentMissingID(t *testing.T) {
	svc := newTestService(&fakeGateway{})
	if _, err := svc.VerifyPayment(context.Background(), "  "); !errors.Is(err, domain.ErrPaymentIDRequired) {
		t.Fatalf("expected ErrPaymentIDRequired, got %v", err)
	}
}

func TestVerifyPaymentGatewayFailure(t *testing.T) {
	svc := newTestService(&fakeGateway{err: errors.New("invalid id")})
	_, err := svc.VerifyPayment(context.Background(), "pay_1")
	if !errors.Is(err, domain.ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}
