package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/paydesk/paydesk/internal/clock"
	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/notification/domain"
	"go.uber.org/zap"
)

type fakeSender struct {
	lastTo      string
	lastSubject string
	lastBody    string
	status      int
	err         error
}

func (f *fakeSender) Send(_ context.Context, to, subject, htmlBody string) (int, error) {
	f.lastTo = to
	f.lastSubject = subject
	f.lastBody = htmlBody
	if f.err != nil {
		return 0, f.err
	}
	return f.status, nil
}

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(sender domain.MailSender) domain.Service {
	return NewService(Params{
		Log:    zap.NewNop(),
		Cfg:    config.Config{OrderExpiry: 15 * time.Minute},
		Clock:  clock.Fixed(now),
		Sender: sender,
	})
}

func validRequest() domain.SendConfirmationRequest {
	return domain.SendConfirmationRequest{
		Email:        "buyer@example.com",
		CustomerName: "Asha",
		OrderID:      "order_789",
		OrderDate:    "01 Jun 2024",
		ExpiryDate:   "01 Jun 2024 12:15 UTC",
		TotalAmount:  499.5,
	}
}

func TestSendOrderConfirmation(t *testing.T) {
	sender := &fakeSender{status: 202}
	svc := newTestService(sender)

	resp, err := svc.SendOrderConfirmation(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if resp.Status != "sent" {
		t.Fatalf("expected status sent, got %q", resp.Status)
	}
	if sender.lastTo != "buyer@example.com" {
		t.Fatalf("sent to %q", sender.lastTo)
	}
	for _, want := range []string{"Asha", "order_789", "01 Jun 2024", "499.5"} {
		if !strings.Contains(sender.lastBody, want) {
			t.Fatalf("body missing %q:\n%s", want, sender.lastBody)
		}
	}
}

func TestSendOrderConfirmationComputesExpiryFromConfig(t *testing.T) {
	sender := &fakeSender{status: 202}
	svc := newTestService(sender)
	req := validRequest()
	req.ExpiryDate = ""

	if _, err := svc.SendOrderConfirmation(context.Background(), req); err != nil {
		t.Fatalf("send: %v", err)
	}
	want := now.Add(15 * time.Minute).Format(expiryLayout)
	if !strings.Contains(sender.lastBody, want) {
		t.Fatalf("expected computed expiry %q in body:\n%s", want, sender.lastBody)
	}
}

func TestSendOrderConfirmationMissingFields(t *testing.T) {
	svc := newTestService(&fakeSender{status: 202})

	cases := []struct {
		mutate func(*domain.SendConfirmationRequest)
		want   error
	}{
		{func(r *domain.SendConfirmationRequest) { r.Email = "" }, domain.ErrEmailRequired},
		{func(r *domain.SendConfirmationRequest) { r.CustomerName = " " }, domain.ErrCustomerNameRequired},
		{func(r *domain.SendConfirmationRequest) { r.OrderID = "" }, domain.ErrOrderIDRequired},
		{func(r *domain.SendConfirmationRequest) { r.OrderDate = "" }, domain.ErrOrderDateRequired},
		{func(r *domain.SendConfirmationRequest) { r.TotalAmount = 0 }, domain.ErrTotalRequired},
	}
	for _, tc := range cases {
		req := validRequest()
		tc.mutate(&req)
		if _, err := svc.SendOrderConfirmation(context.Background(), req); !errors.Is(err, tc.want) {
			t.Fatalf("expected %v, got %v", tc.want, err)
		}
	}
}

func TestSendOrderConfirmationProviderRejection(t *testing.T) {
	svc := newTestService(&fakeSender{status: 401})

	_, err := svc.SendOrderConfirmation(context.Background(), validRequest())
	var provErr *domain.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if provErr.StatusCode != 401 {
		t.Fatalf("expected provider status 401, got %d", provErr.StatusCode)
	}
}

func TestSendOrderConfirmationTransportFailure(t *testing.T) {
	svc := newTestService(&fakeSender{err: errors.New("connection refused")})

	_, err := svc.SendOrderConfirmation(context.Background(), validRequest())
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestSendOrderConfirmationEscapesHTML(t *testing.T) {
	sender := &fakeSender{status: 202}
	svc := newTestService(sender)
	req := validRequest()
	req.CustomerName = "<script>alert(1)</script>"

	if _, err := svc.SendOrderConfirmation(context.Background(), req); err != nil {
		t.Fatalf("send: %v", err)
	}
	if strings.Contains(sender.lastBody, "<script>") {
		t.Fatalf("customer name was not escaped:\n%s", sender.lastBody)
	}
}
