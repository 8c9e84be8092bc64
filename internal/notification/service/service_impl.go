package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/paydesk/paydesk/internal/clock"
	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/notification/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const confirmationSubject = "Your order confirmation"

const confirmationTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #111827;">
  <h2>Thank you for your order, {{.CustomerName}}!</h2>
  <p>Your payment has been received and your order is confirmed.</p>
  <table style="border-collapse: collapse;">
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Order ID</strong></td><td>{{.OrderID}}</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Order Date</strong></td><td>{{.OrderDate}}</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Valid Until</strong></td><td>{{.ExpiryDate}}</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><strong>Total</strong></td><td>Rs. {{.TotalAmount}}</td></tr>
  </table>
  <p>If anything looks wrong, reply to this email and we will sort it out.</p>
</body>
</html>`

const expiryLayout = "02 Jan 2006 15:04 MST"

type Params struct {
	fx.In

	Log    *zap.Logger
	Cfg    config.Config
	Clock  clock.Clock
	Sender domain.MailSender
}

type Service struct {
	log    *zap.Logger
	clock  clock.Clock
	sender domain.MailSender
	expiry time.Duration
	tpl    *template.Template
}

func NewService(p Params) domain.Service {
	return &Service{
		log:    p.Log.Named("notification.service"),
		clock:  p.Clock,
		sender: p.Sender,
		expiry: p.Cfg.OrderExpiry,
		tpl:    template.Must(template.New("confirmation").Parse(confirmationTemplate)),
	}
}

func (s *Service) SendOrderConfirmation(ctx context.Context, req domain.SendConfirmationRequest) (*domain.SendConfirmationResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	// Expiry is a configured offset from now unless the caller supplied one.
	if strings.TrimSpace(req.ExpiryDate) == "" {
		req.ExpiryDate = s.clock.Now().Add(s.expiry).Format(expiryLayout)
	}

	var body bytes.Buffer
	if err := s.tpl.Execute(&body, req); err != nil {
		return nil, fmt.Errorf("build confirmation body: %w", err)
	}

	status, err := s.sender.Send(ctx, req.Email, confirmationSubject, body.String())
	if err != nil {
		s.log.Error("email send failed",
			zap.String("order_id", req.OrderID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	if status >= http.StatusMultipleChoices {
		s.log.Warn("email provider rejected message",
			zap.String("order_id", req.OrderID),
			zap.Int("provider_status", status),
		)
		return nil, &domain.ProviderError{StatusCode: status, Message: "email provider rejected the message"}
	}

	s.log.Info("confirmation email accepted",
		zap.String("order_id", req.OrderID),
		zap.Int("provider_status", status),
	)
	return &domain.SendConfirmationResponse{
		Status:  "sent",
		Message: "Order confirmation email sent",
	}, nil
}

func validate(req domain.SendConfirmationRequest) error {
	switch {
	case strings.TrimSpace(req.Email) == "":
		return domain.ErrEmailRequired
	case strings.TrimSpace(req.CustomerName) == "":
		return domain.ErrCustomerNameRequired
	case strings.TrimSpace(req.OrderID) == "":
		return domain.ErrOrderIDRequired
	case strings.TrimSpace(req.OrderDate) == "":
		return domain.ErrOrderDateRequired
	case req.TotalAmount <= 0:
		return domain.ErrTotalRequired
	}
	return nil
}
