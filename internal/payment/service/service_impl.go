package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/payment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Cfg     config.Config
	Gateway domain.GatewayAdapter
}

type Service struct {
	log      *zap.Logger
	gateway  domain.GatewayAdapter
	currency string
}

func NewService(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("payment.service"),
		gateway:  p.Gateway,
		currency: p.Cfg.Currency,
	}
}

func (s *Service) CreateOrder(ctx context.Context, amount float64) (*domain.CreateOrderResponse, error) {
	if amount <= 0 {
		return nil, domain.ErrAmountRequired
	}

	amountMinor := int64(math.Round(amount * 100))
	receipt := uuid.NewString()

	orderID, err := s.gateway.CreateOrder(ctx, amountMinor, s.currency, receipt)
	if err != nil {
		s.log.Error("gateway order creation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}

	s.log.Info("order created",
		zap.String("order_id", orderID),
		zap.String("receipt", receipt),
		zap.Int64("amount_minor", amountMinor),
	)
	return &domain.CreateOrderResponse{
		OrderID:     orderID,
		Receipt:     receipt,
		AmountMinor: amountMinor,
		Currency:    s.currency,
	}, nil
}

func (s *Service) VerifyPayment(ctx context.Context, paymentID string) (*domain.VerifyPaymentResponse, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, domain.ErrPaymentIDRequired
	}

	status, err := s.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		s.log.Error("gateway payment fetch failed",
			zap.String("payment_id", paymentID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}

	// Any well-formed non-captured status is a plain failure, not an error.
	if status != domain.StatusCaptured {
		return &domain.VerifyPaymentResponse{Success: false, Message: "Payment failed!"}, nil
	}
	return &domain.VerifyPaymentResponse{Success: true, Message: "Payment verified successfully!"}, nil
}
