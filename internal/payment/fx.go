package payment

import (
	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/payment/adapters/razorpay"
	"github.com/paydesk/paydesk/internal/payment/domain"
	"github.com/paydesk/paydesk/internal/payment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("payment.service",
	fx.Provide(func(cfg config.Config) domain.GatewayAdapter {
		return razorpay.New(cfg.GatewayKeyID, cfg.GatewayKeySecret)
	}),
	fx.Provide(service.NewService),
)
