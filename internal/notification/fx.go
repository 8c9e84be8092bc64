package notification

import (
	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/notification/adapters/sendgrid"
	"github.com/paydesk/paydesk/internal/notification/domain"
	"github.com/paydesk/paydesk/internal/notification/service"
	"github.com/paydesk/paydesk/internal/observability/tracing"
	"go.uber.org/fx"
)

var Module = fx.Module("notification.service",
	fx.Provide(func(cfg config.Config) domain.MailSender {
		return sendgrid.New(cfg.SendGridAPIKey, cfg.SenderName, cfg.SenderEmail, tracing.WrapHTTPClient(nil))
	}),
	fx.Provide(service.NewService),
)
