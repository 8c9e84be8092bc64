package observability

import (
	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/observability/logger"
	"github.com/paydesk/paydesk/internal/observability/tracing"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(func(cfg config.Config) logger.Config {
		return logger.Config{Environment: cfg.Environment}
	}),
	logger.Module,
	fx.Provide(func(cfg config.Config) tracing.Config {
		return tracing.Config{
			Enabled:       cfg.TracingEnabled,
			ServiceName:   "paydesk",
			Environment:   cfg.Environment,
			Endpoint:      cfg.TracingEndpoint,
			Protocol:      cfg.TracingProtocol,
			SamplingRatio: cfg.TracingSampling,
		}
	}),
	fx.Invoke(tracing.NewProvider),
)
