package invoice

import (
	"github.com/paydesk/paydesk/internal/invoice/render"
	"github.com/paydesk/paydesk/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewPDFRenderer),
	fx.Provide(service.NewService),
)
