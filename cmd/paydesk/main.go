package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/paydesk/paydesk/internal/clock"
	"github.com/paydesk/paydesk/internal/config"
	"github.com/paydesk/paydesk/internal/invoice"
	"github.com/paydesk/paydesk/internal/notification"
	"github.com/paydesk/paydesk/internal/observability"
	"github.com/paydesk/paydesk/internal/payment"
	"github.com/paydesk/paydesk/internal/server"
	"go.uber.org/fx"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		clock.Module,

		payment.Module,
		notification.Module,
		invoice.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
