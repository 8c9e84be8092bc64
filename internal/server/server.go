package server

import (
	"context"
	"net"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/paydesk/paydesk/internal/config"
	invoicedomain "github.com/paydesk/paydesk/internal/invoice/domain"
	notificationdomain "github.com/paydesk/paydesk/internal/notification/domain"
	"github.com/paydesk/paydesk/internal/observability/logger"
	paymentdomain "github.com/paydesk/paydesk/internal/payment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	cfg             config.Config
	log             *zap.Logger
	paymentSvc      paymentdomain.Service
	invoiceSvc      invoicedomain.Service
	notificationSvc notificationdomain.Service
}

type Params struct {
	fx.In

	Cfg             config.Config
	Log             *zap.Logger
	PaymentSvc      paymentdomain.Service
	InvoiceSvc      invoicedomain.Service
	NotificationSvc notificationdomain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:             p.Cfg,
		log:             p.Log.Named("server"),
		paymentSvc:      p.PaymentSvc,
		invoiceSvc:      p.InvoiceSvc,
		notificationSvc: p.NotificationSvc,
	}
}

func NewEngine(cfg config.Config, node *snowflake.Node) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		Node:      node,
		SkipPaths: []string{"/healthz"},
	}))
	engine.Use(cors.New(corsConfig(cfg)))
	if cfg.RequestBodyLimit > 0 {
		engine.Use(func(c *gin.Context) {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.RequestBodyLimit)
			c.Next()
		})
	}
	if cfg.RateLimit > 0 {
		engine.Use(rateLimitMiddleware(newRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)))
	}
	return engine
}

func corsConfig(cfg config.Config) cors.Config {
	out := cors.DefaultConfig()
	out.AllowHeaders = append(out.AllowHeaders, "Authorization", "Content-Type", "X-Request-Id")
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		out.AllowAllOrigins = true
		return out
	}
	out.AllowOrigins = cfg.AllowedOrigins
	return out
}

// RegisterRoutes maps the HTTP surface onto the services.
func (s *Server) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/healthz", s.Health)
	engine.POST("/create-order", s.CreateOrder)
	engine.POST("/verify-payment", s.VerifyPayment)
	engine.POST("/create-invoice", s.CreateInvoice)
	engine.POST("/send-email", s.SendEmail)
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RunHTTP starts the listener on fx startup and drains it on shutdown.
func RunHTTP(lc fx.Lifecycle, engine *gin.Engine, s *Server, cfg config.Config, log *zap.Logger) {
	s.RegisterRoutes(engine)

	srv := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        engine,
		MaxHeaderBytes: 1 << 20,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
