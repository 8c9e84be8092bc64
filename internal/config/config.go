package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the process reads, populated once at startup.
// Gateway and email credentials are intentionally not validated here; a
// missing key surfaces as an upstream failure on the first outbound call.
type Config struct {
	Environment string
	HTTPAddr    string

	GatewayKeyID     string
	GatewayKeySecret string
	Currency         string

	SendGridAPIKey string
	SenderName     string
	SenderEmail    string
	OrderExpiry    time.Duration

	RateLimit       int
	RateLimitWindow time.Duration

	TracingEnabled   bool
	TracingEndpoint  string
	TracingProtocol  string
	TracingSampling  float64
	AllowedOrigins   []string
	ShutdownTimeout  time.Duration
	RequestBodyLimit int64
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Environment: getEnv("APP_ENV", "development"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),

		GatewayKeyID:     os.Getenv("RAZORPAY_API_KEY"),
		GatewayKeySecret: os.Getenv("RAZORPAY_API_SECRET"),
		Currency:         getEnv("CURRENCY", "INR"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		SenderName:     getEnv("SENDER_NAME", "Paydesk"),
		SenderEmail:    getEnv("SENDER_EMAIL", "no-reply@paydesk.local"),
		OrderExpiry:    getDuration("ORDER_EXPIRY", 15*time.Minute),

		RateLimit:       getInt("RATE_LIMIT", 60),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", time.Minute),

		TracingEnabled:   getBool("TRACING_ENABLED", false),
		TracingEndpoint:  os.Getenv("OTLP_ENDPOINT"),
		TracingProtocol:  getEnv("OTLP_PROTOCOL", "grpc"),
		TracingSampling:  getFloat("TRACING_SAMPLING_RATIO", 0.1),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "*")),
		ShutdownTimeout:  getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		RequestBodyLimit: int64(getInt("REQUEST_BODY_LIMIT", 1<<20)),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func getFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

func getBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
