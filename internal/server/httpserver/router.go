// Package httpserver provides the HTTP/HTTPS server for Numera.
package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/yndnr/numera-go/internal/core/service"
	"github.com/yndnr/numera-go/internal/server/httpserver/handler"
	"github.com/yndnr/numera-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Calculator backs the service endpoints.
	Calculator *service.CalculatorService

	// Metrics enables GET /metrics and per-route request metrics when set.
	Metrics *metric.Registry

	// MetricsAuthToken, when set, is required as a bearer token on /metrics.
	MetricsAuthToken string

	// Logger for request logging.
	Logger *slog.Logger

	// CORSAllowedOrigins is the list of allowed CORS origins (empty = no CORS headers).
	CORSAllowedOrigins []string

	// GlobalRateLimit is the rate limit per client IP in requests/second
	// (zero disables it).
	GlobalRateLimit float64

	// EnableAudit enables audit logging for all requests.
	EnableAudit bool
}

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	var observer service.Observer
	if cfg.Metrics != nil {
		observer = cfg.Metrics
	}
	calc := cfg.Calculator
	if calc == nil {
		calc = service.NewCalculatorService(observer)
	}

	h := handler.New(calc, observer, log)

	middlewares := []Middleware{Recover(log), RequestID()}
	if len(cfg.CORSAllowedOrigins) > 0 {
		middlewares = append(middlewares, CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.GlobalRateLimit > 0 {
		middlewares = append(middlewares, RateLimit(NewRateLimiter(cfg.GlobalRateLimit)))
	}
	if cfg.EnableAudit {
		middlewares = append(middlewares, Audit(log))
	}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, Metrics(cfg.Metrics))
	}

	mux := http.NewServeMux()
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(),
			Recover(log),
			BearerAuth(cfg.MetricsAuthToken),
		))
	}
	mux.Handle("/", Chain(h, middlewares...))

	return mux
}

// DefaultRouterConfig returns default router configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		GlobalRateLimit: 100,
		EnableAudit:     true,
	}
}
