// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, tracing, logging, and rate limiting
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"time"

	"github.com/MKhiriev/wishkeeper/internal/config"
	"github.com/MKhiriev/wishkeeper/internal/limiter"
	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/service"
)

// sweepInterval is how often the rate limiter drops idle buckets so the
// per-key map cannot grow without bound.
const sweepInterval = time.Minute

// Handler carries the dependencies shared by every route handler and
// middleware: the service layer, the rate limiter, and the cookie/response
// policy derived from configuration.
type Handler struct {
	services  *service.Services
	limiter   *limiter.KeyedLimiter
	stopSweep func()

	// cookieName is the name of the HTTP-only session cookie.
	cookieName string

	// cookieMaxAge mirrors the session token lifetime.
	cookieMaxAge time.Duration

	// production suppresses error details in API responses and marks the
	// session cookie Secure.
	production bool

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set and starts the rate limiter's
// background sweeper. Callers release it with Close.
func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	keyedLimiter := limiter.New(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)

	return &Handler{
		services:     services,
		limiter:      keyedLimiter,
		stopSweep:    keyedLimiter.StartSweeping(sweepInterval),
		cookieName:   cfg.App.CookieName,
		cookieMaxAge: cfg.App.TokenDuration,
		production:   cfg.IsProduction(),
		logger:       logger,
	}
}

// Close stops the rate limiter's background sweeper. Safe to call more than
// once.
func (h *Handler) Close() {
	h.stopSweep()
}
