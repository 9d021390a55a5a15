package handler

import (
	"github.com/MKhiriev/wishkeeper/internal/config"
	"github.com/MKhiriev/wishkeeper/internal/handler/http"
	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}

// Close releases background resources held by the transport handlers.
func (h *Handlers) Close() {
	if h.HTTP != nil {
		h.HTTP.Close()
	}
}
