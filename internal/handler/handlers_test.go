package handler

import (
	"testing"

	"github.com/MKhiriev/wishkeeper/internal/config"
	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer without dereferencing it, so nil is safe for
// construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers_HTTPAddressConfigured(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.Server.HTTPAddress = ":8080"

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err)
	require.NotNil(t, h)
	defer h.Close()
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestHandlers_CloseIsIdempotent verifies Close can run more than once: the
// shutdown path and deferred cleanup may both reach it.
func TestHandlers_CloseIsIdempotent(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.Server.HTTPAddress = ":8080"

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())
	require.NoError(t, err)

	h.Close()
	h.Close()
}

// TestNewHandlers_NoAddress verifies that when no HTTP address is configured,
// NewHandlers returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	cfg := &config.StructuredConfig{}

	h, err := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_IndependentInstances verifies that two calls to NewHandlers
// produce independent *Handlers instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := &config.StructuredConfig{}
	cfg.Server.HTTPAddress = ":8080"

	h1, err1 := NewHandlers(newTestServices(), cfg, newTestLogger())
	h2, err2 := NewHandlers(newTestServices(), cfg, newTestLogger())

	require.NoError(t, err1)
	require.NoError(t, err2)
	defer h1.Close()
	defer h2.Close()
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
