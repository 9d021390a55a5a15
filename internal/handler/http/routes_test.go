// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/wishkeeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoutes_PublicLogoutNeedsNoSession exercises a public route through the
// full middleware chain.
func TestRoutes_PublicLogoutNeedsNoSession(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.RemoteAddr = "1.2.3.4:5678"
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestRoutes_SessionRoutesRejectAnonymous verifies the auth middleware guards
// the session group.
func TestRoutes_SessionRoutesRejectAnonymous(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/lists", nil)
	req.RemoteAddr = "1.2.3.4:5678"
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestRoutes_UnsupportedMethodReads404 verifies that probing a known path
// with an unregistered method does not leak the route's existence.
func TestRoutes_UnsupportedMethodReads404(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPatch, "/api/lists", nil)
	req.RemoteAddr = "1.2.3.4:5678"
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestRoutes_TraceIDHeader verifies every response carries a trace id.
func TestRoutes_TraceIDHeader(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.RemoteAddr = "1.2.3.4:5678"
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

// TestRoutes_IncomingTraceIDPreserved verifies an upstream trace id is echoed
// rather than replaced.
func TestRoutes_IncomingTraceIDPreserved(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.RemoteAddr = "1.2.3.4:5678"
	req.Header.Set("X-Trace-ID", "upstream-trace")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-trace", rec.Header().Get("X-Trace-ID"))
}
