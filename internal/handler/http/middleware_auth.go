// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/service"
	"github.com/MKhiriev/wishkeeper/internal/utils"
)

// auth is an HTTP middleware that enforces session authentication.
//
// The session token is read from the HTTP-only session cookie first; when the
// cookie is absent the "Authorization: Bearer <token>" header is accepted as
// a fallback for non-browser clients. The token is validated via
// [service.AuthService.ParseToken] and — on success — the authenticated
// user's ID is stored in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when no token is
// presented ([ErrNoSessionPresented]), when the Authorization header cannot
// be parsed, or when the token is expired or otherwise invalid.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := h.sessionToken(r)
		if err != nil {
			log.Err(err).Send()
			h.sendError(w, r, err.Error(), http.StatusUnauthorized, nil)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
				log.Err(err).Msg("session token rejected")
				h.sendError(w, r, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized, err)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				h.sendError(w, r, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized, err)
				return
			}
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		// Best-effort activity tracking; failures never block the request.
		h.services.UserService.TouchLastActive(ctx, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionToken extracts the raw session token from the request: the session
// cookie when present, the Authorization header otherwise.
func (h *Handler) sessionToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		if cookie.Value == "" {
			return "", ErrEmptyToken
		}
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionPresented
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
