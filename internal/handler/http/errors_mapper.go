// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/wishkeeper/internal/service"
	"github.com/MKhiriev/wishkeeper/internal/store"
)

// mapServiceError translates a service-layer error into an HTTP status and a
// client-facing message. Ownership failures come back from the service layer
// as not-found sentinels, so non-owners receive the same 404 an absent
// resource would produce.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrWrongCredentials):
		return http.StatusUnauthorized, "wrong email or password"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return http.StatusUnauthorized, "session is expired or invalid"
	case errors.Is(err, service.ErrWrongPassword):
		return http.StatusForbidden, "password does not match"
	case errors.Is(err, service.ErrListNotPublic):
		return http.StatusForbidden, "this list is not public"
	case errors.Is(err, service.ErrClaimTokenMismatch):
		return http.StatusForbidden, "secret token does not match"
	case errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound, "user was not found"
	case errors.Is(err, store.ErrListNotFound):
		return http.StatusNotFound, "list was not found"
	case errors.Is(err, store.ErrItemNotFound):
		return http.StatusNotFound, "item was not found"
	case errors.Is(err, store.ErrClaimNotFound):
		return http.StatusNotFound, "claim was not found"
	case errors.Is(err, service.ErrFetchTimeout):
		return http.StatusRequestTimeout, "fetching the page took too long"
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return http.StatusConflict, "email is already registered"
	case errors.Is(err, store.ErrItemAlreadyClaimed):
		return http.StatusConflict, "item is already claimed"
	case errors.Is(err, service.ErrFetchFailed):
		return http.StatusBadGateway, "could not fetch the page"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// handleServiceError maps err and writes the error envelope.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode, message := mapServiceError(err)
	h.sendError(w, r, message, statusCode, err)
}
