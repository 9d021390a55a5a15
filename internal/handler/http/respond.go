// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/utils"
)

// successEnvelope wraps every successful API response.
type successEnvelope struct {
	Success    bool `json:"success"`
	Data       any  `json:"data"`
	StatusCode int  `json:"statusCode"`
}

// errorEnvelope wraps every failed API response. Details carries the
// underlying error text and is omitted in production.
type errorEnvelope struct {
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
	Details    string `json:"details,omitempty"`
}

func (h *Handler) sendSuccess(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	envelope := successEnvelope{
		Success:    true,
		Data:       data,
		StatusCode: statusCode,
	}
	if _, err := utils.WriteJSON(w, envelope, statusCode); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("writing response body")
	}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, message string, statusCode int, cause error) {
	envelope := errorEnvelope{
		Error:      message,
		StatusCode: statusCode,
	}
	if cause != nil && !h.production {
		envelope.Details = cause.Error()
	}

	if statusCode >= http.StatusInternalServerError {
		logger.FromRequest(r).Error().Err(cause).Int("status", statusCode).Msg(message)
	}

	if _, err := utils.WriteJSON(w, envelope, statusCode); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("writing response body")
	}
}
