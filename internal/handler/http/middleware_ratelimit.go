// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/wishkeeper/internal/logger"
	"github.com/MKhiriev/wishkeeper/internal/utils"
)

// rateLimit throttles requests per caller. Authenticated requests are keyed
// by user ID so one abusive account cannot exhaust a shared NAT's budget;
// anonymous requests fall back to the client IP. Rejected requests get a 429
// with a Retry-After header in whole seconds.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := limiterKey(r)

		if !h.limiter.Allow(key) {
			retryAfter := int(math.Ceil(h.limiter.RetryAfter(key).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

			logger.FromRequest(r).Warn().
				Str("key", key).
				Int("retry_after", retryAfter).
				Msg("request rate limited")
			h.sendError(w, r, "too many requests", http.StatusTooManyRequests, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func limiterKey(r *http.Request) string {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return "user:" + strconv.FormatInt(userID, 10)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
