// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-cam-scan/internal/logger"
)

// serialize admits one storage command at a time. A command arriving while
// another runs gets 503 Service Unavailable without waiting.
func (h *Handler) serialize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case h.busy <- struct{}{}:
		default:
			h.metrics.RecordBusy()
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("device busy")
			http.Error(w, "device busy", http.StatusServiceUnavailable)
			return
		}
		defer func() { <-h.busy }()

		next.ServeHTTP(w, r)
	})
}

// withLatency delays the command by the configured latency. A request whose
// context ends first is dropped.
func (h *Handler) withLatency(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.latency > 0 {
			timer := time.NewTimer(h.latency)
			defer timer.Stop()

			select {
			case <-timer.C:
			case <-r.Context().Done():
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
