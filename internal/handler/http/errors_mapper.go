// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cam-scan/internal/simulator"
)

// errorStatusMap mirrors the statuses the client adapter decodes.
var errorStatusMap = map[error]int{
	ErrMissingItemID:                    http.StatusBadRequest,
	simulator.ErrInvalidItemID:          http.StatusBadRequest,
	simulator.ErrNotAFolder:             http.StatusBadRequest,
	simulator.ErrItemNotFound:           http.StatusNotFound,
	simulator.ErrFilesystemAccessDenied: http.StatusConflict,
	simulator.ErrNoThumbnail:            http.StatusUnprocessableEntity,
	simulator.ErrNotAFile:               http.StatusUnprocessableEntity,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
