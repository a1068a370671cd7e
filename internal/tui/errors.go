// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-cam-scan/internal/scanner"
	"github.com/MKhiriev/go-cam-scan/internal/service"
)

func humanizeDeviceError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrDeviceUnreachable):
		return "Camera is not reachable"
	case errors.Is(err, service.ErrDeviceBusy):
		return "Camera is busy, press r to try again"
	case errors.Is(err, service.ErrFilesystemUnavailable):
		return "Camera does not allow browsing its storage in the current mode"
	case errors.Is(err, scanner.ErrNotAvailable):
		return "No readable storage on the camera"
	case errors.Is(err, service.ErrNoThumbnailCache):
		return "Thumbnail cache is disabled"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Camera is not reachable"
	}

	return err.Error()
}
