// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-cam-scan/internal/adapter"
)

// mapDeviceError translates the adapter's transport error into a service
// error while keeping the original in the chain.
func mapDeviceError(err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error

	switch {
	case errors.Is(err, adapter.ErrDeviceBusy):
		return fmt.Errorf("%w: %w", ErrDeviceBusy, err)
	case errors.Is(err, adapter.ErrIncorrectCommandCategory):
		return fmt.Errorf("%w: %w", ErrFilesystemUnavailable, err)
	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrDeviceFailure, err)
	case errors.As(err, &netErr):
		return fmt.Errorf("%w: %w", ErrDeviceUnreachable, err)
	}

	return err
}
