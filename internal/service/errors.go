package service

import "errors"

var (
	ErrDeviceUnreachable     = errors.New("device is unreachable")
	ErrDeviceBusy            = errors.New("device is busy, try again")
	ErrFilesystemUnavailable = errors.New("device does not allow browsing its storage right now")
	ErrDeviceFailure         = errors.New("device reported an internal error")

	ErrNoThumbnailCache  = errors.New("thumbnail cache is not configured")
	ErrUnknownScanFilter = errors.New("unknown scan filter")
)
