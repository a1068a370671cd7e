package service

import (
	"context"

	"github.com/MKhiriev/go-cam-scan/internal/adapter"
	"github.com/MKhiriev/go-cam-scan/internal/device"
	"github.com/MKhiriev/go-cam-scan/internal/progress"
	"github.com/MKhiriev/go-cam-scan/internal/scanner"
)

// CameraService manages device sessions.
type CameraService interface {
	// Connect opens a session over adp. The session reads and writes
	// thumbnails through the client cache.
	// Transport failures are translated into the errors of this package.
	Connect(ctx context.Context, adp adapter.DeviceAdapter) (*device.Session, error)

	// ClearThumbnailCache removes every cached thumbnail of the session's
	// device and returns how many were dropped.
	// Returns ErrNoThumbnailCache when the client runs without a cache.
	ClearThumbnailCache(ctx context.Context, session *device.Session) (int64, error)
}

// ScanService lists the files of a connected camera.
type ScanService interface {
	// Scan walks every storage of camera with the configured filter. done is
	// called exactly once; see [scanner.Scanner.ScanForFiles] for when it is
	// called synchronously. The returned progress is nil when the camera
	// reports none.
	Scan(ctx context.Context, camera device.Camera, done scanner.DoneFunc) *progress.Progress

	// Filter returns the predicate scans use, nil when every file is kept.
	Filter() scanner.Predicate
}
