package service

import (
	"context"

	"github.com/MKhiriev/go-cam-scan/internal/adapter"
	"github.com/MKhiriev/go-cam-scan/internal/device"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/store"
)

type cameraService struct {
	cache store.ThumbnailRepository

	logger *logger.Logger
}

// NewCameraService creates a CameraService. cache may be nil, in which case
// thumbnails always come from the device.
func NewCameraService(cache store.ThumbnailRepository, logger *logger.Logger) CameraService {
	return &cameraService{
		cache:  cache,
		logger: logger,
	}
}

func (s *cameraService) Connect(ctx context.Context, adp adapter.DeviceAdapter) (*device.Session, error) {
	log := s.logger.WithField("device_address", adp.Address())

	session, err := device.Open(ctx, adp, s.cache, log)
	if err != nil {
		log.Error().Err(err).Msg("connect failed")
		return nil, mapDeviceError(err)
	}

	return session, nil
}

func (s *cameraService) ClearThumbnailCache(ctx context.Context, session *device.Session) (int64, error) {
	if s.cache == nil {
		return 0, ErrNoThumbnailCache
	}

	removed, err := s.cache.PurgeDevice(ctx, session.CacheKey())
	if err != nil {
		return 0, err
	}

	s.logger.Info().Str("device", session.CacheKey()).Int64("removed", removed).Msg("thumbnail cache cleared")
	return removed, nil
}
