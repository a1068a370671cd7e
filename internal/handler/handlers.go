package handler

import (
	"github.com/MKhiriev/go-cam-scan/internal/config"
	"github.com/MKhiriev/go-cam-scan/internal/handler/http"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/metrics"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(camera http.Camera, metrics *metrics.Metrics, cfg config.DeviceConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(camera, metrics, cfg.Device.Latency, logger),
	}, nil
}
