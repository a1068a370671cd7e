package http

import (
	"time"

	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/metrics"
	"github.com/MKhiriev/go-cam-scan/models"
)

// Camera is the device behind the API.
type Camera interface {
	Info() models.DeviceInfo
	Categories() models.CommandCategories
	StorageInfos() ([]models.StorageInfo, error)
	Children(id string) ([]models.ItemInfo, error)
	Metadata(id string) (models.ItemInfo, error)
	Thumbnail(id string) ([]byte, error)
}

type Handler struct {
	camera  Camera
	metrics *metrics.Metrics

	// latency is added to every storage command.
	latency time.Duration
	busy    chan struct{}

	logger *logger.Logger
}

func NewHandler(camera Camera, metrics *metrics.Metrics, latency time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Dur("latency", latency).Msg("http handler created")
	return &Handler{
		camera:  camera,
		metrics: metrics,
		latency: latency,
		busy:    make(chan struct{}, 1),
		logger:  logger,
	}
}
