package service

import (
	"github.com/MKhiriev/go-cam-scan/internal/config"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/store"
)

type ClientServices struct {
	CameraService CameraService
	ScanService   ScanService
}

func NewClientServices(storages *store.ClientStorages, scanCfg config.ClientScan, logger *logger.Logger) (*ClientServices, error) {
	var cache store.ThumbnailRepository
	if storages != nil {
		cache = storages.ThumbnailRepository
	}

	scanSvc, err := NewScanService(scanCfg, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		CameraService: NewCameraService(cache, logger),
		ScanService:   scanSvc,
	}, nil
}
