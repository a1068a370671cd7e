package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cam-scan/internal/config"
	"github.com/MKhiriev/go-cam-scan/internal/device"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/progress"
	"github.com/MKhiriev/go-cam-scan/internal/scanner"
)

// ImagesFilter keeps known image files and files whose type is not known
// yet because their metadata has not been loaded.
func ImagesFilter(item device.Item) bool {
	return item.IsKnownImageType() || !item.MetadataLoaded()
}

// FilterByName resolves a configured scan filter name.
func FilterByName(name string) (scanner.Predicate, error) {
	switch name {
	case config.ScanFilterImages:
		return ImagesFilter, nil
	case config.ScanFilterAll:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScanFilter, name)
	}
}

type scanService struct {
	scanner *scanner.Scanner
	filter  scanner.Predicate

	logger *logger.Logger
}

func NewScanService(cfg config.ClientScan, logger *logger.Logger) (ScanService, error) {
	filter, err := FilterByName(cfg.Filter)
	if err != nil {
		return nil, err
	}

	return &scanService{
		scanner: scanner.New(logger),
		filter:  filter,
		logger:  logger,
	}, nil
}

func (s *scanService) Scan(ctx context.Context, camera device.Camera, done scanner.DoneFunc) *progress.Progress {
	return s.scanner.ScanForFiles(ctx, camera, s.filter, func(items []device.Item, err error) {
		done(items, mapDeviceError(err))
	})
}

func (s *scanService) Filter() scanner.Predicate {
	return s.filter
}
