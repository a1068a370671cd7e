package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cam-scan/internal/adapter"
	"github.com/MKhiriev/go-cam-scan/internal/config"
	"github.com/MKhiriev/go-cam-scan/internal/discovery"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/service"
	"github.com/MKhiriev/go-cam-scan/internal/store"
	"github.com/MKhiriev/go-cam-scan/internal/tui"
	"github.com/MKhiriev/go-cam-scan/internal/workers"
	"github.com/MKhiriev/go-cam-scan/models"
)

// UI is the part of the terminal front end the runtime drives.
type UI interface {
	Run() error
	DeviceFound(found discovery.Found)
}

var _ Client = (*App)(nil)

type App struct {
	ctx       context.Context
	ui        UI
	discovery *discovery.Discovery
	workers   *workers.Workers
	storages  *store.ClientStorages

	logger *logger.Logger
}

// NewApp wires discovery into the terminal UI. storages may be nil when the
// thumbnail cache is unavailable; otherwise the App closes it on exit.
func NewApp(ctx context.Context, cfg *config.ClientConfig, services *service.ClientServices, storages *store.ClientStorages, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	ui, err := tui.New(ctx, services, cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(ctx, cfg, ui, storages, logger), nil
}

func newApp(ctx context.Context, cfg *config.ClientConfig, ui UI, storages *store.ClientStorages, logger *logger.Logger) *App {
	a := &App{
		ctx:      ctx,
		ui:       ui,
		storages: storages,
		logger:   logger,
	}

	newAdapter := func(address string) (adapter.DeviceAdapter, error) {
		return adapter.NewHTTPDeviceAdapter(address, cfg.Adapter, logger)
	}
	a.discovery = discovery.New(cfg.Discovery, cfg.Adapter.Addresses, newAdapter, a.onDeviceFound, logger)
	a.workers = workers.NewWorkers(a.discovery)

	return a
}

// onDeviceFound runs on the discovery goroutine. Searching ends with the
// first camera; Stop waits for that goroutine, so it is called from another.
func (a *App) onDeviceFound(found discovery.Found) {
	a.ui.DeviceFound(found)
	go a.discovery.Stop()
}

// Run implements [Client].
func (a *App) Run() error {
	a.workers.Run(a.ctx)
	defer a.workers.Stop()

	defer func() {
		if a.storages == nil {
			return
		}
		if err := a.storages.Close(); err != nil {
			a.logger.Error().Err(err).Msg("close client storages")
		}
	}()

	err := a.ui.Run()
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client interrupted")
		return nil
	}
	return err
}
