// Package discovery finds devices by probing a configured list of addresses.
package discovery

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cam-scan/internal/adapter"
	"github.com/MKhiriev/go-cam-scan/internal/config"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/models"
)

// Found describes a device that answered a probe.
type Found struct {
	Address string
	Info    models.DeviceInfo
	Adapter adapter.DeviceAdapter
}

// AdapterFactory creates the transport used to probe one address.
type AdapterFactory func(address string) (adapter.DeviceAdapter, error)

// Discovery is a [workers.Worker]. It probes every configured address right
// away and then once per interval, reporting each address at most once for
// the lifetime of the Discovery value.
type Discovery struct {
	addresses  []string
	interval   time.Duration
	clientName string
	newAdapter AdapterFactory
	onFound    func(Found)
	logger     *logger.Logger

	mu     sync.Mutex
	found  map[string]bool
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates an idle Discovery. onFound is called from the probing
// goroutine and must not call Stop.
func New(cfg config.ClientDiscovery, addresses []string, newAdapter AdapterFactory, onFound func(Found), logger *logger.Logger) *Discovery {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	return &Discovery{
		addresses:  append([]string(nil), addresses...),
		interval:   interval,
		clientName: cfg.ClientName,
		newAdapter: newAdapter,
		onFound:    onFound,
		logger:     logger.WithField("client_name", cfg.ClientName),
		found:      make(map[string]bool),
	}
}

// Run implements [workers.Worker]. A running Discovery is restarted.
func (d *Discovery) Run(ctx context.Context) {
	d.Stop()

	d.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.wg.Add(1)
	d.mu.Unlock()

	d.logger.Info().Strs("addresses", d.addresses).Dur("interval", d.interval).Msg("discovery started")

	go func() {
		defer d.wg.Done()
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()

		for {
			d.probeAll(runCtx)
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop implements [workers.Worker].
func (d *Discovery) Stop() {
	d.mu.Lock()
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	d.wg.Wait()
	d.logger.Info().Msg("discovery stopped")
}

func (d *Discovery) probeAll(ctx context.Context) {
	for _, address := range d.addresses {
		if ctx.Err() != nil {
			return
		}
		if d.isFound(address) {
			continue
		}

		found, ok := d.probe(ctx, address)
		if !ok {
			continue
		}

		d.mu.Lock()
		d.found[address] = true
		d.mu.Unlock()

		d.logger.Info().Str("address", address).Str("device", found.Info.DisplayName()).Msg("device found")
		d.onFound(found)
	}
}

func (d *Discovery) probe(ctx context.Context, address string) (Found, bool) {
	adp, err := d.newAdapter(address)
	if err != nil {
		d.logger.Error().Err(err).Str("address", address).Msg("cannot probe address")
		return Found{}, false
	}

	info, err := adp.DeviceInfo(ctx)
	if err != nil {
		d.logger.Debug().Err(err).Str("address", address).Msg("no device at address")
		return Found{}, false
	}

	return Found{Address: address, Info: info, Adapter: adp}, true
}

func (d *Discovery) isFound(address string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.found[address]
}
