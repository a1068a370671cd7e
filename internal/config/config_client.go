package config

import (
	"fmt"
	"time"
)

// Scan filter names.
const (
	ScanFilterImages = "images"
	ScanFilterAll    = "all"
)

const (
	defaultDeviceAddress     = "127.0.0.1:8080"
	defaultAdapterTimeout    = 10 * time.Second
	defaultDiscoveryInterval = 2 * time.Second
	defaultClientName        = "go-cam-scan"
	defaultScanSlots         = 12
	defaultThumbnailDSN      = "thumbnails.db"
)

// ClientAdapter holds network settings used by the device transport layer.
type ClientAdapter struct {
	// Addresses are the device addresses discovery probes.
	Addresses []string
	// RequestTimeout bounds every device request.
	RequestTimeout time.Duration
}

// ClientDB contains local thumbnail cache settings.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientDiscovery contains discovery settings.
type ClientDiscovery struct {
	Interval   time.Duration
	ClientName string
}

// ClientScan contains listing settings.
type ClientScan struct {
	Filter string
	Slots  int
}

// ClientLog contains client log settings.
type ClientLog struct {
	File string
}

// ClientConfig is the scanning client's view of [StructuredConfig].
type ClientConfig struct {
	Adapter   ClientAdapter
	Storage   ClientStorage
	Discovery ClientDiscovery
	Scan      ClientScan
	Log       ClientLog
}

// GetClientConfig loads the merged configuration from env, args and the
// optional JSON file, fills in defaults and validates the client view.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			Addresses:      cfg.Adapter.Addresses,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Discovery: ClientDiscovery{
			Interval:   cfg.Discovery.Interval,
			ClientName: cfg.Discovery.ClientName,
		},
		Scan: ClientScan{
			Filter: cfg.Scan.Filter,
			Slots:  cfg.Scan.Slots,
		},
		Log: ClientLog{File: cfg.Log.File},
	}

	if len(clientCfg.Adapter.Addresses) == 0 {
		clientCfg.Adapter.Addresses = []string{defaultDeviceAddress}
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = defaultThumbnailDSN
	}
	if clientCfg.Discovery.Interval == 0 {
		clientCfg.Discovery.Interval = defaultDiscoveryInterval
	}
	if clientCfg.Discovery.ClientName == "" {
		clientCfg.Discovery.ClientName = defaultClientName
	}
	if clientCfg.Scan.Filter == "" {
		clientCfg.Scan.Filter = ScanFilterImages
	}
	if clientCfg.Scan.Slots == 0 {
		clientCfg.Scan.Slots = defaultScanSlots
	}

	return clientCfg
}
