package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-cam-scan/models"
)

const (
	defaultServerAddress  = "127.0.0.1:8080"
	defaultServerTimeout  = 30 * time.Second
	defaultManufacturer   = "go-cam-scan"
	defaultModel          = "Simulator"
	defaultSerial         = "SIM-0001"
	defaultAuthNumberSize = 6
)

// DeviceServer holds the simulator's listen settings.
type DeviceServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// DeviceSettings describes the simulated camera with every field parsed.
type DeviceSettings struct {
	Info          models.DeviceInfo
	StorageDirs   []string
	Categories    models.CommandCategories
	Latency       time.Duration
	EagerMetadata bool
	ReportCatalog bool
}

// DeviceConfig is the simulator's view of [StructuredConfig].
type DeviceConfig struct {
	Server DeviceServer
	Device DeviceSettings
}

// GetDeviceConfig loads the merged configuration from env, args and the
// optional JSON file, fills in defaults and validates the simulator view.
func GetDeviceConfig(args []string) (*DeviceConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	deviceCfg, err := newDeviceConfig(cfg)
	if err != nil {
		return nil, err
	}

	return deviceCfg, deviceCfg.validate()
}

func newDeviceConfig(cfg *StructuredConfig) (*DeviceConfig, error) {
	categoryNames := cfg.Device.Categories
	if len(categoryNames) == 0 {
		categoryNames = []string{"filesystem_access"}
	}
	categories, err := models.ParseCommandCategories(categoryNames)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeviceConfigs, err)
	}

	auth, err := parseAuth(cfg.Device.Auth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeviceConfigs, err)
	}

	deviceCfg := &DeviceConfig{
		Server: DeviceServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Device: DeviceSettings{
			Info: models.DeviceInfo{
				Manufacturer: cfg.Device.Manufacturer,
				Model:        cfg.Device.Model,
				SerialNumber: cfg.Device.Serial,
				Auth:         auth,
			},
			StorageDirs:   cfg.Device.StorageDirs,
			Categories:    categories,
			Latency:       cfg.Device.Latency,
			EagerMetadata: cfg.Device.EagerMetadata,
			ReportCatalog: cfg.Device.ReportCatalog,
		},
	}

	if deviceCfg.Server.HTTPAddress == "" {
		deviceCfg.Server.HTTPAddress = defaultServerAddress
	}
	if deviceCfg.Server.RequestTimeout == 0 {
		deviceCfg.Server.RequestTimeout = defaultServerTimeout
	}
	if deviceCfg.Device.Info.Manufacturer == "" {
		deviceCfg.Device.Info.Manufacturer = defaultManufacturer
	}
	if deviceCfg.Device.Info.Model == "" {
		deviceCfg.Device.Info.Model = defaultModel
	}
	if deviceCfg.Device.Info.SerialNumber == "" {
		deviceCfg.Device.Info.SerialNumber = defaultSerial
	}

	return deviceCfg, nil
}

// parseAuth converts "kind[:argument]" into the wire form of a pairing
// method. An empty string means no pairing.
func parseAuth(raw string) (models.AuthRequirement, error) {
	kind, arg, _ := strings.Cut(strings.TrimSpace(raw), ":")

	switch kind {
	case models.AuthKindNone:
		return models.AuthRequirement{}, nil
	case models.AuthKindInteractAtDevice:
		return models.AuthRequirement{Kind: kind}, nil
	case models.AuthKindUsernamePassword:
		return models.AuthRequirement{Kind: kind, Realm: arg}, nil
	case models.AuthKindNumericCode:
		digits := defaultAuthNumberSize
		if arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 {
				return models.AuthRequirement{}, fmt.Errorf("invalid code length %q", arg)
			}
			digits = n
		}
		return models.AuthRequirement{Kind: kind, Digits: digits}, nil
	default:
		return models.AuthRequirement{}, fmt.Errorf("unknown auth kind %q", kind)
	}
}
