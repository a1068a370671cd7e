package config

import "errors"

// Validation errors returned when a configuration view is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid device transport settings
	// (for example, a blank address or a non-positive timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid thumbnail cache settings
	// (for example, an in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidDiscoveryConfigs indicates a non-positive probe interval.
	ErrInvalidDiscoveryConfigs = errors.New("invalid discovery configuration")
	// ErrInvalidScanConfigs indicates an unknown filter or slot count below one.
	ErrInvalidScanConfigs = errors.New("invalid scan configuration")
	// ErrInvalidServerConfigs indicates invalid simulator listen settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidDeviceConfigs indicates an invalid simulated device
	// (no storage directories, unknown categories or auth kind).
	ErrInvalidDeviceConfigs = errors.New("invalid device configuration")
)
