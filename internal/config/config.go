// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// scanning client and the device simulator. It is populated by merging
// environment variables, command-line flags and an optional JSON file; each
// binary then takes its own validated view (see [GetClientConfig] and
// [GetDeviceConfig]).
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the client's device transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the client's local thumbnail cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Discovery controls how the client looks for devices.
	Discovery Discovery `envPrefix:"DISCOVERY_"`

	// Scan controls what the client lists and how many rows it shows.
	Scan Scan `envPrefix:"SCAN_"`

	// Log holds client log output settings.
	Log Log `envPrefix:"LOG_"`

	// Server holds the simulator's listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Device describes the camera the simulator pretends to be.
	Device Device `envPrefix:"DEVICE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds outbound device transport settings.
type Adapter struct {
	// Addresses lists the device addresses probed by discovery
	// (e.g. "127.0.0.1:8080").
	// Env: ADAPTER_ADDRESSES (comma separated)
	Addresses []string `env:"ADDRESSES" envSeparator:","`

	// RequestTimeout bounds every single device request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the client's persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite thumbnail cache location.
type DB struct {
	// DSN is the SQLite file path (e.g. "thumbnails.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Discovery configures device probing.
type Discovery struct {
	// Interval between probe rounds.
	// Env: DISCOVERY_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// ClientName is shown in logs and announced to devices.
	// Env: DISCOVERY_CLIENT_NAME
	ClientName string `env:"CLIENT_NAME"`
}

// Scan configures the listing.
type Scan struct {
	// Filter is "images" (known image types and items without metadata) or
	// "all".
	// Env: SCAN_FILTER
	Filter string `env:"FILTER"`

	// Slots is the number of rows the browser keeps bound at once.
	// Env: SCAN_SLOTS
	Slots int `env:"SLOTS"`
}

// Log configures client log output.
type Log struct {
	// File is where the terminal client writes its logs.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Server holds the simulator's inbound transport settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Device describes the simulated camera.
type Device struct {
	Manufacturer string `env:"MANUFACTURER"`
	Model        string `env:"MODEL"`
	Serial       string `env:"SERIAL"`

	// StorageDirs are served as storage devices, one per directory.
	// Env: DEVICE_STORAGE_DIRS (comma separated)
	StorageDirs []string `env:"STORAGE_DIRS" envSeparator:","`

	// Categories are the command categories the device starts in
	// (filesystem_access, remote_shooting).
	// Env: DEVICE_CATEGORIES (comma separated)
	Categories []string `env:"CATEGORIES" envSeparator:","`

	// Latency is added to every filesystem command.
	// Env: DEVICE_LATENCY
	Latency time.Duration `env:"LATENCY"`

	// EagerMetadata makes listings carry metadata for files.
	// Env: DEVICE_EAGER_METADATA
	EagerMetadata bool `env:"EAGER_METADATA"`

	// ReportCatalog makes storages report their folder count.
	// Env: DEVICE_REPORT_CATALOG
	ReportCatalog bool `env:"REPORT_CATALOG"`

	// Auth is the pairing method the device asks for, written as
	// "kind[:argument]", e.g. "numeric_code:6" or "username_password:cloud".
	// Env: DEVICE_AUTH
	Auth string `env:"AUTH"`
}

// GetStructuredConfig loads and merges configuration from all sources, in
// priority order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
