// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	for _, address := range cfg.Adapter.Addresses {
		if strings.TrimSpace(address) == "" {
			return ErrInvalidAdapterConfigs
		}
	}

	if cfg.Discovery.Interval <= 0 {
		return ErrInvalidDiscoveryConfigs
	}

	if cfg.Scan.Filter != ScanFilterImages && cfg.Scan.Filter != ScanFilterAll {
		return ErrInvalidScanConfigs
	}
	if cfg.Scan.Slots < 1 {
		return ErrInvalidScanConfigs
	}

	return nil
}

func (cfg *DeviceConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if len(cfg.Device.StorageDirs) == 0 || cfg.Device.Latency < 0 {
		return ErrInvalidDeviceConfigs
	}
	for _, dir := range cfg.Device.StorageDirs {
		if strings.TrimSpace(dir) == "" {
			return ErrInvalidDeviceConfigs
		}
	}

	return nil
}
