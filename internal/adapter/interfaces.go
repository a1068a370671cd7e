// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to a camera.
//
// The primary abstraction is [DeviceAdapter], which decouples the device
// session from the protocol. The package ships an HTTP/REST implementation
// ([NewHTTPDeviceAdapter]) that speaks the API served by the device
// simulator.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] without knowing the
// transport (e.g. [ErrIncorrectCommandCategory] for 409, [ErrNoThumbnail]
// for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cam-scan/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/device_adapter_mock.go -package=mock

// DeviceAdapter is a single-device remote API. Implementations are
// responsible for serialisation and for mapping transport failures to the
// sentinel errors of this package. They do not serialise calls themselves;
// the device session does.
type DeviceAdapter interface {
	// Address returns the normalised base address of the device.
	Address() string

	// DeviceInfo fetches the identity of the device and the pairing method
	// it expects.
	DeviceInfo(ctx context.Context) (models.DeviceInfo, error)

	// CommandCategories fetches the modes the device currently allows.
	CommandCategories(ctx context.Context) (models.CommandCategories, error)

	// StorageDevices lists the storages in the order the device reports them.
	StorageDevices(ctx context.Context) ([]models.StorageInfo, error)

	// ListChildren returns the direct children of folderID in device order.
	// File entries may arrive without metadata.
	ListChildren(ctx context.Context, folderID string) ([]models.ItemInfo, error)

	// LoadMetadata returns itemID with its metadata populated.
	LoadMetadata(ctx context.Context, itemID string) (models.ItemInfo, error)

	// FetchThumbnail returns the encoded thumbnail of itemID. Returns
	// [ErrNoThumbnail] (wrapped) when the device cannot produce one.
	FetchThumbnail(ctx context.Context, itemID string) ([]byte, error)
}
