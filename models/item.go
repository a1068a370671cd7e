// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ItemInfo is the wire representation of a single entry of a device
// filesystem, either a file or a folder.
//
// Devices are lazy: a listing may return file entries whose metadata has not
// been read yet. In that case MetadataLoaded is false and Name, Size,
// CreatedAt and KnownImageType carry zero values until the metadata endpoint
// is queried for the item.
type ItemInfo struct {
	// ID is the device-assigned identifier of the entry. It is opaque to the
	// client and only ever passed back to the device.
	ID string `json:"id"`

	// StorageID identifies the storage device the entry lives on.
	StorageID string `json:"storage_id"`

	// Name is the display name of the entry (file or folder name).
	Name string `json:"name,omitempty"`

	// IsFolder reports whether the entry can have children.
	IsFolder bool `json:"is_folder"`

	// Size is the file size in bytes. Always zero for folders.
	Size int64 `json:"size,omitempty"`

	// CreatedAt is the capture/creation timestamp, when the device knows it.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// MetadataLoaded reports whether the fields above have been populated.
	MetadataLoaded bool `json:"metadata_loaded"`

	// KnownImageType reports whether the device recognised the file as an
	// image format it can produce a thumbnail for.
	KnownImageType bool `json:"known_image_type"`
}
