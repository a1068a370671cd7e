// Package device models a connected camera: its storages, folders and files.
//
// Items are handles whose data is populated lazily. A folder's children are
// nil until LoadChildren succeeds and are never fetched again afterwards; a
// file's metadata stays unloaded until LoadMetadata succeeds and never goes
// back. Session is the concrete implementation over a [adapter.DeviceAdapter];
// every remote call it makes goes through one serial command queue.
package device

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cam-scan/internal/progress"
	"github.com/MKhiriev/go-cam-scan/models"
)

// Item is a file or folder on a storage device.
type Item interface {
	// ID is stable for the lifetime of the session.
	ID() string
	Name() string
	// CreatedAt returns the creation timestamp, when known.
	CreatedAt() (time.Time, bool)
	MetadataLoaded() bool
	IsKnownImageType() bool

	// LoadMetadata populates the fields above. It is a no-op once metadata
	// is loaded.
	LoadMetadata(ctx context.Context) error

	// FetchThumbnail returns the encoded thumbnail. preflight, when not nil,
	// is evaluated right before the fetch starts; if it returns false the
	// fetch is abandoned with [ErrPreflightRejected].
	FetchThumbnail(ctx context.Context, preflight Preflight) ([]byte, error)
}

// Preflight decides, just before an expensive fetch is issued, whether it
// is still wanted.
type Preflight func(item Item) bool

// Folder is an Item with children.
type Folder interface {
	Item

	// Children returns the ordered children, or nil before LoadChildren has
	// succeeded.
	Children() []Item

	// LoadChildren lists the folder. It is a no-op once loaded.
	LoadChildren(ctx context.Context) error
}

// StorageDevice is a memory card or internal memory.
type StorageDevice interface {
	ID() string
	Description() string
	// RootFolder is nil when the storage is not readable.
	RootFolder() Folder
	// CatalogProgress reports how much of the storage has been listed, or
	// nil when the device does not report it.
	CatalogProgress() *progress.Progress
}

// Camera is a connected device.
type Camera interface {
	Info() models.DeviceInfo
	// CommandCategories returns the last known allowed categories without a
	// remote call.
	CommandCategories() models.CommandCategories
	StorageDevices() []StorageDevice
}
