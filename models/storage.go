package models

// StorageInfo describes one storage device (memory card, internal memory)
// exposed by a camera.
type StorageInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`

	// RootFolderID is empty when the storage is present but not readable,
	// e.g. an unformatted card.
	RootFolderID string `json:"root_folder_id,omitempty"`

	// Catalog is nil when the device does not report catalog progress for
	// this storage.
	Catalog *CatalogInfo `json:"catalog,omitempty"`
}

// CatalogInfo is the device's own estimate of a storage's size, used to
// report enumeration progress.
type CatalogInfo struct {
	// FolderCount is the number of folders, root included, that a full
	// enumeration of the storage will visit.
	FolderCount int64 `json:"folder_count"`
}
