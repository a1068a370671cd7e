// Package store persists client-side data. Currently that is the thumbnail
// cache: encoded thumbnails keyed by device and item so a rescan of the same
// card does not fetch them from the camera again.
package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/thumbnail_repository_mock.go -package=mock

// ThumbnailRepository is a cache of encoded thumbnails.
type ThumbnailRepository interface {
	// GetThumbnail returns the cached bytes or [ErrThumbnailNotFound].
	GetThumbnail(ctx context.Context, deviceID, itemID string) ([]byte, error)
	// SaveThumbnail inserts or replaces a cached thumbnail.
	SaveThumbnail(ctx context.Context, deviceID, itemID string, data []byte) error
	// PurgeDevice drops every cached thumbnail of deviceID and returns how
	// many were removed.
	PurgeDevice(ctx context.Context, deviceID string) (int64, error)
}
