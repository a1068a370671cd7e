package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	thumbnailsTable = "thumbnails"

	upsertThumbnailSuffix = "ON CONFLICT (device_id, item_id) DO UPDATE SET data = excluded.data, created_at = CURRENT_TIMESTAMP"
)

// SQLite uses "?" placeholders, which is squirrel's default.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetThumbnailQuery(deviceID, itemID string) (string, []any, error) {
	return psql.
		Select("data").
		From(thumbnailsTable).
		Where(sq.Eq{"device_id": deviceID, "item_id": itemID}).
		ToSql()
}

func buildSaveThumbnailQuery(deviceID, itemID string, data []byte) (string, []any, error) {
	return psql.
		Insert(thumbnailsTable).
		Columns("device_id", "item_id", "data").
		Values(deviceID, itemID, data).
		Suffix(upsertThumbnailSuffix).
		ToSql()
}

func buildPurgeDeviceQuery(deviceID string) (string, []any, error) {
	return psql.
		Delete(thumbnailsTable).
		Where(sq.Eq{"device_id": deviceID}).
		ToSql()
}
