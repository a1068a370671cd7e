package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cam-scan/internal/logger"
)

type thumbnailRepository struct {
	*DB
	logger *logger.Logger
}

func NewThumbnailRepository(db *DB, logger *logger.Logger) ThumbnailRepository {
	return &thumbnailRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *thumbnailRepository) GetThumbnail(ctx context.Context, deviceID, itemID string) ([]byte, error) {
	query, args, err := buildGetThumbnailQuery(deviceID, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrThumbnailNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "thumbnailRepository.GetThumbnail").
			Str("device_id", deviceID).
			Str("item_id", itemID).
			Msg("failed to read cached thumbnail")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return data, nil
}

func (r *thumbnailRepository) SaveThumbnail(ctx context.Context, deviceID, itemID string, data []byte) error {
	query, args, err := buildSaveThumbnailQuery(deviceID, itemID, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "thumbnailRepository.SaveThumbnail").
			Str("device_id", deviceID).
			Str("item_id", itemID).
			Msg("failed to save thumbnail")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *thumbnailRepository) PurgeDevice(ctx context.Context, deviceID string) (int64, error) {
	query, args, err := buildPurgeDeviceQuery(deviceID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "thumbnailRepository.PurgeDevice").
			Str("device_id", deviceID).
			Msg("failed to purge thumbnails")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	r.logger.Info().Str("device_id", deviceID).Int64("removed", removed).Msg("thumbnail cache purged")
	return removed, nil
}
