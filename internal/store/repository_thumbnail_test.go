package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selectThumbnailSQL = `SELECT data FROM thumbnails WHERE device_id = \? AND item_id = \?`
	upsertThumbnailSQL = `INSERT INTO thumbnails \(device_id,item_id,data\) VALUES \(\?,\?,\?\) ON CONFLICT \(device_id, item_id\) DO UPDATE`
	deleteThumbnailSQL = `DELETE FROM thumbnails WHERE device_id = \?`
)

func newTestRepo(t *testing.T) (ThumbnailRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewThumbnailRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop()), mock
}

// ── GetThumbnail ─────────────────────────────────────────────────────────────

func TestGetThumbnail_Hit(t *testing.T) {
	repo, mock := newTestRepo(t)
	payload := []byte{0xff, 0xd8, 0xff, 0xd9}

	mock.ExpectQuery(selectThumbnailSQL).
		WithArgs("SN1", "sd1:/a.jpg").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(payload))

	got, err := repo.GetThumbnail(context.Background(), "SN1", "sd1:/a.jpg")

	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetThumbnail_Miss(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(selectThumbnailSQL).
		WithArgs("SN1", "sd1:/b.jpg").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, err := repo.GetThumbnail(context.Background(), "SN1", "sd1:/b.jpg")

	assert.ErrorIs(t, err, ErrThumbnailNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetThumbnail_DBError(t *testing.T) {
	repo, mock := newTestRepo(t)
	dbErr := errors.New("disk I/O error")

	mock.ExpectQuery(selectThumbnailSQL).WillReturnError(dbErr)

	_, err := repo.GetThumbnail(context.Background(), "SN1", "x")

	assert.ErrorIs(t, err, ErrScanningRow)
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, errors.Is(err, sql.ErrNoRows))
}

// ── SaveThumbnail ────────────────────────────────────────────────────────────

func TestSaveThumbnail_Upsert(t *testing.T) {
	repo, mock := newTestRepo(t)
	payload := []byte{1, 2, 3}

	mock.ExpectExec(upsertThumbnailSQL).
		WithArgs("SN1", "sd1:/a.jpg", payload).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveThumbnail(context.Background(), "SN1", "sd1:/a.jpg", payload)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveThumbnail_DBError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(upsertThumbnailSQL).WillReturnError(errors.New("readonly database"))

	err := repo.SaveThumbnail(context.Background(), "SN1", "sd1:/a.jpg", []byte{1})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── PurgeDevice ──────────────────────────────────────────────────────────────

func TestPurgeDevice(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(deleteThumbnailSQL).
		WithArgs("SN1").
		WillReturnResult(sqlmock.NewResult(0, 7))

	removed, err := repo.PurgeDevice(context.Background(), "SN1")

	require.NoError(t, err)
	assert.Equal(t, int64(7), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeDevice_DBError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(deleteThumbnailSQL).WillReturnError(errors.New("locked"))

	_, err := repo.PurgeDevice(context.Background(), "SN1")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── query builders ───────────────────────────────────────────────────────────

func TestBuildQueries(t *testing.T) {
	query, args, err := buildGetThumbnailQuery("d", "i")
	require.NoError(t, err)
	assert.Equal(t, "SELECT data FROM thumbnails WHERE device_id = ? AND item_id = ?", query)
	assert.Equal(t, []any{"d", "i"}, args)

	query, args, err = buildSaveThumbnailQuery("d", "i", []byte{9})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO thumbnails (device_id,item_id,data) VALUES (?,?,?) "+upsertThumbnailSuffix, query)
	assert.Equal(t, []any{"d", "i", []byte{9}}, args)

	query, args, err = buildPurgeDeviceQuery("d")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM thumbnails WHERE device_id = ?", query)
	assert.Equal(t, []any{"d"}, args)
}
