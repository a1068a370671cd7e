package store

import "errors"

// ErrThumbnailNotFound is returned on a cache miss.
var ErrThumbnailNotFound = errors.New("thumbnail not found")

// Low-level database operation errors, wrapped by repository methods when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan thumbnail row")
)
