package http

import "errors"

// ErrMissingItemID is returned when a filesystem command has no "id" query
// parameter.
var ErrMissingItemID = errors.New("missing `id` query parameter")
