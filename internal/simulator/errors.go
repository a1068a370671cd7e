package simulator

import "errors"

var (
	ErrInvalidItemID          = errors.New("invalid item id")
	ErrItemNotFound           = errors.New("item not found")
	ErrNotAFolder             = errors.New("item is not a folder")
	ErrNotAFile               = errors.New("item is not a file")
	ErrNoThumbnail            = errors.New("no thumbnail available")
	ErrFilesystemAccessDenied = errors.New("filesystem access is not enabled")
)
