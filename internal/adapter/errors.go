package adapter

import "errors"

var (
	ErrBadRequest               = errors.New("bad request")
	ErrNotFound                 = errors.New("not found")
	ErrIncorrectCommandCategory = errors.New("device is not in the required command category")
	ErrNoThumbnail              = errors.New("no thumbnail available")
	ErrDeviceBusy               = errors.New("device busy")
	ErrInternalServerError      = errors.New("device internal error")
)
