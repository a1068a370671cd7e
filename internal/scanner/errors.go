package scanner

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cam-scan/internal/adapter"
)

var (
	// ErrIncorrectCommandCategory means the device does not currently allow
	// filesystem access. It matches adapter.ErrIncorrectCommandCategory too.
	ErrIncorrectCommandCategory = fmt.Errorf("filesystem scan: %w", adapter.ErrIncorrectCommandCategory)

	// ErrNotAvailable means no storage exposes a root folder.
	ErrNotAvailable = errors.New("filesystem scan: no storage with a root folder available")
)
