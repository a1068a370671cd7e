package workers

import "errors"

var ErrQueueStopped = errors.New("command queue stopped")
