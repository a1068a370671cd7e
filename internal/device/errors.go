package device

import "errors"

// ErrPreflightRejected is returned by FetchThumbnail when the preflight check
// declined the fetch. No remote call was made.
var ErrPreflightRejected = errors.New("thumbnail fetch rejected by preflight")
