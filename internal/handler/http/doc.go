// Package http serves the simulated camera over the device HTTP API.
//
// Requests pass through tracing, access logging and metrics middleware.
// Commands that touch a storage are serialized: while one is in flight any
// other is refused with 503, the way a real camera reports it is busy.
package http
