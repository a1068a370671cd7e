// Package utils provides general-purpose helpers shared by the client and
// the device simulator: context keys, JSON/JPEG response writers, the
// resty-based HTTP client and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values set here never
// collide with keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey carries the identifier that ties together every device call
// issued on behalf of one logical operation (a scan, a request).
var TraceIDCtxKey = contextKey("traceID")

// TraceIDHeader is the HTTP header the trace identifier travels in.
const TraceIDHeader = "X-Trace-ID"

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace identifier stored in ctx, if any.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
