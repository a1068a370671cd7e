package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceIDContext(t *testing.T) {
	_, ok := GetTraceIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithTraceID(context.Background(), "abc")
	id, ok := GetTraceIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestTraceIDContext_EmptyIsAbsent(t *testing.T) {
	_, ok := GetTraceIDFromContext(WithTraceID(context.Background(), ""))
	assert.False(t, ok)
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}
