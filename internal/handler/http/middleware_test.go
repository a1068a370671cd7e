package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/metrics"
	"github.com/MKhiriev/go-cam-scan/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(latency time.Duration) *Handler {
	return NewHandler(nil, metrics.New(), latency, logger.Nop())
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "reuses client trace id", incoming: "scan-7"},
		{name: "mints uuid", incoming: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(0)

			var inContext string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				inContext, _ = utils.GetTraceIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/device", nil)
			if tt.incoming != "" {
				req.Header.Set(utils.TraceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(utils.TraceIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, got, inContext)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithLogging_WritesAccessEntry(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	})

	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/storage", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/api/storage", entry["uri"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, float64(5), entry["size"])
	assert.NotEmpty(t, entry["trace_id"])
}

func TestSerialize_RefusesConcurrentCommand(t *testing.T) {
	h := newTestHandler(0)

	entered := make(chan struct{})
	release := make(chan struct{})
	slow := h.serialize(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
	}))

	var wg sync.WaitGroup
	wg.Add(1)
	first := httptest.NewRecorder()
	go func() {
		defer wg.Done()
		slow.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/storage", nil))
	}()
	<-entered

	second := httptest.NewRecorder()
	slow.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/storage", nil))
	assert.Equal(t, http.StatusServiceUnavailable, second.Code)

	close(release)
	wg.Wait()
	assert.Equal(t, http.StatusOK, first.Code)

	// the slot is free again
	third := httptest.NewRecorder()
	h.serialize(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(third, httptest.NewRequest(http.MethodGet, "/api/storage", nil))
	assert.Equal(t, http.StatusOK, third.Code)
}

func TestWithLatency(t *testing.T) {
	h := newTestHandler(30 * time.Millisecond)

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	start := time.Now()
	h.withLatency(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestResponseWriter_FirstHeaderWins(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 3, w.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	_, _ = w.Write([]byte("x"))
	assert.Equal(t, http.StatusOK, w.status)
}
