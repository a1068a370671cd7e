package handler

import (
	"testing"

	"github.com/MKhiriev/go-cam-scan/internal/config"
	"github.com/MKhiriev/go-cam-scan/internal/logger"
	"github.com/MKhiriev/go-cam-scan/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	cfg := config.DeviceConfig{Server: config.DeviceServer{HTTPAddress: "localhost:0"}}

	handlers, err := NewHandlers(nil, metrics.New(), cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	_, err := NewHandlers(nil, metrics.New(), config.DeviceConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
