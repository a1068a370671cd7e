package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9090", want: "127.0.0.1:9090"},
		{name: "all interfaces", input: ":8080", want: ":8080"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:http", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "hostname", input: "camera.local:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
}

func TestListValue_Set(t *testing.T) {
	var l listValue
	require.NoError(t, l.Set("a, b,,c"))
	require.NoError(t, l.Set("d"))

	assert.Equal(t, listValue{"a", "b", "c", "d"}, l)
	assert.Equal(t, "a,b,c,d", l.String())
}

func TestParseFlags_AllFields(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:8081",
		"-devices", "10.0.0.1:80,10.0.0.2:80",
		"-request-timeout", "4s",
		"-d", "cache.db",
		"-config", "cfg.json",
		"-discovery-interval", "500ms",
		"-client-name", "desk",
		"-filter", "all",
		"-slots", "8",
		"-log-file", "client.log",
		"-storage", "/a,/b",
		"-categories", "remote_shooting",
		"-latency", "10ms",
		"-eager-metadata",
		"-report-catalog",
		"-auth", "interact_at_device",
		"-manufacturer", "Acme",
		"-model", "X1",
		"-serial", "7",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, []string{"10.0.0.1:80", "10.0.0.2:80"}, cfg.Adapter.Addresses)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 4*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, 500*time.Millisecond, cfg.Discovery.Interval)
	assert.Equal(t, "desk", cfg.Discovery.ClientName)
	assert.Equal(t, "all", cfg.Scan.Filter)
	assert.Equal(t, 8, cfg.Scan.Slots)
	assert.Equal(t, "client.log", cfg.Log.File)
	assert.Equal(t, []string{"/a", "/b"}, cfg.Device.StorageDirs)
	assert.Equal(t, []string{"remote_shooting"}, cfg.Device.Categories)
	assert.Equal(t, 10*time.Millisecond, cfg.Device.Latency)
	assert.True(t, cfg.Device.EagerMetadata)
	assert.True(t, cfg.Device.ReportCatalog)
	assert.Equal(t, "interact_at_device", cfg.Device.Auth)
	assert.Equal(t, "Acme", cfg.Device.Manufacturer)
	assert.Equal(t, "X1", cfg.Device.Model)
	assert.Equal(t, "7", cfg.Device.Serial)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Adapter.Addresses)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nowhere"})
	assert.Error(t, err)
}
