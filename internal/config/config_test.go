package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tournevent/dhlexpress/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.TransportMock, cfg.Transport)
	assert.Equal(t, 30*time.Second, cfg.RESTTimeout)
	assert.False(t, cfg.OTELEnabled)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DHL_EXPRESS_TRANSPORT", "rest")
	t.Setenv("DHL_EXPRESS_REST_BASE_URL", "https://sandbox.example.test/rest")
	t.Setenv("DHL_EXPRESS_REST_TIMEOUT", "5s")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.TransportREST, cfg.Transport)
	assert.Equal(t, "https://sandbox.example.test/rest", cfg.RESTBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RESTTimeout)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DHL_EXPRESS_SERVICE_NAME=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("DHL_EXPRESS_SERVICE_NAME") })

	cfg, err := config.Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.ServiceName)
}

func TestLoad_EnvFileDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DHL_EXPRESS_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("DHL_EXPRESS_LOG_LEVEL", "warn")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_UnknownTransport(t *testing.T) {
	t.Setenv("DHL_EXPRESS_TRANSPORT", "carrier-pigeon")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
}

func TestConfig_Attributes(t *testing.T) {
	cfg := &config.Config{ServiceName: "svc", Version: "1.2.3", Transport: config.TransportREST}
	attrs := cfg.Attributes()
	require.Len(t, attrs, 3)
	assert.Equal(t, "svc", attrs[0].Value.AsString())
	assert.Equal(t, "rest", attrs[2].Value.AsString())
}
