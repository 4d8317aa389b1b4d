package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:5000", cfg.Upstream.URL)
	assert.Equal(t, time.Duration(0), cfg.Upstream.Timeout)
	assert.Equal(t, "/api/predict", cfg.Prediction.Path)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPSTREAM_URL", "http://model:8000")
	t.Setenv("UPSTREAM_TIMEOUT", "15s")
	t.Setenv("PREDICT_TIMEOUT", "2500ms")
	t.Setenv("LOGGER_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://model:8000", cfg.Upstream.URL)
	assert.Equal(t, 15*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 2500*time.Millisecond, cfg.Prediction.Timeout)
	assert.Equal(t, "text", cfg.Logger.Format)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"upstream typo", "UPSTREAM_TIMEOUT", "15"},
		{"predict typo", "PREDICT_TIMEOUT", "not-a-duration"},
		{"negative", "PREDICT_TIMEOUT", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
