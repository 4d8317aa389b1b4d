package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Upstream   UpstreamConfig
	Prediction PredictionConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Host      string
	Port      int
	StaticDir string
}

// UpstreamConfig is the price prediction backend the dev server forwards to.
type UpstreamConfig struct {
	URL     string
	Timeout time.Duration
}

// PredictionConfig is used by clients of the prediction endpoint.
type PredictionConfig struct {
	BaseURL string
	Path    string
	Timeout time.Duration // zero means no timeout
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("STATIC_DIR", "./web/static")
	v.SetDefault("UPSTREAM_URL", "http://localhost:5000")
	v.SetDefault("UPSTREAM_TIMEOUT", "0s")
	v.SetDefault("PREDICT_BASE_URL", "http://localhost:8080")
	v.SetDefault("PREDICT_PATH", "/api/predict")
	v.SetDefault("PREDICT_TIMEOUT", "0s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	upstreamTimeout, err := parseDuration(v, "UPSTREAM_TIMEOUT")
	if err != nil {
		return nil, err
	}
	predictTimeout, err := parseDuration(v, "PREDICT_TIMEOUT")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:      v.GetString("SERVER_HOST"),
			Port:      v.GetInt("SERVER_PORT"),
			StaticDir: v.GetString("STATIC_DIR"),
		},
		Upstream: UpstreamConfig{
			URL:     v.GetString("UPSTREAM_URL"),
			Timeout: upstreamTimeout,
		},
		Prediction: PredictionConfig{
			BaseURL: v.GetString("PREDICT_BASE_URL"),
			Path:    v.GetString("PREDICT_PATH"),
			Timeout: predictTimeout,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

// parseDuration reads a non-negative duration. Zero means no timeout.
func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("parse %s: negative duration %s", key, d)
	}
	return d, nil
}
