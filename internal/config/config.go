// Package config reads mapconv settings from the environment.
package config

import (
	"os"
	"strconv"
)

const (
	defaultEndpoint = "https://api.honeycomb.io"
	defaultDataset  = "mapconv"
)

// Config holds run configuration.
type Config struct {
	// HoneycombAPIKey enables telemetry when set.
	HoneycombAPIKey string
	// HoneycombDataset names the dataset spans are sent to.
	HoneycombDataset string
	// Endpoint is the OTLP/HTTP collector URL.
	Endpoint string
	// ForceTelemetry turns telemetry on without an API key, e.g. for a local collector.
	ForceTelemetry bool
}

// Load builds a Config from environment variables. Call godotenv.Load first
// if a .env file should be honoured.
func Load() Config {
	cfg := Config{
		HoneycombAPIKey:  os.Getenv("MAPCONV_HONEYCOMB_API_KEY"),
		HoneycombDataset: os.Getenv("MAPCONV_HONEYCOMB_DATASET"),
		Endpoint:         os.Getenv("MAPCONV_OTLP_ENDPOINT"),
	}
	if cfg.HoneycombDataset == "" {
		cfg.HoneycombDataset = defaultDataset
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	// Unparseable values count as off
	cfg.ForceTelemetry, _ = strconv.ParseBool(os.Getenv("MAPCONV_TELEMETRY"))
	return cfg
}

// TelemetryEnabled reports whether spans should be exported.
func (c Config) TelemetryEnabled() bool {
	return c.HoneycombAPIKey != "" || c.ForceTelemetry
}

// Headers returns the OTLP request headers Honeycomb expects, or nil when no
// API key is configured.
func (c Config) Headers() map[string]string {
	if c.HoneycombAPIKey == "" {
		return nil
	}
	return map[string]string{
		"x-honeycomb-team":    c.HoneycombAPIKey,
		"x-honeycomb-dataset": c.HoneycombDataset,
	}
}
