// Package config loads the engine's tunables from the environment,
// following the teacher's src/config/config.go getEnv/getEnvAsInt helper
// shape. cmd/txnengine additionally lets CLI flags override these values.
package config

import (
	"os"
	"strconv"
)

// Config holds every tunable of the engine.
type Config struct {
	Engine  EngineConfig
	Logging LoggingConfig
	Metrics MetricsConfig
}

// EngineConfig controls the dispatch fabric (spec.md §5 capacity params).
type EngineConfig struct {
	// ChannelDepth is the bounded inbound-channel capacity per client
	// actor — the primary backpressure knob.
	ChannelDepth int
}

// LoggingConfig controls internal/pkg/logging.
type LoggingConfig struct {
	Level  string
	Format string
}

// MetricsConfig controls the optional Prometheus/gin sidecar.
type MetricsConfig struct {
	// Addr is the listen address for /metrics and /healthz. Empty
	// disables the sidecar entirely — the default, and the path
	// exercised by the core's tests.
	Addr string
}

// Load reads configuration from the environment, applying the defaults
// spec.md names (channel depth 1000).
func Load() *Config {
	return &Config{
		Engine: EngineConfig{
			ChannelDepth: getEnvAsInt("CHANNEL_DEPTH", 1000),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Metrics: MetricsConfig{
			Addr: getEnv("METRICS_ADDR", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultVal
}
