package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultThresholdMinutes = 7.0
	DefaultChunkSize        = 10000
	DefaultOutputDir        = "./output"
	DefaultWebhookTimeout   = 10 * time.Second
)

// Environment variable names.
const (
	EnvLogDir    = "TIMEOUTFINDER_LOG_DIR"
	EnvOutputDir = "TIMEOUTFINDER_OUTPUT_DIR"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:        DefaultOutputDir,
		ThresholdMinutes: DefaultThresholdMinutes,
		ChunkSize:        DefaultChunkSize,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if dir := os.Getenv(EnvLogDir); dir != "" {
		c.LogDir = dir
	}
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		c.OutputDir = dir
	}
}
