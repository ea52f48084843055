// Package config provides configuration loading and validation for the
// timeout scanner.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// LogDir is the directory holding the server's rotated console logs.
	LogDir string `yaml:"log_dir"`

	// LogSources is an optional list of extra file paths or glob patterns
	// scanned in addition to LogDir.
	LogSources []string `yaml:"log_sources,omitempty"`

	// OutputDir is where the per-scan JSON artifact is written.
	OutputDir string `yaml:"output_dir"`

	// ThresholdMinutes is the cutoff below which a correlated timeout counts
	// as a short-playtime timeout. Strict less-than.
	ThresholdMinutes float64 `yaml:"threshold_minutes,omitempty"`

	// ChunkSize bounds how many lines are read per batch.
	ChunkSize int `yaml:"chunk_size,omitempty"`

	// Workers bounds day-level concurrency. Zero means one worker per CPU.
	Workers int `yaml:"workers,omitempty"`

	// Webhooks optionally receive the scan report.
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnCompletion fires after every scan (default).
	WebhookTriggerOnCompletion WebhookTrigger = "on_completion"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending scan reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_completion" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
