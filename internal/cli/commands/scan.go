package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/srcds-tools/timeoutfinder/internal/logging"
	"github.com/srcds-tools/timeoutfinder/pkg/analyzer"
	"github.com/srcds-tools/timeoutfinder/pkg/config"
	"github.com/srcds-tools/timeoutfinder/pkg/output"
	"github.com/srcds-tools/timeoutfinder/pkg/parser"
	"github.com/srcds-tools/timeoutfinder/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ScanOptions holds command-line options for the scan command.
type ScanOptions struct {
	LogDir     string
	OutputDir  string
	Threshold  float64
	Workers    int
	ChunkSize  int
	Output     string
	LogLevel   string
	Verbose    bool
	Quiet      bool
	NoArtifact bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	opts := &ScanOptions{}

	cmd := &cobra.Command{
		Use:   "scan <config-file>",
		Short: "Scan logs for short-playtime timeouts",
		Long: `Scan the configured log directory for short-playtime timeouts.

Rotated log files are grouped into calendar days by their filename date,
each day is processed independently, and every timeout disconnect is
matched backwards to the player's most recent enter event. Timeouts
below the threshold count as short.

The per-day records are written as an indented JSON artifact to the
configured output directory and a summary is printed per day.

Exit codes:
  0 - Scan completed cleanly
  1 - Scan completed with warnings (dropped lines, unreadable files)
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.LogDir, "log-dir", "", "Override the configured log directory")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Override the configured output directory")
	cmd.Flags().Float64Var(&opts.Threshold, "threshold", 0, "Short-timeout threshold in minutes (default from config)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Concurrent day workers (0 = one per CPU)")
	cmd.Flags().IntVar(&opts.ChunkSize, "chunk-size", 0, "Lines read per batch (default from config)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show per-day warnings and diagnostics")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
	cmd.Flags().BoolVar(&opts.NoArtifact, "no-artifact", false, "Skip writing the JSON artifact")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_completion", "When to fire webhook (on_completion|never)")

	return cmd
}

func runScan(cmd *cobra.Command, args []string, opts *ScanOptions) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logging.Init(logging.ParseLevel(opts.LogLevel))
	logger := slog.Default()

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cfg, opts)

	days, err := collectDays(cfg)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		return fmt.Errorf("no dated log files found in %s", cfg.LogDir)
	}

	correlator := analyzer.NewCorrelator(cfg.ThresholdMinutes, logger)
	processor := analyzer.NewDayProcessor(cfg.ChunkSize, correlator, logger)
	runner := analyzer.NewRunner(cfg.Workers, processor, logger)

	result := runner.Run(ctx, days)
	if err := ctx.Err(); err != nil {
		return err
	}

	report := output.NewReport(result)

	if !opts.NoArtifact {
		path, err := output.WriteArtifact(report, cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("writing artifact: %w", err)
		}
		logger.Info("wrote report artifact", "path", path)
	}

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}
	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Send webhooks (errors logged but don't fail the scan)
	sendWebhooks(ctx, cfg, opts, report)

	if report.HasWarnings() {
		ExitCode = 1
	}

	return nil
}

// applyFlagOverrides lets CLI flags win over config file values.
func applyFlagOverrides(cfg *config.Config, opts *ScanOptions) {
	if opts.LogDir != "" {
		cfg.LogDir = opts.LogDir
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}
	if opts.Threshold > 0 {
		cfg.ThresholdMinutes = opts.Threshold
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.ChunkSize > 0 {
		cfg.ChunkSize = opts.ChunkSize
	}
}

// collectDays lists and groups all configured log files into logical days.
func collectDays(cfg *config.Config) (map[string][]string, error) {
	var files []string

	if cfg.LogDir != "" {
		dirFiles, err := parser.ListLogFiles(cfg.LogDir)
		if err != nil {
			return nil, fmt.Errorf("listing log dir: %w", err)
		}
		files = append(files, dirFiles...)
	}

	if len(cfg.LogSources) > 0 {
		extra, err := parser.ExpandGlobs(cfg.LogSources)
		if err != nil {
			return nil, fmt.Errorf("expanding log sources: %w", err)
		}
		files = append(files, extra...)
	}

	return parser.GroupByDay(files), nil
}

func createFormatter(opts *ScanOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged to stderr but don't fail the scan.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *ScanOptions, report *output.Report) {
	webhooks := collectWebhooks(cfg, opts)
	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if wh.Trigger == config.WebhookTriggerNever {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			slog.Info("webhook sent", "webhook", name, "status", resp.StatusCode, "duration", resp.Duration)
		} else {
			slog.Error("webhook failed", "webhook", name, "error", resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *ScanOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnCompletion
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}
