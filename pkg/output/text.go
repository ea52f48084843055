package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "%d days scanned, %d short timeouts / %d enters\n",
		report.Summary.DaysScanned,
		report.Summary.TotalShortTimeouts,
		report.Summary.TotalEnters)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== Short-Playtime Timeout Report ===")
	fmt.Fprintln(w)

	for i := range report.Days {
		f.formatDay(&report.Days[i], w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d days scanned, %d short timeouts, %d enters\n",
		report.Summary.DaysScanned,
		report.Summary.TotalShortTimeouts,
		report.Summary.TotalEnters)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Threshold: %g minutes\n", report.Metadata.ThresholdMinutes)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatDay(day *DayRecord, w io.Writer) {
	if day.PercentTimeouts == nil {
		fmt.Fprintf(w, "%s: no enters recorded (%d timeout events)\n",
			day.Day, day.TotalTimeoutEvents)
	} else {
		fmt.Fprintf(w, "%s: %d/%d (%.2f%%)\n",
			day.Day, day.TotalTimeouts, day.TotalEnters, *day.PercentTimeouts)
	}

	if !f.opts.Verbose {
		return
	}

	for _, warning := range day.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
	for _, fileErr := range day.FileErrors {
		fmt.Fprintf(w, "  file error: %s\n", fileErr)
	}
}
