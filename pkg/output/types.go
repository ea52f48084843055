// Package output provides report building and formatting for scan results.
package output

import (
	"math"
	"time"

	"github.com/srcds-tools/timeoutfinder/pkg/analyzer"
)

// DayRecord is the per-day output record: the raw enter lines, the raw
// disconnect lines classified as short, and derived metrics.
type DayRecord struct {
	// Day is the calendar-day key (YYYY-MM-DD).
	Day string `json:"day"`

	// Enters holds the raw enter lines for the day.
	Enters []string `json:"enters"`

	// Timeouts holds the raw disconnect lines classified as short.
	Timeouts []string `json:"timeouts"`

	// TotalEnters is len(Enters).
	TotalEnters int `json:"total_enters"`

	// TotalTimeouts is len(Timeouts).
	TotalTimeouts int `json:"total_timeouts"`

	// TotalTimeoutEvents counts every timeout disconnect seen, associated
	// or not.
	TotalTimeoutEvents int `json:"total_timeout_events"`

	// PercentTimeouts is 100 * TotalTimeouts / TotalEnters, rounded to two
	// decimals. Nil when TotalEnters is zero; dividing by zero is reported
	// as a warning instead of a metric.
	PercentTimeouts *float64 `json:"percent_timeouts,omitempty"`

	// Warnings records recovered problems for the day.
	Warnings []string `json:"warnings,omitempty"`

	// FileErrors records files that could not be read.
	FileErrors []string `json:"file_errors,omitempty"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// DaysScanned is the number of logical days processed.
	DaysScanned int `json:"days_scanned"`

	// TotalEnters is the enter count across all days.
	TotalEnters int `json:"total_enters"`

	// TotalShortTimeouts is the short-timeout count across all days.
	TotalShortTimeouts int `json:"total_short_timeouts"`
}

// Metadata provides context about the scan run.
type Metadata struct {
	// Sources lists the log files that were scanned.
	Sources []string `json:"sources"`

	// ThresholdMinutes is the short-timeout cutoff used.
	ThresholdMinutes float64 `json:"threshold_minutes"`

	// ScannedAt is when the scan completed.
	ScannedAt time.Time `json:"scanned_at"`

	// Duration is how long the scan took.
	Duration time.Duration `json:"duration"`
}

// Report is the complete scan output. Days are in chronological order.
type Report struct {
	Summary  Summary     `json:"summary"`
	Days     []DayRecord `json:"days"`
	Metadata Metadata    `json:"metadata"`
}

// NewReport creates a Report from scan results.
func NewReport(result *analyzer.ScanResult) *Report {
	report := &Report{
		Days: make([]DayRecord, 0, len(result.Days)),
		Metadata: Metadata{
			Sources:          result.Metadata.Sources,
			ThresholdMinutes: result.Metadata.ThresholdMinutes,
			ScannedAt:        result.Metadata.EndTime,
			Duration:         result.Metadata.EndTime.Sub(result.Metadata.StartTime),
		},
		Summary: Summary{
			DaysScanned:        len(result.Days),
			TotalEnters:        result.TotalEnters(),
			TotalShortTimeouts: result.TotalShortTimeouts(),
		},
	}

	for _, day := range result.Days {
		report.Days = append(report.Days, newDayRecord(day))
	}

	return report
}

func newDayRecord(day *analyzer.DayResult) DayRecord {
	record := DayRecord{
		Day:                day.Day,
		Enters:             make([]string, 0, len(day.Enters)),
		Timeouts:           make([]string, 0, len(day.ShortTimeouts)),
		TotalEnters:        len(day.Enters),
		TotalTimeouts:      len(day.ShortTimeouts),
		TotalTimeoutEvents: day.TotalTimeoutEvents,
		Warnings:           day.Warnings,
		FileErrors:         day.FileErrors,
	}

	for _, ev := range day.Enters {
		record.Enters = append(record.Enters, ev.Raw)
	}
	for _, to := range day.ShortTimeouts {
		record.Timeouts = append(record.Timeouts, to.RawDisconnectLine)
	}

	if record.TotalEnters > 0 {
		percent := 100 * float64(record.TotalTimeouts) / float64(record.TotalEnters)
		percent = math.Round(percent*100) / 100
		record.PercentTimeouts = &percent
	} else if record.TotalTimeoutEvents > 0 {
		// Never divide by zero; flag the day instead.
		record.Warnings = append(append([]string(nil), record.Warnings...),
			"no enters recorded for "+record.Day+"; percentage undefined")
	}

	return record
}

// HasWarnings returns true if any day recorded a warning or file error.
func (r *Report) HasWarnings() bool {
	for _, day := range r.Days {
		if len(day.Warnings) > 0 || len(day.FileErrors) > 0 {
			return true
		}
	}
	return false
}
