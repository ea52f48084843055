// Package analyzer provides the correlation engine and per-day orchestration
// for short-playtime timeout detection.
package analyzer

import (
	"time"

	"github.com/srcds-tools/timeoutfinder/pkg/parser"
)

// DefaultThresholdMinutes is the elapsed-time cutoff below which a correlated
// timeout counts as a short-playtime timeout.
const DefaultThresholdMinutes = 7.0

// CorrelatedTimeout is a timeout disconnect successfully matched to the
// player's most recent prior enter event.
type CorrelatedTimeout struct {
	// PlayerID is the persistent identity shared by both events.
	PlayerID string

	// EnterTimestamp is the textual timestamp of the matched enter event.
	EnterTimestamp string

	// DisconnectTimestamp is the textual timestamp of the disconnect.
	DisconnectTimestamp string

	// ElapsedMinutes is disconnect minus enter. May be zero or negative on
	// clock anomalies; such values still classify as short.
	ElapsedMinutes float64

	// RawDisconnectLine is the original disconnect line.
	RawDisconnectLine string
}

// DayResult holds everything extracted for one logical day. It is built by
// exactly one worker and immutable once handed off.
type DayResult struct {
	// Day is the calendar-day key (YYYY-MM-DD).
	Day string

	// Enters are all enter events for the day, in timeline order.
	Enters []parser.Event

	// ShortTimeouts are the correlated timeouts below the threshold, in
	// timeline order.
	ShortTimeouts []CorrelatedTimeout

	// TotalTimeoutEvents counts every timeout disconnect seen, including
	// unassociated ones and ones at or above the threshold.
	TotalTimeoutEvents int

	// Warnings records recovered problems: dropped lines, unassociated
	// timeouts, unparseable timestamps.
	Warnings []string

	// FileErrors records files that could not be read. Each failed file
	// contributes zero events; the rest of the day proceeds.
	FileErrors []string
}

// ScanMetadata describes a whole scan run.
type ScanMetadata struct {
	// Sources lists every log file that was assigned to a day.
	Sources []string

	// ThresholdMinutes is the short-timeout cutoff used.
	ThresholdMinutes float64

	// StartTime and EndTime bracket the scan.
	StartTime time.Time
	EndTime   time.Time
}

// ScanResult is the complete output of a scan: one DayResult per logical day,
// in chronological day order.
type ScanResult struct {
	Days     []*DayResult
	Metadata ScanMetadata
}

// TotalShortTimeouts returns the short-timeout count across all days.
func (r *ScanResult) TotalShortTimeouts() int {
	total := 0
	for _, day := range r.Days {
		total += len(day.ShortTimeouts)
	}
	return total
}

// TotalEnters returns the enter count across all days.
func (r *ScanResult) TotalEnters() int {
	total := 0
	for _, day := range r.Days {
		total += len(day.Enters)
	}
	return total
}
