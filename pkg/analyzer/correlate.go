package analyzer

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/srcds-tools/timeoutfinder/pkg/parser"
)

// Correlator matches timeout disconnects to their originating enter events
// and classifies short-playtime timeouts. It is a pure function of the event
// sequence it is given: correlating the same sorted sequence twice yields
// identical results.
type Correlator struct {
	threshold float64 // minutes, strict upper bound
	logger    *slog.Logger
}

// NewCorrelator creates a correlator with the given threshold in minutes.
// A threshold of zero or less uses DefaultThresholdMinutes.
func NewCorrelator(thresholdMinutes float64, logger *slog.Logger) *Correlator {
	if thresholdMinutes <= 0 {
		thresholdMinutes = DefaultThresholdMinutes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Correlator{
		threshold: thresholdMinutes,
		logger:    logger,
	}
}

// SortEvents stably sorts events by their embedded timestamp text, which
// matches chronological order for the fixed MM/DD/YYYY - HH:MM:SS format
// within one day. Stability means events sharing a timestamp keep their
// input order, so the backward scan binds the latest-in-input enter.
func SortEvents(events []parser.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})
}

// Correlate walks the day's complete event sequence and produces its
// DayResult. The sequence must already be sorted (see SortEvents) and must
// span the whole day: correlating file-local fragments independently would
// miss enters that precede a timeout in an earlier file.
func (c *Correlator) Correlate(day string, events []parser.Event) *DayResult {
	result := &DayResult{Day: day}

	for i, ev := range events {
		switch ev.Kind {
		case parser.KindEnter:
			result.Enters = append(result.Enters, ev)

		case parser.KindTimeoutDisconnect:
			result.TotalTimeoutEvents++
			c.handleTimeout(result, events[:i], ev)
		}
	}

	return result
}

// handleTimeout scans the prefix backwards for the player's most recent
// enter. The first match wins: a player may reconnect several times before
// timing out, and only the latest connect is relevant.
func (c *Correlator) handleTimeout(result *DayResult, prefix []parser.Event, disconnect parser.Event) {
	var enter *parser.Event
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i].Kind == parser.KindEnter && prefix[i].PlayerID == disconnect.PlayerID {
			enter = &prefix[i]
			break
		}
	}

	if enter == nil {
		c.warn(result, fmt.Sprintf("no associated connection for timeout: %q", disconnect.Raw))
		return
	}

	elapsed, err := elapsedMinutes(enter.Timestamp, disconnect.Timestamp)
	if err != nil {
		c.warn(result, fmt.Sprintf("day %s: %v", result.Day, err))
		return
	}

	// Strictly less than the threshold. Zero or negative elapsed time from
	// clock anomalies still qualifies.
	if elapsed < c.threshold {
		result.ShortTimeouts = append(result.ShortTimeouts, CorrelatedTimeout{
			PlayerID:            disconnect.PlayerID,
			EnterTimestamp:      enter.Timestamp,
			DisconnectTimestamp: disconnect.Timestamp,
			ElapsedMinutes:      elapsed,
			RawDisconnectLine:   disconnect.Raw,
		})
	}
}

func (c *Correlator) warn(result *DayResult, msg string) {
	c.logger.Warn(msg, "day", result.Day)
	result.Warnings = append(result.Warnings, msg)
}

// elapsedMinutes parses both timestamps into absolute instants and returns
// their difference in minutes. Textual differences are never computed.
func elapsedMinutes(enterTS, disconnectTS string) (float64, error) {
	enter, err := parser.ParseTimestamp(enterTS)
	if err != nil {
		return 0, fmt.Errorf("enter timestamp: %w", err)
	}

	disconnect, err := parser.ParseTimestamp(disconnectTS)
	if err != nil {
		return 0, fmt.Errorf("disconnect timestamp: %w", err)
	}

	return disconnect.Sub(enter).Minutes(), nil
}
