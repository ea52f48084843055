package parser

import (
	"fmt"
	"regexp"
	"time"
)

// TimestampLayout is the Go layout for the fixed srcds timestamp format
// (MM/DD/YYYY - HH:MM:SS).
const TimestampLayout = "01/02/2006 - 15:04:05"

var (
	// timestampPattern captures the date-time prefix of a log record.
	timestampPattern = regexp.MustCompile(`(\d\d/\d\d/\d\d\d\d - \d\d:\d\d:\d\d):`)

	// playerIDPattern captures the persistent identity from the bracketed
	// player segment: "Name<handle><STEAM_X:Y:Z><>".
	playerIDPattern = regexp.MustCompile(`: ".*<\d+><(STEAM_\d+:\d+:\d+)><>"`)
)

// ParseEvent extracts the player identity and timestamp text from a line
// already classified as KindEnter or KindTimeoutDisconnect.
//
// Extraction fails explicitly when the expected structure is absent; a
// default identity is never substituted. A failed line produces no event and
// the caller is expected to drop it with a warning.
func ParseEvent(kind Kind, line string) (*Event, error) {
	if kind != KindEnter && kind != KindTimeoutDisconnect {
		return nil, fmt.Errorf("line is not an event (kind %s)", kind)
	}

	playerID, err := extractPlayerID(line)
	if err != nil {
		return nil, err
	}

	ts, err := extractTimestamp(line)
	if err != nil {
		return nil, err
	}

	return &Event{
		Kind:      kind,
		PlayerID:  playerID,
		Timestamp: ts,
		Raw:       line,
	}, nil
}

// ParseTimestamp converts the textual timestamp of an event into an absolute
// instant.
func ParseTimestamp(ts string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", ts, err)
	}
	return t, nil
}

func extractPlayerID(line string) (string, error) {
	matches := playerIDPattern.FindStringSubmatch(line)
	if matches == nil {
		return "", fmt.Errorf("no player id in line %q", line)
	}
	return matches[1], nil
}

func extractTimestamp(line string) (string, error) {
	matches := timestampPattern.FindStringSubmatch(line)
	if matches == nil {
		return "", fmt.Errorf("no timestamp in line %q", line)
	}
	return matches[1], nil
}
