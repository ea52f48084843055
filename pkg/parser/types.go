// Package parser provides log file reading and event extraction for
// srcds-style console logs.
package parser

// Kind classifies a single log line.
type Kind int

const (
	// KindOther marks lines that are neither enter nor timeout events.
	KindOther Kind = iota

	// KindEnter marks a player entering the game.
	KindEnter

	// KindTimeoutDisconnect marks a disconnect whose reason is a timeout.
	// Disconnects for any other reason are KindOther.
	KindTimeoutDisconnect
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEnter:
		return "enter"
	case KindTimeoutDisconnect:
		return "timeout_disconnect"
	default:
		return "other"
	}
}

// Event is a single extracted log event. The timestamp is kept as the raw
// text from the line; converting it to an absolute instant is a separate,
// fallible step (see ParseTimestamp).
type Event struct {
	// Kind is KindEnter or KindTimeoutDisconnect. Events are never created
	// for KindOther lines.
	Kind Kind

	// PlayerID is the persistent identity extracted from the bracketed
	// player segment (STEAM_X:Y:Z). Never empty on a successfully parsed
	// event.
	PlayerID string

	// Timestamp is the textual date-time prefix of the line, in the fixed
	// MM/DD/YYYY - HH:MM:SS format.
	Timestamp string

	// Raw is the original line content.
	Raw string
}
