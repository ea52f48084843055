package parser

import (
	"regexp"
	"strings"
)

// Fixed line grammar for srcds console logs. Only lines beginning with the
// "L" record prefix are eligible; everything else (chat echoes, RCON output,
// partial writes) is skipped before pattern matching.
var (
	enterPattern   = regexp.MustCompile(`^.+" entered the game$`)
	timeoutPattern = regexp.MustCompile(`^.+" disconnected \(reason ".+ timed out"\)$`)
)

// recordPrefix is the first byte of every srcds log record.
const recordPrefix = "L"

// Classify determines the event kind of a single log line. It is a pure
// function: no state, no side effects.
//
// A disconnect whose reason is anything other than a timeout is KindOther.
func Classify(line string) Kind {
	if !strings.HasPrefix(line, recordPrefix) {
		return KindOther
	}

	switch {
	case enterPattern.MatchString(line):
		return KindEnter
	case timeoutPattern.MatchString(line):
		return KindTimeoutDisconnect
	default:
		return KindOther
	}
}
