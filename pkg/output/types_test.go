package output

import (
	"testing"
	"time"

	"github.com/srcds-tools/timeoutfinder/pkg/analyzer"
	"github.com/srcds-tools/timeoutfinder/pkg/parser"
)

func sampleResult() *analyzer.ScanResult {
	enterLine := `L 10/23/2019 - 13:00:00: "Alice<2><STEAM_0:1:1><>" entered the game`
	timeoutLine := `L 10/23/2019 - 13:04:00: "Alice<2><STEAM_0:1:1><>" disconnected (reason "Alice timed out")`

	start := time.Date(2019, 10, 24, 0, 0, 0, 0, time.UTC)

	return &analyzer.ScanResult{
		Days: []*analyzer.DayResult{
			{
				Day: "2019-10-23",
				Enters: []parser.Event{
					{Kind: parser.KindEnter, PlayerID: "STEAM_0:1:1", Timestamp: "10/23/2019 - 13:00:00", Raw: enterLine},
					{Kind: parser.KindEnter, PlayerID: "STEAM_0:1:2", Timestamp: "10/23/2019 - 13:01:00", Raw: enterLine},
					{Kind: parser.KindEnter, PlayerID: "STEAM_0:1:3", Timestamp: "10/23/2019 - 13:02:00", Raw: enterLine},
				},
				ShortTimeouts: []analyzer.CorrelatedTimeout{
					{
						PlayerID:            "STEAM_0:1:1",
						EnterTimestamp:      "10/23/2019 - 13:00:00",
						DisconnectTimestamp: "10/23/2019 - 13:04:00",
						ElapsedMinutes:      4,
						RawDisconnectLine:   timeoutLine,
					},
				},
				TotalTimeoutEvents: 2,
				Warnings:           []string{"no associated connection for timeout"},
			},
			{
				Day:                "2019-10-24",
				TotalTimeoutEvents: 1,
			},
		},
		Metadata: analyzer.ScanMetadata{
			Sources:          []string{"srv-console-2019-10-23-00:00:00.log"},
			ThresholdMinutes: 7,
			StartTime:        start,
			EndTime:          start.Add(2 * time.Second),
		},
	}
}

func TestNewReport(t *testing.T) {
	report := NewReport(sampleResult())

	if report.Summary.DaysScanned != 2 {
		t.Errorf("DaysScanned = %d, want 2", report.Summary.DaysScanned)
	}
	if report.Summary.TotalEnters != 3 {
		t.Errorf("TotalEnters = %d, want 3", report.Summary.TotalEnters)
	}
	if report.Summary.TotalShortTimeouts != 1 {
		t.Errorf("TotalShortTimeouts = %d, want 1", report.Summary.TotalShortTimeouts)
	}
	if report.Metadata.Duration != 2*time.Second {
		t.Errorf("Duration = %v, want 2s", report.Metadata.Duration)
	}
}

func TestNewReport_PercentTimeouts(t *testing.T) {
	report := NewReport(sampleResult())

	day := report.Days[0]
	if day.PercentTimeouts == nil {
		t.Fatal("PercentTimeouts is nil, want 33.33")
	}
	// 100 * 1/3 rounded to two decimals.
	if *day.PercentTimeouts != 33.33 {
		t.Errorf("PercentTimeouts = %g, want 33.33", *day.PercentTimeouts)
	}
	if day.TotalTimeoutEvents != 2 {
		t.Errorf("TotalTimeoutEvents = %d, want 2", day.TotalTimeoutEvents)
	}
}

func TestNewReport_ZeroDenominator(t *testing.T) {
	report := NewReport(sampleResult())

	day := report.Days[1]
	if day.PercentTimeouts != nil {
		t.Errorf("PercentTimeouts = %g, want nil for a day with no enters", *day.PercentTimeouts)
	}
	if len(day.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one zero-denominator warning", day.Warnings)
	}
}

func TestNewReport_RawLinesCarriedThrough(t *testing.T) {
	report := NewReport(sampleResult())

	day := report.Days[0]
	if len(day.Enters) != 3 {
		t.Fatalf("Enters = %d, want 3", len(day.Enters))
	}
	if len(day.Timeouts) != 1 {
		t.Fatalf("Timeouts = %d, want 1", len(day.Timeouts))
	}
	if day.Timeouts[0] == "" {
		t.Error("timeout record lost its raw line")
	}
}

func TestReport_HasWarnings(t *testing.T) {
	report := NewReport(sampleResult())
	if !report.HasWarnings() {
		t.Error("HasWarnings() = false, want true")
	}

	empty := NewReport(&analyzer.ScanResult{})
	if empty.HasWarnings() {
		t.Error("HasWarnings() = true for empty report")
	}
}
