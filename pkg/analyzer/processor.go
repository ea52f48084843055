package analyzer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/srcds-tools/timeoutfinder/pkg/parser"
)

// DayProcessor runs one logical day end to end: read every file in the day's
// set through a ChunkReader, classify and parse each eligible line, sort the
// assembled event sequence, then correlate. Days share no mutable state, so
// distinct days may be processed concurrently.
type DayProcessor struct {
	chunkSize  int
	correlator *Correlator
	logger     *slog.Logger
}

// NewDayProcessor creates a processor that reads in batches of chunkSize
// lines (zero or less uses parser.DefaultChunkSize).
func NewDayProcessor(chunkSize int, correlator *Correlator, logger *slog.Logger) *DayProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &DayProcessor{
		chunkSize:  chunkSize,
		correlator: correlator,
		logger:     logger,
	}
}

// ProcessDay produces the DayResult for one day's file set. A file that
// cannot be read contributes zero events and a diagnostic; it never aborts
// the other files or the day.
func (p *DayProcessor) ProcessDay(ctx context.Context, day string, files []string) *DayResult {
	var (
		events     []parser.Event
		warnings   []string
		fileErrors []string
	)

	p.logger.Info("processing day", "day", day, "files", len(files))

	for _, path := range files {
		fileEvents, fileWarnings, err := p.readFile(ctx, path)
		warnings = append(warnings, fileWarnings...)
		if err != nil {
			msg := fmt.Sprintf("reading %s: %v", path, err)
			p.logger.Error(msg, "day", day)
			fileErrors = append(fileErrors, msg)
			continue
		}
		events = append(events, fileEvents...)
	}

	// The whole day's events must be merged before correlation: a timeout in
	// one file may pair with an enter in an earlier file.
	SortEvents(events)

	result := p.correlator.Correlate(day, events)
	result.Warnings = append(warnings, result.Warnings...)
	result.FileErrors = fileErrors

	return result
}

// readFile extracts all events from one file in bounded batches.
func (p *DayProcessor) readFile(ctx context.Context, path string) ([]parser.Event, []string, error) {
	reader := parser.NewChunkReader(path, p.chunkSize)
	defer reader.Close()

	var (
		events   []parser.Event
		warnings []string
	)

	for {
		lines, err := reader.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, warnings, err
		}

		for _, line := range lines {
			kind := parser.Classify(line)
			if kind == parser.KindOther {
				continue
			}

			ev, err := parser.ParseEvent(kind, line)
			if err != nil {
				// Dropped line, never a fatal condition.
				msg := fmt.Sprintf("dropping line: %v", err)
				p.logger.Warn(msg, "file", path)
				warnings = append(warnings, msg)
				continue
			}

			events = append(events, *ev)
		}
	}

	return events, warnings, nil
}
