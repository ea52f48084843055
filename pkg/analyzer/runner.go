package analyzer

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/srcds-tools/timeoutfinder/pkg/parser"
)

// Runner fans logical days out over a bounded pool of workers. Each worker
// owns its assigned days end to end and hands back only completed DayResults;
// there is no shared event buffer and no locking on the way out. The final
// merge happens once, after every worker has joined.
type Runner struct {
	workers   int
	processor *DayProcessor
	logger    *slog.Logger
}

// NewRunner creates a runner with the given worker count. A count of zero or
// less uses runtime.NumCPU.
func NewRunner(workers int, processor *DayProcessor, logger *slog.Logger) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		workers:   workers,
		processor: processor,
		logger:    logger,
	}
}

type dayJob struct {
	day   string
	files []string
}

// Run processes every day in the grouping and returns the merged result with
// days in chronological order. Day completion order is unspecified; only the
// final ordering is.
func (r *Runner) Run(ctx context.Context, days map[string][]string) *ScanResult {
	start := time.Now()

	jobs := make(chan dayJob)
	results := make(chan *DayResult)

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- r.processor.ProcessDay(ctx, job.day, job.files)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, day := range parser.SortedDayKeys(days) {
			select {
			case jobs <- dayJob{day: day, files: days[day]}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	result := &ScanResult{
		Metadata: ScanMetadata{
			ThresholdMinutes: r.processor.correlator.threshold,
			StartTime:        start,
		},
	}

	for dayResult := range results {
		result.Days = append(result.Days, dayResult)
	}

	sort.Slice(result.Days, func(i, j int) bool {
		return result.Days[i].Day < result.Days[j].Day
	})

	for _, day := range parser.SortedDayKeys(days) {
		result.Metadata.Sources = append(result.Metadata.Sources, days[day]...)
	}
	result.Metadata.EndTime = time.Now()

	r.logger.Info("finished processing all files",
		"days", len(result.Days),
		"duration", result.Metadata.EndTime.Sub(start).Round(time.Millisecond))

	return result
}
