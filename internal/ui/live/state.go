package live

import (
	"time"

	"github.com/chancharikmitra/vqascore/internal/runner"
)

// ItemRow holds UI state for a single work item.
type ItemRow struct {
	Index      int
	Video      string
	Label      string
	Status     runner.ItemEventType
	Score      *float64
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// StatusCounts aggregates counts by status bucket.
type StatusCounts struct {
	Queued  int
	Running int
	Done    int
	Scored  int
	Failed  int
	Skipped int
}

// State captures the live UI state for a scoring run.
type State struct {
	RunID      string
	InputPath  string
	OutputPath string
	Total      int
	StartedAt  time.Time
	Finished   bool
	LastEvent  string
	Rows       []ItemRow
	Counts     StatusCounts
}

// Progress returns the completed fraction in [0, 1].
func (s State) Progress() float64 {
	if s.Total <= 0 {
		if s.Finished {
			return 1
		}
		return 0
	}
	return float64(s.Counts.Done) / float64(s.Total)
}
