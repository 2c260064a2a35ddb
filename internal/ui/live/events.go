package live

import "github.com/chancharikmitra/vqascore/internal/runner"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a run.
	EventRunStart EventKind = iota
	// EventItem delivers a work item status update.
	EventItem
	// EventRunEnd signals run completion.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind      EventKind
	RunID     string
	InputPath string
	Total     int
	Item      runner.ItemEvent
	Summary   runner.Summary
}
