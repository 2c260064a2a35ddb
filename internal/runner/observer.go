package runner

import (
	"sync"
	"time"
)

// ItemEventType identifies a work item status update for observers.
type ItemEventType string

const (
	// ItemQueued marks an item known but not yet picked up by a worker.
	ItemQueued ItemEventType = "queued"
	// ItemRunning marks an in-flight model call.
	ItemRunning ItemEventType = "running"
	// ItemScored marks an item with a score.
	ItemScored ItemEventType = "scored"
	// ItemFailed marks an item recorded with a null score.
	ItemFailed ItemEventType = "failed"
	// ItemSkipped marks an item whose label is not in the reference file.
	ItemSkipped ItemEventType = "skipped"
)

// IsTerminal reports whether no further events follow for the item.
func (t ItemEventType) IsTerminal() bool {
	switch t {
	case ItemScored, ItemFailed, ItemSkipped:
		return true
	default:
		return false
	}
}

// ItemEvent carries a single status update for a work item.
type ItemEvent struct {
	Index     int
	Video     string
	Label     string
	Type      ItemEventType
	Score     *float64
	Error     string
	EmittedAt time.Time
}

// Observer receives scoring lifecycle events for UI or logging.
type Observer interface {
	// OnRunStart signals the start of a run over total work items.
	OnRunStart(runID string, inputPath string, total int)
	// OnItemEvent delivers an item status update.
	OnItemEvent(event ItemEvent)
	// OnRunEnd signals run completion.
	OnRunEnd(summary Summary)
}

// syncObserver serializes callbacks from concurrent workers.
type syncObserver struct {
	mu       sync.Mutex
	observer Observer
}

func newSyncObserver(observer Observer) *syncObserver {
	if observer == nil {
		return nil
	}
	return &syncObserver{observer: observer}
}

func (o *syncObserver) start(runID, inputPath string, total int) {
	if o == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.observer.OnRunStart(runID, inputPath, total)
}

func (o *syncObserver) emit(event ItemEvent) {
	if o == nil {
		return
	}
	if event.EmittedAt.IsZero() {
		event.EmittedAt = time.Now()
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.observer.OnItemEvent(event)
}

func (o *syncObserver) end(summary Summary) {
	if o == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.observer.OnRunEnd(summary)
}
