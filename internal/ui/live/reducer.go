package live

import (
	"fmt"

	"github.com/chancharikmitra/vqascore/internal/runner"
)

// Reduce applies an item event to the UI state.
func Reduce(state State, event runner.ItemEvent) State {
	state = ensureRow(state, event)
	state = applyItemEvent(state, event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ensureRow grows the state rows to include the target index.
func ensureRow(state State, event runner.ItemEvent) State {
	if event.Index < 0 || event.Index < len(state.Rows) {
		return state
	}
	rows := make([]ItemRow, event.Index+1)
	copy(rows, state.Rows)
	for i := len(state.Rows); i < len(rows); i++ {
		rows[i] = ItemRow{Index: i, Status: runner.ItemQueued}
	}
	state.Rows = rows
	return state
}

// applyItemEvent updates a row with the given event.
func applyItemEvent(state State, event runner.ItemEvent) State {
	if event.Index < 0 || event.Index >= len(state.Rows) {
		return state
	}
	row := state.Rows[event.Index]
	if row.Video == "" {
		row.Video = event.Video
	}
	if row.Label == "" {
		row.Label = event.Label
	}
	if row.Status.IsTerminal() {
		state.Rows[event.Index] = row
		return state
	}
	row.Status = event.Type
	if event.Type == runner.ItemRunning && row.StartedAt.IsZero() {
		row.StartedAt = event.EmittedAt
	}
	if event.Type.IsTerminal() {
		row.FinishedAt = event.EmittedAt
		row.Score = event.Score
		row.Error = event.Error
	}
	state.Rows[event.Index] = row
	return state
}

// recount recomputes status counts for the current rows.
func recount(rows []ItemRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case runner.ItemQueued:
			counts.Queued++
		case runner.ItemRunning:
			counts.Running++
		case runner.ItemScored:
			counts.Done++
			counts.Scored++
		case runner.ItemFailed:
			counts.Done++
			counts.Failed++
		case runner.ItemSkipped:
			counts.Done++
			counts.Skipped++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event runner.ItemEvent) string {
	switch event.Type {
	case runner.ItemScored:
		if event.Score != nil {
			return fmt.Sprintf("#%d %s scored %.4f", event.Index+1, event.Label, *event.Score)
		}
	case runner.ItemFailed:
		return fmt.Sprintf("#%d %s failed: %s", event.Index+1, event.Video, event.Error)
	case runner.ItemSkipped:
		return fmt.Sprintf("#%d label %q not in reference file", event.Index+1, event.Label)
	}
	return ""
}
