package live

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	line := "Run " + state.RunID
	if state.InputPath != "" {
		line += " | Input: " + state.InputPath
	}
	if !state.StartedAt.IsZero() {
		line += " | Elapsed: " + formatDuration(now.Sub(state.StartedAt))
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the status counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := "Queued: " + fmtInt(counts.Queued) +
		" Running: " + fmtInt(counts.Running) +
		" Done: " + fmtInt(counts.Done) + "/" + fmtInt(state.Total) +
		" Scored: " + fmtInt(counts.Scored) +
		" Failed: " + fmtInt(counts.Failed) +
		" Skipped: " + fmtInt(counts.Skipped)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderProgress renders the completion bar.
func renderProgress(bar progress.Model, state State, noColor bool) string {
	if noColor {
		return asciiBar(state.Progress(), bar.Width)
	}
	return bar.ViewAs(state.Progress())
}

// asciiBar renders a plain progress bar of the given width.
func asciiBar(percent float64, width int) string {
	if width <= 0 {
		width = 40
	}
	percent = min(max(percent, 0), 1)
	filled := int(percent * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "] " +
		fmtInt(int(percent*100)) + "%"
}

// renderFooter renders the last event line.
func renderFooter(state State, noColor bool) string {
	if state.Finished && state.OutputPath != "" {
		return stylize("Results written to "+state.OutputPath, noColor, lipgloss.Color("42"))
	}
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
