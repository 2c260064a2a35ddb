package live

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/chancharikmitra/vqascore/internal/runner"
)

// formatIndex formats a one-based item index.
func formatIndex(index int) string {
	return fmtInt(index + 1)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatVideo shortens a media path to its base name for display.
func formatVideo(video string) string {
	if video == "" {
		return ""
	}
	if strings.Contains(video, "://") {
		return truncate(video, 48)
	}
	return truncate(filepath.Base(video), 48)
}

// truncate shortens text to limit runes with a trailing ellipsis.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}

// formatScore renders a score with four decimals or a placeholder.
func formatScore(score *float64) string {
	if score == nil {
		return "-"
	}
	return strconv.FormatFloat(*score, 'f', 4, 64)
}

// formatStatus renders a status string for a row.
func formatStatus(row ItemRow, noColor bool) string {
	label := string(row.Status)
	if label == "" {
		label = string(runner.ItemQueued)
	}
	return stylizeStatus(label, row.Status, noColor)
}

// formatRowDuration returns elapsed or total time for a row.
func formatRowDuration(row ItemRow, now time.Time) string {
	if !row.FinishedAt.IsZero() && !row.StartedAt.IsZero() {
		return formatDuration(row.FinishedAt.Sub(row.StartedAt))
	}
	if !row.StartedAt.IsZero() {
		return formatDuration(now.Sub(row.StartedAt))
	}
	return ""
}

// formatDuration renders a rounded duration for display.
func formatDuration(duration time.Duration) string {
	if duration <= 0 {
		return "0s"
	}
	return duration.Round(100 * time.Millisecond).String()
}

// stylizeStatus applies status coloring when enabled.
func stylizeStatus(text string, status runner.ItemEventType, noColor bool) string {
	if noColor {
		return text
	}
	return statusStyle(status).Render(text)
}

// statusStyle selects a style for a given status.
func statusStyle(status runner.ItemEventType) lipgloss.Style {
	color := lipgloss.Color("244")
	switch status {
	case runner.ItemScored:
		color = lipgloss.Color("42")
	case runner.ItemFailed:
		color = lipgloss.Color("196")
	case runner.ItemSkipped:
		color = lipgloss.Color("220")
	case runner.ItemRunning:
		color = lipgloss.Color("33")
	case runner.ItemQueued:
		color = lipgloss.Color("246")
	}
	return lipgloss.NewStyle().Foreground(color)
}
