package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// defaultColumns returns the column layout for an 80 column terminal.
func defaultColumns() []table.Column {
	return columnsForWidth(80)
}

// columnsForWidth sizes the video column to use the spare terminal width.
func columnsForWidth(width int) []table.Column {
	const fixed = 6 + 20 + 10 + 8 + 8 + 10
	video := max(width-fixed, 16)
	return []table.Column{
		{Title: "#", Width: 6},
		{Title: "Video", Width: video},
		{Title: "Label", Width: 20},
		{Title: "Status", Width: 10},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 8},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatIndex(row.Index),
			formatVideo(row.Video),
			truncate(row.Label, 20),
			formatStatus(row, noColor),
			formatScore(row.Score),
			formatRowDuration(row, now),
		})
	}
	return rows
}
