package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Level identifies the severity tag printed in front of a log line.
type Level int

const (
	// LevelInfo marks progress information.
	LevelInfo Level = iota
	// LevelWarning marks a recoverable problem that was skipped.
	LevelWarning
	// LevelError marks a per-item failure.
	LevelError
	// LevelDone marks the final line of a command.
	LevelDone
)

// Tag returns the bracketed tag for the level.
func (l Level) Tag() string {
	switch l {
	case LevelWarning:
		return "[Warning]"
	case LevelError:
		return "[Error]"
	case LevelDone:
		return "[Done]"
	default:
		return "[Info]"
	}
}

// Logger writes tagged log lines to a writer. It is safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	palette palette
}

// Discard drops every line.
var Discard = New(io.Discard, true)

// isTerminal reports whether a file descriptor is a TTY.
var isTerminal = term.IsTerminal

// New constructs a logger for w. Colors are used only when w is a terminal.
func New(w io.Writer, noColor bool) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{w: w, palette: paletteFor(w, noColor)}
}

// Infof logs an informational line.
func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warnf logs a warning line.
func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarning, format, args...)
}

// Errorf logs an error line.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Donef logs a completion line.
func (l *Logger) Donef(format string, args ...any) {
	l.log(LevelDone, format, args...)
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s\n", l.palette.tag(level), line)
}

type palette struct {
	enabled bool
	styles  map[Level]lipgloss.Style
}

func paletteFor(w io.Writer, noColor bool) palette {
	if noColor || !shouldUseStyling(w) {
		return palette{}
	}
	renderer := lipgloss.NewRenderer(w)
	return palette{
		enabled: true,
		styles: map[Level]lipgloss.Style{
			LevelInfo:    renderer.NewStyle().Foreground(lipgloss.Color("12")),
			LevelWarning: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			LevelError:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			LevelDone:    renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		},
	}
}

func (p palette) tag(level Level) string {
	if !p.enabled {
		return level.Tag()
	}
	return p.styles[level].Render(level.Tag())
}

// shouldUseStyling honours NO_COLOR, TERM=dumb and CLICOLOR=0 before checking for a TTY.
func shouldUseStyling(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return isTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return isTerminal(int(fder.Fd()))
	}
	return false
}
