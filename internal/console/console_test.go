package console

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

// TestLoggerWritesTaggedLines verifies each level prints its tag.
func TestLoggerWritesTaggedLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Infof("Total items: %d", 10)
	logger.Warnf("Output file not found: %s", "a.json")
	logger.Errorf("Failed to score video: %s", "v.mp4")
	logger.Donef("Results written to %s", "out.json")

	want := strings.Join([]string{
		"[Info] Total items: 10",
		"[Warning] Output file not found: a.json",
		"[Error] Failed to score video: v.mp4",
		"[Done] Results written to out.json",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

// TestLoggerNilIsSilent ensures a nil logger can be used without panics.
func TestLoggerNilIsSilent(t *testing.T) {
	var logger *Logger
	logger.Infof("ignored")
}

// TestLoggerConcurrentWrites keeps lines intact under concurrent use.
func TestLoggerConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Infof("line %d", n)
		}(i)
	}
	wg.Wait()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "[Info] line ") {
			t.Fatalf("garbled line %q", line)
		}
	}
}

// TestShouldUseStylingHonoursNoColor verifies NO_COLOR disables styling.
func TestShouldUseStylingHonoursNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if shouldUseStyling(&bytes.Buffer{}) {
		t.Fatalf("expected styling disabled")
	}
}
