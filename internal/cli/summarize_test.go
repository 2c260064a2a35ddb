package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chancharikmitra/vqascore/internal/testutil"
)

const scoredFile = `[
  {"video": "a.mp4", "label": "pan", "question": "Q", "score": 0.5},
  {"video": "b.mp4", "label": "pan", "question": "Q", "score": 0.7},
  {"video": "c.mp4", "label": "zoom", "question": "Q", "score": null, "error": "timeout"}
]`

func TestSummarizeCommand(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "items_scored.json", scoredFile)

	var out, errOut bytes.Buffer
	code := Run([]string{"summarize", path, path}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	output := out.String()
	for _, want := range []string{
		"[Info] Loaded 3 records from " + path,
		"[Info] Already loaded " + path,
		"pan: count=2 scored=2 failed=0 mean=0.6000 min=0.5000 max=0.7000",
		"zoom: count=1 scored=0 failed=1 mean=n/a min=n/a max=n/a",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got %q", want, output)
		}
	}
	if strings.Index(output, "pan:") > strings.Index(output, "zoom:") {
		t.Fatalf("expected labels in order, got %q", output)
	}
}

func TestSummarizeCommandPersistsDatabase(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "items_scored.json", scoredFile)
	dbPath := filepath.Join(dir, "scores.duckdb")

	var out, errOut bytes.Buffer
	if code := Run([]string{"summarize", "--db", dbPath, path}, &out, &errOut); code != ExitOK {
		t.Fatalf("first run: exit %d (stderr %q)", code, errOut.String())
	}
	out.Reset()
	if code := Run([]string{"summarize", "--db", dbPath, path}, &out, &errOut); code != ExitOK {
		t.Fatalf("second run: exit %d (stderr %q)", code, errOut.String())
	}
	if !strings.Contains(out.String(), "Already loaded "+path) {
		t.Fatalf("expected batch to persist across runs, got %q", out.String())
	}
	if !strings.Contains(out.String(), "pan: count=2") {
		t.Fatalf("expected stats without double counting, got %q", out.String())
	}
}

func TestSummarizeCommandErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"summarize"}, &out, &errOut); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	errOut.Reset()
	dir := t.TempDir()
	bad := testutil.WriteFile(t, dir, "bad.json", `{"not": "an array"}`)
	if code := Run([]string{"summarize", bad}, &out, &errOut); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Failed to load "+bad) {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}
