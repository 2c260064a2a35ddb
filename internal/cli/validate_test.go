package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chancharikmitra/vqascore/internal/testutil"
)

// TestValidateCommandSuccess verifies validate command success path.
func TestValidateCommandSuccess(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, filepath.Join(".vqascore", "config.yml"), `version: 1
model:
  name: qwen2.5-vl-7b-cambench
  base_url: http://localhost:8000/v1
  top_logprobs: 5
score:
  workers: 2
`)

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), "Config OK") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestValidateCommandSearchesParents verifies the config is found from a nested directory.
func TestValidateCommandSearchesParents(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, filepath.Join(".vqascore", "config.yml"), "version: 1\n")
	nested := filepath.Join(dir, "data", "clips")
	testutil.WriteFile(t, nested, "keep", "")
	t.Chdir(nested)

	var out, err bytes.Buffer
	if code := Run([]string{"validate"}, &out, &err); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
}

// TestValidateCommandFailure verifies validate command error handling.
func TestValidateCommandFailure(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yml", `version: 2
model:
  media: stream
`)

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	for _, want := range []string{"Validation failed", "version", "model.media"} {
		if !strings.Contains(err.String(), want) {
			t.Fatalf("expected %q in stderr, got %q", want, err.String())
		}
	}
}

// TestValidateCommandNotFound verifies a missing config is reported.
func TestValidateCommandNotFound(t *testing.T) {
	t.Chdir(t.TempDir())
	var out, err bytes.Buffer
	if code := Run([]string{"validate"}, &out, &err); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "config not found") {
		t.Fatalf("expected not found error, got %q", err.String())
	}
}
