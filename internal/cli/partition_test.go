package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/chancharikmitra/vqascore/internal/testutil"
)

func TestSplitCommand(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteFile(t, dir, "items.json", `[1,2,3,4,5,6,7,8,9,10]`)
	outDir := filepath.Join(dir, "chunks")

	var out, errOut bytes.Buffer
	code := Run([]string{"split", "--input_file", input, "--num_gpus", "3", "--output_dir", outDir}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	for _, want := range []string{
		"[Info] Total items: 10",
		"[Info] Chunk size: 4",
		"[Info] GPU 2: 2 items -> chunk_2.json",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output, got %q", want, out.String())
		}
	}
	if got := testutil.ReadFile(t, filepath.Join(outDir, "chunk_2.json")); got != "[\n  9,\n  10\n]\n" {
		t.Fatalf("unexpected chunk_2 contents %q", got)
	}
}

func TestSplitCommandMissingArgs(t *testing.T) {
	cases := map[string][]string{
		"no flags":    {"split"},
		"no gpus":     {"split", "--input_file", "x.json", "--output_dir", "out"},
		"zero gpus":   {"split", "--input_file", "x.json", "--num_gpus", "0", "--output_dir", "out"},
		"no out dir":  {"split", "--input_file", "x.json", "--num_gpus", "2"},
		"empty input": {"split", "--input_file", "", "--num_gpus", "2", "--output_dir", "out"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := Run(args, &out, &errOut)
			if code != ExitError {
				t.Fatalf("expected exit %d, got %d", ExitError, code)
			}
			if !strings.Contains(errOut.String(), "Error: split command requires --input_file, --num_gpus, and --output_dir") {
				t.Fatalf("unexpected stderr %q", errOut.String())
			}
		})
	}
}

func TestSplitCommandNegativeCount(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteFile(t, dir, "items.json", `[1]`)
	var out, errOut bytes.Buffer
	code := Run([]string{"split", "--input_file", input, "--num_gpus", "-1", "--output_dir", dir}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(out.String(), "[Error] Split failed") {
		t.Fatalf("expected split failure, got %q", out.String())
	}
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	first := testutil.WriteFile(t, dir, "a.json", `[{"a":1}]`)
	second := testutil.WriteFile(t, dir, "b.json", `[{"a":1}]`)
	missing := filepath.Join(dir, "gone.json")
	final := filepath.Join(dir, "merged.json")

	var out, errOut bytes.Buffer
	code := Run([]string{"merge", "--output_files", first, missing, second, "--final_output", final}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	if got := testutil.ReadFile(t, final); got != "[\n  {\n    \"a\": 1\n  },\n  {\n    \"a\": 1\n  }\n]\n" {
		t.Fatalf("unexpected merged output %q", got)
	}
	for _, want := range []string{
		"[Warning] Output file not found: " + missing,
		"[Info] Merged 1 results from a.json",
		"[Info] Total merged results: 2",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output, got %q", want, out.String())
		}
	}
}

func TestMergeCommandMissingArgs(t *testing.T) {
	for name, args := range map[string][]string{
		"no flags":    {"merge"},
		"no files":    {"merge", "--final_output", "out.json"},
		"no final":    {"merge", "--output_files", "a.json"},
		"empty files": {"merge", "--output_files", "--final_output", "out.json"},
	} {
		t.Run(name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if code := Run(args, &out, &errOut); code != ExitError {
				t.Fatalf("expected exit %d, got %d", ExitError, code)
			}
			if !strings.Contains(errOut.String(), "Error: merge command requires --output_files and --final_output") {
				t.Fatalf("unexpected stderr %q", errOut.String())
			}
		})
	}
	if _, err := os.Stat("out.json"); err == nil {
		t.Fatalf("expected no output file")
	}
}

func TestExpandMultiValue(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "consumes until next flag",
			in:   []string{"--output_files", "a", "b", "--final_output", "o"},
			want: []string{"--output_files", "a", "--output_files", "b", "--final_output", "o"},
		},
		{
			name: "repeated flag appends",
			in:   []string{"--output_files", "a", "-output_files", "b"},
			want: []string{"--output_files", "a", "-output_files", "b"},
		},
		{
			name: "equals form untouched",
			in:   []string{"--output_files=a", "--final_output", "o"},
			want: []string{"--output_files=a", "--final_output", "o"},
		},
		{
			name: "flag without values",
			in:   []string{"--output_files", "--final_output", "o"},
			want: []string{"--final_output", "o"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := expandMultiValue(tc.in, "output_files"); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
