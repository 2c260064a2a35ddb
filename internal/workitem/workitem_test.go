package workitem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestParseArrayKeepsRawItems verifies items are returned without reinterpretation.
func TestParseArrayKeepsRawItems(t *testing.T) {
	items, err := ParseArray([]byte(`[{"a": 1}, 2, "three", null]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	if string(items[0]) != `{"a": 1}` {
		t.Fatalf("unexpected first item %s", items[0])
	}
	if string(items[3]) != "null" {
		t.Fatalf("unexpected last item %s", items[3])
	}
}

// TestParseArrayRejectsNonArrays covers objects, null and trailing documents.
func TestParseArrayRejectsNonArrays(t *testing.T) {
	cases := []string{`{"a": 1}`, `null`, `[1] [2]`, `[1,`, ``}
	for _, input := range cases {
		if _, err := ParseArray([]byte(input)); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

// TestParseArrayEmpty returns a non-nil empty slice.
func TestParseArrayEmpty(t *testing.T) {
	items, err := ParseArray([]byte(" [] \n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty slice, got %#v", items)
	}
}

// TestWriteJSONIndentsTwoSpaces verifies the on-disk layout.
func TestWriteJSONIndentsTwoSpaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	items := []Item{Item(`{"a":1,"b":"<x>"}`)}
	if err := WriteJSON(path, items); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "[\n  {\n    \"a\": 1,\n    \"b\": \"<x>\"\n  }\n]\n"
	if string(data) != want {
		t.Fatalf("unexpected output:\n%s", data)
	}
}

// TestLoadArrayMissingFile wraps the not-exist error with the file name.
func TestLoadArrayMissingFile(t *testing.T) {
	_, err := LoadArray(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.json") {
		t.Fatalf("expected file name in error, got %q", err.Error())
	}
}

// TestDecodeScoreInput covers the required keys.
func TestDecodeScoreInput(t *testing.T) {
	input, err := DecodeScoreInput(Item(`{"video": "v.mp4", "label": "pan_left", "extra": 1}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if input.Video != "v.mp4" || input.Label != "pan_left" {
		t.Fatalf("unexpected input %+v", input)
	}

	input, err = DecodeScoreInput(Item(`{"label": "zoom_in"}`))
	if err == nil || !strings.Contains(err.Error(), "video") {
		t.Fatalf("expected missing video error, got %v", err)
	}
	if input.Label != "zoom_in" {
		t.Fatalf("expected label kept on partial decode, got %q", input.Label)
	}

	if _, err := DecodeScoreInput(Item(`{"video": 3, "label": "x"}`)); err == nil {
		t.Fatalf("expected type error")
	}
	if _, err := DecodeScoreInput(Item(`[1]`)); err == nil {
		t.Fatalf("expected object error")
	}
}

// TestLoadReferences reads definitions and ignores extra keys.
func TestLoadReferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.json")
	body := `{"pan_left": {"definition": "Does the camera pan left? ", "examples": []}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	refs, err := LoadReferences(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if refs["pan_left"].Definition != "Does the camera pan left? " {
		t.Fatalf("unexpected refs %+v", refs)
	}
}

// TestScoredPath mirrors the stem + _scored.json convention.
func TestScoredPath(t *testing.T) {
	cases := map[string]string{
		"data/chunk_0.json": "data/chunk_0_scored.json",
		"items":             "items_scored.json",
		"dir.v1/items":      "dir.v1/items_scored.json",
		"dir/.hidden":       "dir/.hidden_scored.json",
		"a/b.tar.json":      "a/b.tar_scored.json",
	}
	for input, want := range cases {
		got := ScoredPath(filepath.FromSlash(input))
		if got != filepath.FromSlash(want) {
			t.Fatalf("ScoredPath(%q) = %q, want %q", input, got, want)
		}
	}
}

// TestLoadRecordsNullScore keeps null scores as nil.
func TestLoadRecordsNullScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scored.json")
	body := `[{"video":"a","label":"l","question":"q","score":0.5},{"video":"b","label":"l","question":"q","score":null}]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 || records[0].Score == nil || *records[0].Score != 0.5 || records[1].Score != nil {
		t.Fatalf("unexpected records %+v", records)
	}
}
