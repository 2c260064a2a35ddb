package workitem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScoreInput is the part of a work item the scorer reads.
type ScoreInput struct {
	Video string
	Label string
}

// Reference describes one label in the reference prompt file.
type Reference struct {
	Definition string `json:"definition"`
}

// Record is one scored output entry. Score is nil when scoring failed.
type Record struct {
	Video    string   `json:"video"`
	Label    string   `json:"label"`
	Question string   `json:"question"`
	Score    *float64 `json:"score"`
	Error    string   `json:"error,omitempty"`
}

// DecodeScoreInput extracts the video and label keys from a work item.
// A partially decoded input is returned alongside the error.
func DecodeScoreInput(item Item) (ScoreInput, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return ScoreInput{}, fmt.Errorf("work item is not an object")
	}
	var input ScoreInput
	label, labelErr := stringField(fields, "label")
	input.Label = label
	video, videoErr := stringField(fields, "video")
	input.Video = video
	if labelErr != nil {
		return input, labelErr
	}
	if videoErr != nil {
		return input, videoErr
	}
	return input, nil
}

func stringField(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("missing %q key", key)
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("%q must be a string", key)
	}
	return value, nil
}

// LoadReferences reads the label -> definition mapping.
func LoadReferences(path string) (map[string]Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	var refs map[string]Reference
	if err := decodeSingle(data, &refs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if refs == nil {
		return nil, fmt.Errorf("parse %s: top-level value is not an object", filepath.Base(path))
	}
	return refs, nil
}

// LoadRecords reads a scored output file.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	var records []Record
	if err := decodeSingle(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// ScoredPath returns the output path for an input file: the input path without its
// extension, suffixed with _scored.json.
func ScoredPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	if strings.TrimLeft(filepath.Base(inputPath), ".") == strings.TrimLeft(ext, ".") {
		ext = ""
	}
	return strings.TrimSuffix(inputPath, ext) + "_scored.json"
}
