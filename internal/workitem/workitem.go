package workitem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Item is one opaque element of a work list. It is kept as raw JSON so split and merge
// round-trip values they never inspect.
type Item = json.RawMessage

// LoadArray reads a file whose top-level JSON value is an array.
func LoadArray(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	items, err := ParseArray(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return items, nil
}

// ParseArray decodes a single JSON array document.
func ParseArray(data []byte) ([]Item, error) {
	var items []Item
	if err := decodeSingle(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, fmt.Errorf("top-level value is not an array")
	}
	return items, nil
}

// WriteJSON writes value as 2-space indented JSON, replacing any existing file.
func WriteJSON(path string, value any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// decodeSingle decodes exactly one JSON document from data.
func decodeSingle(data []byte, out any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(out); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("multiple JSON documents are not supported")
		}
		return err
	}
	return nil
}
