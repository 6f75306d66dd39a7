package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Record is one scraped asana image. Field order defines the JSON key order
// in the exported manifest. Records are immutable after creation and live for
// a single run.
type Record struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SourceURL string `json:"source_url"`
	LocalPath string `json:"local_path"`
}

// ProcessedRecord is a Record plus the ranked ids of the most similar other
// records, derived by the process stage and never mutated afterwards.
type ProcessedRecord struct {
	Record
	SimilarIDs []string `json:"similar_ids"`
}

// Load reads a Record array from a JSON manifest file.
func Load(path string) ([]Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return records, nil
}

// Write persists scraped records as a UTF-8 JSON array with two-space
// indentation, creating the parent directory if needed.
func Write(path string, records []Record) error {
	return writeJSON(path, records)
}

// WriteProcessed persists processed records in the same shape as Write.
func WriteProcessed(path string, records []ProcessedRecord) error {
	return writeJSON(path, records)
}

func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create manifest dir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ProcessedPath derives the default output path for the process stage by
// inserting "_processed" before the input's extension.
func ProcessedPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_processed" + ext
}
