// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quotes serializes the extracted record list and computes
// run summaries.
package quotes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/amirshahdadian/wikiquote-voice-search/pkg/types"
)

// SaveJSON writes the record list to path as an indented JSON array with
// stable field order (quote, author, source).
func SaveJSON(path string, records []types.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return writeFile(path, data)
}

// SaveYAML writes the record list to path as a YAML sequence.
func SaveYAML(path string, records []types.Record) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return writeFile(path, data)
}

// Load reads a JSON record list previously written by SaveJSON.
func Load(path string) ([]types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading quotes file %s: %w", path, err)
	}
	var records []types.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing quotes file %s: %w", path, err)
	}
	return records, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Summary holds counts over an extracted record list.
type Summary struct {
	Quotes  int
	Authors int
	Sources int
}

// Summarize counts records and the distinct authors and sources among
// them, by exact string identity.
func Summarize(records []types.Record) Summary {
	authors := make(map[string]struct{})
	sources := make(map[string]struct{})
	for _, r := range records {
		authors[r.Author] = struct{}{}
		sources[r.Source] = struct{}{}
	}
	return Summary{
		Quotes:  len(records),
		Authors: len(authors),
		Sources: len(sources),
	}
}
