// Package store persists PatternReport artifacts as JSON.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/patternlens/patternlens/internal/domain"
)

// requiredKeys are the top-level fields every pattern artifact must carry.
var requiredKeys = []string{
	"colors", "shadows", "radii", "spacing", "fontSizes", "zIndices",
	"namingStyle", "importStyle", "componentConventions", "folderPaths",
}

// Store is a file-based implementation of domain.ReportStore.
type Store struct{}

func New() *Store {
	return &Store{}
}

// Save writes the report to path as indented JSON. Value order inside the
// artifact is the scanner's discovery order.
func (s *Store) Save(path string, report *domain.PatternReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling pattern report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &domain.PathError{Path: path, Err: err}
	}
	return nil
}

// Load reads and validates a pattern artifact. A missing file is a PathError;
// malformed JSON or a missing expected field is a SchemaError.
func (s *Store) Load(path string) (*domain.PatternReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.PathError{Path: path, Err: err}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &domain.SchemaError{Reason: fmt.Sprintf("not a JSON object: %v", err)}
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, &domain.SchemaError{Reason: fmt.Sprintf("missing %q field", key)}
		}
	}

	var report domain.PatternReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, &domain.SchemaError{Reason: err.Error()}
	}
	return &report, nil
}
