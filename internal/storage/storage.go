package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Format is a serialization format for exported plans.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// Encode serializes v in the given format.
func Encode(format Format, v any) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		return yaml.Marshal(v)
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

// Decode parses data in the given format into v.
func Decode(format Format, data []byte, v any) error {
	switch format {
	case FormatJSON:
		return json.Unmarshal(data, v)
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// ExportStore provides a file-based store for exported plans, one file per
// plan ID and format.
type ExportStore struct {
	basePath string
}

// NewExportStore creates a new ExportStore and ensures the base directory exists.
func NewExportStore(basePath string) (*ExportStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &ExportStore{basePath: basePath}, nil
}

// Path returns the full path for a given plan ID and format.
func (s *ExportStore) Path(id string, format Format) string {
	return filepath.Join(s.basePath, fmt.Sprintf("%s.%s", id, format))
}

// Save writes v to the plan's export file and returns its path.
func (s *ExportStore) Save(id string, format Format, v any) (string, error) {
	data, err := Encode(format, v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal export %s: %w", id, err)
	}

	filePath := s.Path(id, format)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return filePath, nil
}

// Load reads a plan's export file into v.
func (s *ExportStore) Load(id string, format Format, v any) error {
	data, err := os.ReadFile(s.Path(id, format))
	if err != nil {
		return fmt.Errorf("failed to read export file: %w", err)
	}
	if err := Decode(format, data, v); err != nil {
		return fmt.Errorf("failed to unmarshal export %s: %w", id, err)
	}
	return nil
}

// Exists checks if an export file exists.
func (s *ExportStore) Exists(id string, format Format) bool {
	_, err := os.Stat(s.Path(id, format))
	return !os.IsNotExist(err)
}

// Remove deletes every export of a plan ID.
func (s *ExportStore) Remove(id string) error {
	matches, err := filepath.Glob(filepath.Join(s.basePath, id+".*"))
	if err != nil {
		return fmt.Errorf("failed to glob export files: %w", err)
	}

	for _, match := range matches {
		if err := os.Remove(match); err != nil {
			return fmt.Errorf("failed to remove export file %s: %w", match, err)
		}
	}
	return nil
}
