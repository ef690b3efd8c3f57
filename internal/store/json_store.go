package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// JSONStore keeps the whole booking collection in a single human-readable
// JSON file. Reads and writes are whole-file and synchronous.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Save(ctx context.Context, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal bookings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Load returns an empty record set when the file does not exist yet. A file
// that exists but does not parse is a real error.
func (s *JSONStore) Load(ctx context.Context) ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return records, nil
}

var _ Store = (*JSONStore)(nil)
