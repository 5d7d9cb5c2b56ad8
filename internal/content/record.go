package content

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Kind distinguishes folder records from leaf articles.
type Kind string

const (
	KindFolder Kind = "folder"
	KindLeaf   Kind = "leaf"
)

// Record mirrors one row of the CMS menu export.
type Record struct {
	ID       string `json:"id"`
	ParentID string `json:"parentId,omitempty"`
	Kind     Kind   `json:"kind"`
	Name     string `json:"name"`
	Title    string `json:"title"`
}

// ValidationError names the record that made a content snapshot unusable.
type ValidationError struct {
	RecordID string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.RecordID == "" {
		return fmt.Sprintf("invalid content: %s", e.Reason)
	}
	return fmt.Sprintf("invalid content record %q: %s", e.RecordID, e.Reason)
}

// Load reads and validates a CMS export file.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	records, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Decode parses a JSON export and validates the result.
func Decode(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Validate checks the structural invariants the navigation core depends on:
// unique non-empty IDs, parent links that resolve, and a known kind.
func Validate(records []Record) error {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			return &ValidationError{Reason: "empty id"}
		}
		if _, dup := seen[rec.ID]; dup {
			return &ValidationError{RecordID: rec.ID, Reason: "duplicate id"}
		}
		seen[rec.ID] = struct{}{}
		switch rec.Kind {
		case KindFolder, KindLeaf:
		default:
			return &ValidationError{RecordID: rec.ID, Reason: fmt.Sprintf("unknown kind %q", rec.Kind)}
		}
	}
	for _, rec := range records {
		if rec.ParentID == "" {
			continue
		}
		if rec.ParentID == rec.ID {
			return &ValidationError{RecordID: rec.ID, Reason: "record is its own parent"}
		}
		if _, ok := seen[rec.ParentID]; !ok {
			return &ValidationError{RecordID: rec.ID, Reason: fmt.Sprintf("parent %q does not exist", rec.ParentID)}
		}
	}
	return nil
}
