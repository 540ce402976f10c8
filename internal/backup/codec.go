// Package backup serializes the full data set to and from the portable
// JSON backup document used for export and restore.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/moodtrack/moodtrack/internal/model"
)

// AppVersion is the static version tag stamped into exports.
const AppVersion = "1.0.0"

// ErrInvalidFormat marks a backup document that fails structural validation.
// It is returned before any parsed data reaches the repository.
var ErrInvalidFormat = errors.New("invalid backup format")

// Document is the export/import unit.
type Document struct {
	Entries    []model.JournalEntry `json:"entries"`
	Goals      []model.Goal         `json:"goals"`
	ExportDate time.Time            `json:"exportDate"`
	AppVersion string               `json:"appVersion"`
}

// Serialize produces the backup document for the given snapshot, stamped
// with the current time and version tag.
func Serialize(entries []model.JournalEntry, goals []model.Goal) ([]byte, error) {
	if entries == nil {
		entries = []model.JournalEntry{}
	}
	if goals == nil {
		goals = []model.Goal{}
	}

	doc := Document{
		Entries:    entries,
		Goals:      goals,
		ExportDate: time.Now().UTC(),
		AppVersion: AppVersion,
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Deserialize parses and structurally validates a backup document. The
// entries field must be present and be an array of objects each carrying at
// least id, date and mood. A missing goals field defaults to empty.
func Deserialize(raw []byte) (*Document, error) {
	var probe struct {
		Entries []map[string]json.RawMessage `json:"entries"`
	}

	err := json.Unmarshal(raw, &probe)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if probe.Entries == nil {
		return nil, fmt.Errorf("%w: missing entries array", ErrInvalidFormat)
	}

	for i, fields := range probe.Entries {
		for _, required := range []string{"id", "date", "mood"} {
			_, ok := fields[required]
			if !ok {
				return nil, fmt.Errorf("%w: entry %d missing %s", ErrInvalidFormat, i, required)
			}
		}
	}

	doc := &Document{}
	err = json.Unmarshal(raw, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if doc.Goals == nil {
		doc.Goals = []model.Goal{}
	}

	return doc, nil
}

// Filename returns the dated name exports are written under.
func Filename(now time.Time) string {
	return fmt.Sprintf("moodtrack-backup-%s.json", now.Format("2006-01-02"))
}
