package validation

import (
	"errors"
	"fmt"

	"github.com/moodtrack/moodtrack/internal/model"
)

// ValidateEntry enforces the save-time contract: mood must be on the 1..5
// scale and the entry must carry a date. Values are rejected here, never
// clamped at read time.
func ValidateEntry(entry *model.JournalEntry) error {
	if entry == nil {
		return errors.New("entry is required")
	}

	if !model.ValidMood(entry.Mood) {
		return fmt.Errorf("mood must be between %d and %d", model.MoodTerrible, model.MoodAmazing)
	}

	if entry.Date.IsZero() {
		return errors.New("entry date is required")
	}

	return nil
}
