package validation

import (
	"errors"
	"strings"
)

// ValidateGoalText validates a user-supplied goal label
func ValidateGoalText(text string) error {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return errors.New("goal text is required")
	}

	if len(trimmed) > 200 {
		return errors.New("goal text is too long (max 200 characters)")
	}

	return nil
}
