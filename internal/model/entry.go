package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JournalEntry is one journaling record: a mood, the day's activities,
// optionally the goals completed as part of this entry, and a free-text note.
// Several entries may share the same calendar day; only the id is unique.
type JournalEntry struct {
	ID               string     `db:"id" json:"id"`
	Date             time.Time  `db:"date" json:"date"`
	Mood             int        `db:"mood" json:"mood"`
	Activities       StringList `db:"activities" json:"activities"`
	CompletedGoalIDs StringList `db:"completed_goal_ids" json:"completedGoalIds,omitempty"`
	Note             string     `db:"note" json:"note"`
}

// StringList is a []string stored as a JSON array in a TEXT column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}
