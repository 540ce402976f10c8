package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/moodtrack/moodtrack/internal/model"
)

// entryUpsert writes an entry by primary key, overwriting on collision.
// ON CONFLICT keeps the original rowid, so editing an entry does not change
// its insertion order.
const entryUpsert = `
	INSERT INTO entries (id, date, mood, activities, completed_goal_ids, note)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		date = excluded.date,
		mood = excluded.mood,
		activities = excluded.activities,
		completed_goal_ids = excluded.completed_goal_ids,
		note = excluded.note`

type EntryRepository interface {
	All() ([]model.JournalEntry, error)
	Save(entry *model.JournalEntry) error
	Delete(id string) error
}

type entryRepository struct {
	db *sqlx.DB
}

func NewEntryRepository(db *sqlx.DB) EntryRepository {
	return &entryRepository{db: db}
}

// All returns every entry, most recent date first. Entries sharing a date
// keep their insertion order (rowid is assigned at first insert).
func (r *entryRepository) All() ([]model.JournalEntry, error) {
	entries := []model.JournalEntry{}
	query := `SELECT id, date, mood, activities, completed_goal_ids, note
	          FROM entries ORDER BY date DESC, rowid ASC`

	err := r.db.Select(&entries, query)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *entryRepository) Save(entry *model.JournalEntry) error {
	_, err := r.db.Exec(entryUpsert,
		entry.ID,
		entry.Date,
		entry.Mood,
		entry.Activities,
		entry.CompletedGoalIDs,
		entry.Note,
	)

	return err
}

// Delete removes an entry. Deleting an id that does not exist is a no-op.
func (r *entryRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM entries WHERE id = $1`, id)
	return err
}
