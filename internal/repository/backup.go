package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/moodtrack/moodtrack/internal/model"
)

// BackupRepository covers the two operations that span both the entries and
// goals collections. Each runs inside a single SQLite transaction so a
// mid-operation failure never leaves the collections inconsistent with each
// other.
type BackupRepository interface {
	Import(entries []model.JournalEntry, goals []model.Goal) error
	Clear() error
}

type backupRepository struct {
	db *sqlx.DB
}

func NewBackupRepository(db *sqlx.DB) BackupRepository {
	return &backupRepository{db: db}
}

// Import upserts every record by primary key: incoming records overwrite on
// id collision, records already in the store but absent from the import are
// left untouched.
func (r *backupRepository) Import(entries []model.JournalEntry, goals []model.Goal) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range entries {
		e := &entries[i]
		_, err := tx.Exec(entryUpsert,
			e.ID, e.Date, e.Mood, e.Activities, e.CompletedGoalIDs, e.Note)
		if err != nil {
			return fmt.Errorf("failed to import entry %s: %w", e.ID, err)
		}
	}

	for i := range goals {
		g := &goals[i]
		_, err := tx.Exec(goalUpsert, g.ID, g.Text)
		if err != nil {
			return fmt.Errorf("failed to import goal %s: %w", g.ID, err)
		}
	}

	return tx.Commit()
}

// Clear empties the entries and goals collections. The seed flag in settings
// survives, so defaults are not resurrected after a reset.
func (r *backupRepository) Clear() error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM entries`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`DELETE FROM goals`)
	if err != nil {
		return err
	}

	return tx.Commit()
}
