package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/moodtrack/moodtrack/internal/model"
)

const goalUpsert = `
	INSERT INTO goals (id, text)
	VALUES ($1, $2)
	ON CONFLICT (id) DO UPDATE SET text = excluded.text`

type GoalRepository interface {
	All() ([]model.Goal, error)
	Create(goal *model.Goal) error
	Delete(id string) error
	Count() (int, error)
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) All() ([]model.Goal, error) {
	goals := []model.Goal{}
	query := `SELECT id, text FROM goals ORDER BY rowid ASC`

	err := r.db.Select(&goals, query)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Create(goal *model.Goal) error {
	_, err := r.db.Exec(goalUpsert, goal.ID, goal.Text)
	return err
}

// Delete removes a goal. Entries keep any reference to the deleted id; those
// dangling references are tolerated by all readers.
func (r *goalRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM goals WHERE id = $1`, id)
	return err
}

func (r *goalRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM goals`).Scan(&count)
	return count, err
}
