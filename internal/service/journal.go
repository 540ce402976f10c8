package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/moodtrack/moodtrack/internal/backup"
	"github.com/moodtrack/moodtrack/internal/model"
	"github.com/moodtrack/moodtrack/internal/repository"
	"github.com/moodtrack/moodtrack/internal/validation"
)

// ErrInvalidInput marks caller-supplied input that violates a contract
// (empty goal text, out-of-scale mood, malformed backup document). It is
// returned before any write is attempted.
var ErrInvalidInput = errors.New("invalid input")

// goalsSeededKey is the persisted flag that records whether the default
// goals were ever seeded. It is deliberately distinct from "the goals
// collection is currently empty": deleting every goal does not reset it.
const goalsSeededKey = "goals_seeded"

// JournalService is the single writer over the journal store. It owns the
// canonical view of entries and goals; derived views are computed elsewhere
// from snapshots it returns.
type JournalService struct {
	entries  repository.EntryRepository
	goals    repository.GoalRepository
	settings repository.SettingRepository
	backup   repository.BackupRepository
}

func NewJournalService(
	entries repository.EntryRepository,
	goals repository.GoalRepository,
	settings repository.SettingRepository,
	backupRepo repository.BackupRepository,
) *JournalService {
	return &JournalService{
		entries:  entries,
		goals:    goals,
		settings: settings,
		backup:   backupRepo,
	}
}

// Entries returns all entries, most recent date first; entries sharing a
// date keep insertion order. Storage failures propagate: callers never see
// an empty list standing in for a real error.
func (s *JournalService) Entries() ([]model.JournalEntry, error) {
	return s.entries.All()
}

// SaveEntry validates and upserts an entry. A missing id means a new entry;
// the service allocates the identifier so callers never have to.
func (s *JournalService) SaveEntry(entry *model.JournalEntry) error {
	err := validation.ValidateEntry(entry)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	err = s.entries.Save(entry)
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}

	return nil
}

// DeleteEntry removes an entry by id. Unknown ids are a no-op.
func (s *JournalService) DeleteEntry(id string) error {
	return s.entries.Delete(id)
}

// Goals returns all goals. Reading never seeds; see EnsureDefaultGoals.
func (s *JournalService) Goals() ([]model.Goal, error) {
	return s.goals.All()
}

// AddGoal creates a goal from user text and returns the refreshed list.
func (s *JournalService) AddGoal(text string) ([]model.Goal, error) {
	err := validation.ValidateGoalText(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	goal := &model.Goal{
		ID:   uuid.New().String(),
		Text: text,
	}

	err = s.goals.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return s.goals.All()
}

// DeleteGoal removes a goal by id and returns the refreshed list. Entries
// referencing the goal keep their reference; readers tolerate the dangle.
func (s *JournalService) DeleteGoal(id string) ([]model.Goal, error) {
	err := s.goals.Delete(id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete goal: %w", err)
	}

	return s.goals.All()
}

// EnsureDefaultGoals seeds the default goal set exactly once per store,
// guarded by a persisted flag. It runs at application initialization, not in
// any read path: a store whose goals were all deleted stays empty. A store
// that already holds goals from before the flag existed is marked seeded
// without modification.
func (s *JournalService) EnsureDefaultGoals() error {
	_, err := s.settings.Get(goalsSeededKey)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrSettingNotFound) {
		return fmt.Errorf("failed to read seed flag: %w", err)
	}

	count, err := s.goals.Count()
	if err != nil {
		return fmt.Errorf("failed to count goals: %w", err)
	}

	if count == 0 {
		for _, goal := range model.DefaultGoals() {
			err = s.goals.Create(&goal)
			if err != nil {
				return fmt.Errorf("failed to seed default goal: %w", err)
			}
		}
		slog.Info("seeded default goals", "count", len(model.DefaultGoals()))
	}

	return s.settings.Set(goalsSeededKey, "1")
}

// ClearAll irreversibly empties entries and goals in one transaction. The
// seed flag survives, so a reset store does not resurrect default goals.
func (s *JournalService) ClearAll() error {
	err := s.backup.Clear()
	if err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}

	slog.Info("journal store cleared")
	return nil
}

// Export serializes the full data set as a backup document.
func (s *JournalService) Export() ([]byte, error) {
	entries, err := s.entries.All()
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.All()
	if err != nil {
		return nil, err
	}

	return backup.Serialize(entries, goals)
}

// ImportBackup merges a parsed backup document into the store: every entry
// and goal is upserted by id in one transaction, and records not named in
// the document are untouched. Validation happens before any write.
func (s *JournalService) ImportBackup(doc *backup.Document) error {
	if doc == nil || doc.Entries == nil {
		return fmt.Errorf("%w: backup document missing entries", ErrInvalidInput)
	}

	err := s.backup.Import(doc.Entries, doc.Goals)
	if err != nil {
		return fmt.Errorf("failed to import backup: %w", err)
	}

	slog.Info("backup imported", "entries", len(doc.Entries), "goals", len(doc.Goals))
	return nil
}
