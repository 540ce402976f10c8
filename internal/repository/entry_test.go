package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/moodtrack/moodtrack/internal/db"
	"github.com/moodtrack/moodtrack/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("db.Init: %v", err)
	}
	t.Cleanup(func() { db.Close(database) })

	err = db.RunMigrations(database.DB)
	if err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}

	return database
}

func TestEntryListsPersistAsJSON(t *testing.T) {
	repo := NewEntryRepository(newTestDB(t))

	entry := &model.JournalEntry{
		ID:               "e1",
		Date:             time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Mood:             model.MoodGood,
		Activities:       []string{"work", "music"},
		CompletedGoalIDs: []string{"g1", "g2"},
		Note:             "two lists in one row",
	}
	err := repo.Save(entry)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := repo.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	got := entries[0]
	if len(got.Activities) != 2 || got.Activities[0] != "work" || got.Activities[1] != "music" {
		t.Errorf("activities lost order or content: %v", got.Activities)
	}
	if len(got.CompletedGoalIDs) != 2 || got.CompletedGoalIDs[0] != "g1" {
		t.Errorf("completed goal ids wrong: %v", got.CompletedGoalIDs)
	}
}

func TestEntryUpsertKeepsRowOrder(t *testing.T) {
	repo := NewEntryRepository(newTestDB(t))
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for _, id := range []string{"a", "b"} {
		err := repo.Save(&model.JournalEntry{ID: id, Date: date, Mood: model.MoodNeutral})
		if err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}

	// Overwrite "a"; it must stay first among same-date entries.
	err := repo.Save(&model.JournalEntry{ID: "a", Date: date, Mood: model.MoodAmazing, Note: "edited"})
	if err != nil {
		t.Fatalf("Save edit: %v", err)
	}

	entries, err := repo.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if entries[0].ID != "a" || entries[1].ID != "b" {
		t.Errorf("order changed after upsert: %s, %s", entries[0].ID, entries[1].ID)
	}
	if entries[0].Mood != model.MoodAmazing {
		t.Errorf("upsert did not overwrite: %+v", entries[0])
	}
}

func TestGoalRepositoryDeleteIdempotent(t *testing.T) {
	repo := NewGoalRepository(newTestDB(t))

	err := repo.Create(&model.Goal{ID: "g1", Text: "Drink water"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete("g1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete("g1"); err != nil {
		t.Errorf("second Delete: %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 goals, got %d", count)
	}
}

func TestSettingRepository(t *testing.T) {
	repo := NewSettingRepository(newTestDB(t))

	_, err := repo.Get("missing")
	if err != ErrSettingNotFound {
		t.Fatalf("expected ErrSettingNotFound, got %v", err)
	}

	if err := repo.Set("k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Set("k", "v2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	value, err := repo.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "v2" {
		t.Errorf("value = %q, want v2", value)
	}
}
