package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/moodtrack/moodtrack/internal/backup"
	"github.com/moodtrack/moodtrack/internal/db"
	"github.com/moodtrack/moodtrack/internal/model"
	"github.com/moodtrack/moodtrack/internal/repository"
)

func newTestService(t *testing.T) *JournalService {
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

	return NewJournalService(
		repository.NewEntryRepository(database),
		repository.NewGoalRepository(database),
		repository.NewSettingRepository(database),
		repository.NewBackupRepository(database),
	)
}

func testEntry(id string, date time.Time, mood int) *model.JournalEntry {
	return &model.JournalEntry{ID: id, Date: date, Mood: mood}
}

func TestSaveAndListEntries(t *testing.T) {
	s := newTestService(t)
	base := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"e1", "e2", "e3"} {
		err := s.SaveEntry(testEntry(id, base.AddDate(0, 0, i), model.MoodGood))
		if err != nil {
			t.Fatalf("SaveEntry %s: %v", id, err)
		}
	}

	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Most recent date first.
	want := []string{"e3", "e2", "e1"}
	for i, w := range want {
		if entries[i].ID != w {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].ID, w)
		}
	}
}

func TestEntriesSameDateKeepInsertionOrder(t *testing.T) {
	s := newTestService(t)
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for _, id := range []string{"first", "second", "third"} {
		err := s.SaveEntry(testEntry(id, date, model.MoodNeutral))
		if err != nil {
			t.Fatalf("SaveEntry: %v", err)
		}
	}

	// Editing an entry must not move it.
	edited := testEntry("second", date, model.MoodAmazing)
	edited.Note = "edited"
	err := s.SaveEntry(edited)
	if err != nil {
		t.Fatalf("SaveEntry edit: %v", err)
	}

	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}

	want := []string{"first", "second", "third"}
	for i, w := range want {
		if entries[i].ID != w {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].ID, w)
		}
	}
	if entries[1].Mood != model.MoodAmazing || entries[1].Note != "edited" {
		t.Errorf("edit not applied: %+v", entries[1])
	}
}

func TestSaveEntryAllocatesID(t *testing.T) {
	s := newTestService(t)

	entry := testEntry("", time.Now(), model.MoodGood)
	err := s.SaveEntry(entry)
	if err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}
	if entry.ID == "" {
		t.Error("expected an allocated id")
	}
}

func TestSaveEntryRejectsInvalidMood(t *testing.T) {
	s := newTestService(t)

	for _, mood := range []int{0, 6, -1} {
		err := s.SaveEntry(testEntry("", time.Now(), mood))
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("mood %d: expected ErrInvalidInput, got %v", mood, err)
		}
	}

	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries after rejected saves, got %d", len(entries))
	}
}

func TestDeleteEntryIdempotent(t *testing.T) {
	s := newTestService(t)

	entry := testEntry("", time.Now(), model.MoodGood)
	if err := s.SaveEntry(entry); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}

	if err := s.DeleteEntry(entry.ID); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if err := s.DeleteEntry(entry.ID); err != nil {
		t.Errorf("second DeleteEntry: %v", err)
	}
	if err := s.DeleteEntry("never-existed"); err != nil {
		t.Errorf("DeleteEntry unknown id: %v", err)
	}
}

func TestEnsureDefaultGoalsSeedsOnce(t *testing.T) {
	s := newTestService(t)

	err := s.EnsureDefaultGoals()
	if err != nil {
		t.Fatalf("EnsureDefaultGoals: %v", err)
	}

	goals, err := s.Goals()
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 3 {
		t.Fatalf("expected 3 default goals, got %d", len(goals))
	}
	wantTexts := map[string]bool{"Drink water": true, "Read 10 pages": true, "Meditate": true}
	for _, g := range goals {
		if !wantTexts[g.Text] {
			t.Errorf("unexpected default goal %q", g.Text)
		}
	}

	// Deleting every goal must not bring the defaults back.
	for _, g := range goals {
		_, err := s.DeleteGoal(g.ID)
		if err != nil {
			t.Fatalf("DeleteGoal: %v", err)
		}
	}
	err = s.EnsureDefaultGoals()
	if err != nil {
		t.Fatalf("EnsureDefaultGoals: %v", err)
	}

	goals, err = s.Goals()
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("expected no re-seed, got %d goals", len(goals))
	}
}

func TestEnsureDefaultGoalsSkipsExistingData(t *testing.T) {
	s := newTestService(t)

	// A store that already holds goals (written before the flag existed)
	// is marked seeded without modification.
	_, err := s.AddGoal("Stretch")
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}

	err = s.EnsureDefaultGoals()
	if err != nil {
		t.Fatalf("EnsureDefaultGoals: %v", err)
	}

	goals, err := s.Goals()
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 1 || goals[0].Text != "Stretch" {
		t.Errorf("expected only the existing goal, got %v", goals)
	}
}

func TestAddGoalRejectsBlankText(t *testing.T) {
	s := newTestService(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := s.AddGoal(text)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("AddGoal(%q): expected ErrInvalidInput, got %v", text, err)
		}
	}

	goals, err := s.Goals()
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("expected no goals created, got %d", len(goals))
	}
}

func TestAddGoalReturnsRefreshedList(t *testing.T) {
	s := newTestService(t)

	goals, err := s.AddGoal("Walk the dog")
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}
	if len(goals) != 1 || goals[0].Text != "Walk the dog" {
		t.Fatalf("unexpected list: %v", goals)
	}
	if goals[0].ID == "" {
		t.Error("expected an allocated goal id")
	}

	goals, err = s.DeleteGoal(goals[0].ID)
	if err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("expected empty list after delete, got %v", goals)
	}
}

func TestImportBackupUpserts(t *testing.T) {
	s := newTestService(t)
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	existing := testEntry("e1", date, model.MoodBad)
	untouched := testEntry("e2", date.AddDate(0, 0, -1), model.MoodNeutral)
	for _, e := range []*model.JournalEntry{existing, untouched} {
		if err := s.SaveEntry(e); err != nil {
			t.Fatalf("SaveEntry: %v", err)
		}
	}

	imported := *testEntry("e1", date, model.MoodAmazing)
	imported.Note = "from backup"
	// References a goal id that does not exist locally; readers tolerate it.
	imported.CompletedGoalIDs = []string{"goal-from-other-device"}
	fresh := *testEntry("e3", date.AddDate(0, 0, 1), model.MoodGood)

	doc := &backup.Document{
		Entries: []model.JournalEntry{imported, fresh},
		Goals:   []model.Goal{{ID: "gx", Text: "Journal daily"}},
	}
	err := s.ImportBackup(doc)
	if err != nil {
		t.Fatalf("ImportBackup: %v", err)
	}

	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	byID := map[string]model.JournalEntry{}
	for _, e := range entries {
		byID[e.ID] = e
	}
	if byID["e1"].Mood != model.MoodAmazing || byID["e1"].Note != "from backup" {
		t.Errorf("imported version did not win: %+v", byID["e1"])
	}
	if byID["e2"].Mood != model.MoodNeutral {
		t.Errorf("entry outside the import changed: %+v", byID["e2"])
	}
	if _, ok := byID["e3"]; !ok {
		t.Error("new entry from import missing")
	}

	goals, err := s.Goals()
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != "gx" {
		t.Errorf("unexpected goals after import: %v", goals)
	}
}

func TestImportBackupRejectsMissingEntries(t *testing.T) {
	s := newTestService(t)

	if err := s.SaveEntry(testEntry("keep", time.Now(), model.MoodGood)); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}

	err := s.ImportBackup(&backup.Document{Goals: []model.Goal{{ID: "g", Text: "x"}}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// Validation failed before any write.
	goals, err := s.Goals()
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("goals written despite rejected import: %v", goals)
	}
	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("entries changed despite rejected import: %v", entries)
	}
}

func TestClearAll(t *testing.T) {
	s := newTestService(t)

	err := s.EnsureDefaultGoals()
	if err != nil {
		t.Fatalf("EnsureDefaultGoals: %v", err)
	}
	if err := s.SaveEntry(testEntry("", time.Now(), model.MoodGood)); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}

	err = s.ClearAll()
	if err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	entries, err := s.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	goals, err := s.Goals()
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(entries) != 0 || len(goals) != 0 {
		t.Errorf("expected empty store, got %d entries and %d goals", len(entries), len(goals))
	}

	// The seed flag survives a reset; defaults stay gone.
	err = s.EnsureDefaultGoals()
	if err != nil {
		t.Fatalf("EnsureDefaultGoals: %v", err)
	}
	goals, err = s.Goals()
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("defaults resurrected after reset: %v", goals)
	}
}

func TestExportRoundTrip(t *testing.T) {
	s := newTestService(t)

	entry := testEntry("e1", time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), model.MoodGood)
	entry.Activities = []string{"work"}
	if err := s.SaveEntry(entry); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}
	if _, err := s.AddGoal("Drink water"); err != nil {
		t.Fatalf("AddGoal: %v", err)
	}

	raw, err := s.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	doc, err := backup.Deserialize(raw)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	// Restoring the export into a fresh store reproduces the data set.
	other := newTestService(t)
	err = other.ImportBackup(doc)
	if err != nil {
		t.Fatalf("ImportBackup: %v", err)
	}

	entries, err := other.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "e1" || len(entries[0].Activities) != 1 {
		t.Errorf("unexpected restored entries: %+v", entries)
	}
	goals, err := other.Goals()
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 1 || goals[0].Text != "Drink water" {
		t.Errorf("unexpected restored goals: %+v", goals)
	}
}
