package service

import (
	"strings"
	"testing"
	"time"

	"github.com/moodtrack/moodtrack/internal/model"
)

func TestReportMarkdown(t *testing.T) {
	journal := newTestService(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	goals, err := journal.AddGoal("Drink water")
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}

	entry := testEntry("e1", now.Add(-3*time.Hour), model.MoodGood)
	entry.Activities = []string{"work", "not-in-catalog"}
	entry.CompletedGoalIDs = []string{goals[0].ID, "deleted-goal"}
	entry.Note = "long day\nbut a good one"
	if err := journal.SaveEntry(entry); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}

	report := NewReportService(journal)
	markdown, err := report.Markdown(now)
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}

	for _, want := range []string{
		"# MoodTrack Journal",
		"Current streak: 1 days",
		"Average mood: 4.0",
		"**Good** — Work, not-in-catalog",
		"- [x] Drink water",
		"- [x] (removed goal)",
		"> long day\n> but a good one",
	} {
		if !strings.Contains(markdown, want) {
			t.Errorf("report missing %q\n--- report ---\n%s", want, markdown)
		}
	}
}

func TestReportHTML(t *testing.T) {
	journal := newTestService(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	if err := journal.SaveEntry(testEntry("e1", now, model.MoodAmazing)); err != nil {
		t.Fatalf("SaveEntry: %v", err)
	}

	report := NewReportService(journal)
	html, err := report.HTML(now)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}

	page := string(html)
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Error("expected a standalone HTML page")
	}
	if !strings.Contains(page, "<h1") || !strings.Contains(page, "MoodTrack Journal") {
		t.Error("rendered heading missing")
	}
}
