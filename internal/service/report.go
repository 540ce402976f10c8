package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/moodtrack/moodtrack/internal/model"
	"github.com/moodtrack/moodtrack/internal/stats"
)

// ReportService renders the journal as a human-readable document: a
// Markdown report of all entries grouped by day plus the statistics summary,
// optionally converted to standalone HTML. It complements the JSON backup,
// which is for machines.
type ReportService struct {
	journal *JournalService
	md      goldmark.Markdown
}

func NewReportService(journal *JournalService) *ReportService {
	return &ReportService{
		journal: journal,
		md: goldmark.New(
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
	}
}

// Markdown renders the full journal report.
func (s *ReportService) Markdown(now time.Time) (string, error) {
	entries, err := s.journal.Entries()
	if err != nil {
		return "", err
	}
	goals, err := s.journal.Goals()
	if err != nil {
		return "", err
	}

	goalText := make(map[string]string, len(goals))
	for _, g := range goals {
		goalText[g.ID] = g.Text
	}

	var b strings.Builder
	b.WriteString("# MoodTrack Journal\n\n")
	fmt.Fprintf(&b, "Exported %s.\n\n", now.Format("January 2, 2006"))

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Entries: %d\n", len(entries))
	fmt.Fprintf(&b, "- Current streak: %d days\n", stats.Streak(entries, now))
	fmt.Fprintf(&b, "- Average mood: %.1f / 5.0\n", stats.AverageMood(entries))
	for i, top := range stats.TopActivities(entries) {
		label := top.Activity.Label
		if label == "" {
			label = top.Activity.ID
		}
		fmt.Fprintf(&b, "- Top activity %d: %s (%dx)\n", i+1, label, top.Count)
	}
	b.WriteString("\n")

	if len(goals) > 0 {
		b.WriteString("## Goal achievements\n\n")
		for _, gc := range stats.GoalAchievements(entries, goals) {
			fmt.Fprintf(&b, "- %s: %d\n", gc.Goal.Text, gc.Count)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Entries\n\n")
	lastDay := ""
	for _, e := range entries {
		day := stats.Day(e.Date)
		if day != lastDay {
			fmt.Fprintf(&b, "### %s\n\n", e.Date.Format("Monday, January 2, 2006"))
			lastDay = day
		}
		writeEntry(&b, e, goalText)
	}

	return b.String(), nil
}

func writeEntry(b *strings.Builder, e model.JournalEntry, goalText map[string]string) {
	fmt.Fprintf(b, "**%s**", model.MoodLabel(e.Mood))

	if len(e.Activities) > 0 {
		labels := make([]string, 0, len(e.Activities))
		for _, id := range e.Activities {
			if a, ok := model.ActivityByID(id); ok {
				labels = append(labels, a.Label)
			} else {
				labels = append(labels, id)
			}
		}
		fmt.Fprintf(b, " — %s", strings.Join(labels, ", "))
	}
	b.WriteString("\n\n")

	if len(e.CompletedGoalIDs) > 0 {
		for _, id := range e.CompletedGoalIDs {
			text, ok := goalText[id]
			if !ok {
				// Goal deleted since; keep the checkmark without a label.
				text = "(removed goal)"
			}
			fmt.Fprintf(b, "- [x] %s\n", text)
		}
		b.WriteString("\n")
	}

	if e.Note != "" {
		fmt.Fprintf(b, "> %s\n\n", strings.ReplaceAll(e.Note, "\n", "\n> "))
	}
}

// HTML renders the report as a standalone HTML page.
func (s *ReportService) HTML(now time.Time) ([]byte, error) {
	markdown, err := s.Markdown(now)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	err = s.md.Convert([]byte(markdown), &body)
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<title>MoodTrack Journal</title>\n")
	page.WriteString("<style>body{font-family:sans-serif;max-width:40rem;margin:2rem auto;padding:0 1rem;line-height:1.5}blockquote{color:#555;border-left:3px solid #ccc;margin-left:0;padding-left:1rem}</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	return page.Bytes(), nil
}
