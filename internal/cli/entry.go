package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moodtrack/moodtrack/internal/model"
	"github.com/moodtrack/moodtrack/internal/stats"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a journal entry",
	Long: `Record a mood entry for today (or --date), with optional activities,
completed goals and a free-text note. Passing --id edits an existing entry,
replacing it entirely.`,
	RunE: runAdd,
}

var (
	addID         string
	addMood       int
	addActivities []string
	addDone       []string
	addNote       string
	addDate       string
)

func init() {
	addCmd.Flags().StringVar(&addID, "id", "", "entry id to edit (replaces the whole entry)")
	addCmd.Flags().IntVarP(&addMood, "mood", "m", 0, "mood level 1 (terrible) to 5 (amazing)")
	addCmd.Flags().StringSliceVarP(&addActivities, "activities", "a", nil, "activity tags (e.g. work,exercise)")
	addCmd.Flags().StringSliceVarP(&addDone, "done", "g", nil, "ids of goals completed with this entry")
	addCmd.Flags().StringVarP(&addNote, "note", "n", "", "free-text note")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "entry date (YYYY-MM-DD, default today)")
	addCmd.MarkFlagRequired("mood")
}

func runAdd(cmd *cobra.Command, args []string) error {
	date := time.Now()
	if addDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", addDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", addDate, err)
		}
		date = parsed
	}

	entry := &model.JournalEntry{
		ID:               addID,
		Date:             date,
		Mood:             addMood,
		Activities:       addActivities,
		CompletedGoalIDs: addDone,
		Note:             addNote,
	}

	// Show what other entries already covered today, like the entry editor
	// does, before adding this one.
	entries, err := application.Journal.Entries()
	if err != nil {
		return err
	}
	already := stats.CompletedGoalsOn(entries, stats.Day(date), addID)

	err = application.Journal.SaveEntry(entry)
	if err != nil {
		return err
	}

	fmt.Printf("Saved entry %s (%s, %s)\n", entry.ID, stats.Day(entry.Date), model.MoodLabel(entry.Mood))

	if len(already) > 0 {
		goals, err := application.Journal.Goals()
		if err != nil {
			return err
		}
		var names []string
		for _, g := range goals {
			if already[g.ID] {
				names = append(names, g.Text)
			}
		}
		if len(names) > 0 {
			fmt.Printf("Already done today in other entries: %s\n", strings.Join(names, ", "))
		}
	}

	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries, newest first",
	RunE:  runList,
}

var listLast int

func init() {
	listCmd.Flags().IntVar(&listLast, "last", 0, "show only the last N entries")
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := application.Journal.Entries()
	if err != nil {
		return err
	}

	if listLast > 0 && len(entries) > listLast {
		entries = entries[:listLast]
	}

	if len(entries) == 0 {
		fmt.Println("No entries yet. Record one with: moodtrack add --mood 4")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-8s  %s\n", stats.Day(e.Date), model.MoodLabel(e.Mood), formatActivities(e.Activities))
		if e.Note != "" {
			fmt.Printf("            %s\n", e.Note)
		}
	}

	return nil
}

func formatActivities(ids []string) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if a, ok := model.ActivityByID(id); ok {
			labels = append(labels, a.Label)
		} else {
			labels = append(labels, id)
		}
	}
	return strings.Join(labels, ", ")
}
