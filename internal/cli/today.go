package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moodtrack/moodtrack/internal/model"
	"github.com/moodtrack/moodtrack/internal/stats"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's entries and goal progress",
	RunE:  runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
	entries, err := application.Journal.Entries()
	if err != nil {
		return err
	}
	goals, err := application.Journal.Goals()
	if err != nil {
		return err
	}

	now := time.Now()
	day := stats.Day(now)
	fmt.Println(now.Format("Monday, January 2, 2006"))
	fmt.Println()

	none := true
	for _, e := range entries {
		if stats.Day(e.Date) != day {
			continue
		}
		none = false
		fmt.Printf("  %s  %s\n", model.MoodLabel(e.Mood), formatActivities(e.Activities))
		if e.Note != "" {
			fmt.Printf("    %s\n", e.Note)
		}
	}
	if none {
		fmt.Println("  No entries yet today.")
	}

	completed := stats.CompletedGoalsOn(entries, day, "")
	fmt.Printf("\nDaily goals (%d%%):\n", stats.DailyProgress(entries, goals, day))
	for _, g := range goals {
		mark := " "
		if completed[g.ID] {
			mark = "x"
		}
		fmt.Printf("  [%s] %s\n", mark, g.Text)
	}

	return nil
}
