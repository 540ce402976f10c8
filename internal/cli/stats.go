package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moodtrack/moodtrack/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streak, mood trend and activity statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	entries, err := application.Journal.Entries()
	if err != nil {
		return err
	}
	goals, err := application.Journal.Goals()
	if err != nil {
		return err
	}

	now := time.Now()
	fmt.Printf("Current streak: %d days\n", stats.Streak(entries, now))
	fmt.Printf("Average mood:   %.1f / 5.0\n", stats.AverageMood(entries))

	trend := stats.MoodTrend(entries)
	if len(trend) > 0 {
		fmt.Printf("\nMood flow (last %d entries):\n", len(trend))
		for _, p := range trend {
			fmt.Printf("  %s  %s (%d)\n", p.Label, strings.Repeat("█", p.Mood), p.Mood)
		}
	}

	top := stats.TopActivities(entries)
	if len(top) > 0 {
		fmt.Println("\nTop activities:")
		for i, ac := range top {
			label := ac.Activity.Label
			if label == "" {
				label = ac.Activity.ID
			}
			fmt.Printf("  %d. %-12s %dx\n", i+1, label, ac.Count)
		}
	}

	achievements := stats.GoalAchievements(entries, goals)
	if len(achievements) > 0 {
		fmt.Println("\nGoal achievements:")
		for _, gc := range achievements {
			fmt.Printf("  %-24s %d\n", gc.Goal.Text, gc.Count)
		}
	}

	return nil
}
