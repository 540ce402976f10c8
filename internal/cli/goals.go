package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moodtrack/moodtrack/internal/model"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Manage recurring goals",
}

var goalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := application.Journal.Goals()
		if err != nil {
			return err
		}
		printGoals(goals)
		return nil
	},
}

var goalsAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a goal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := application.Journal.AddGoal(strings.Join(args, " "))
		if err != nil {
			return err
		}
		printGoals(goals)
		return nil
	},
}

var goalsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a goal",
	Long: `Delete a goal by id. Past entries that completed the goal keep their
record of it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := application.Journal.DeleteGoal(args[0])
		if err != nil {
			return err
		}
		printGoals(goals)
		return nil
	},
}

func init() {
	goalsCmd.AddCommand(goalsListCmd)
	goalsCmd.AddCommand(goalsAddCmd)
	goalsCmd.AddCommand(goalsRmCmd)
}

func printGoals(goals []model.Goal) {
	if len(goals) == 0 {
		fmt.Println("No goals. Add one with: moodtrack goals add \"Drink water\"")
		return
	}
	for _, g := range goals {
		fmt.Printf("%-36s  %s\n", g.ID, g.Text)
	}
}
