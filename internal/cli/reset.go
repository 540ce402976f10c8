package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Permanently delete all entries and goals",
	RunE:  runReset,
}

var resetForce bool

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm deletion of all data")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetForce {
		return fmt.Errorf("this deletes all journal data and cannot be undone; re-run with --force to confirm")
	}

	err := application.Journal.ClearAll()
	if err != nil {
		return err
	}

	fmt.Println("All data deleted.")
	return nil
}
