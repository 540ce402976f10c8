// Package cli provides the command-line interface for moodtrack. Commands
// are thin: they parse flags, call into the journal services, and print.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/moodtrack/moodtrack/internal/app"
	"github.com/moodtrack/moodtrack/internal/config"
	"github.com/moodtrack/moodtrack/internal/logger"
)

var (
	dbPath      string
	verbose     bool
	application *app.App
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "moodtrack",
	Short: "Local-first mood journal",
	Long: `MoodTrack records a daily mood, activities, notes and progress against
recurring goals, all in a local database on this device. Review streaks,
averages and goal completion with the stats command; move data between
devices with export and import.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		if verbose {
			cfg.AppEnv = "development"
		}

		logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

		a, err := app.New(cfg)
		if err != nil {
			return err
		}
		application = a
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if application != nil {
			return application.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "journal database file (default is the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resetCmd)
}
