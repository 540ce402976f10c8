package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/moodtrack/moodtrack/internal/backup"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all entries and goals to a JSON backup file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := application.Journal.Export()
	if err != nil {
		return err
	}

	path := backup.Filename(time.Now())
	if len(args) == 1 {
		path = args[0]
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	fmt.Printf("Exported: %s\n", path)
	return nil
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore entries and goals from a JSON backup file",
	Long: `Merge a backup file into the journal. Records in the file overwrite
records with the same id; everything else in the journal is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	doc, err := backup.Deserialize(raw)
	if err != nil {
		return err
	}

	err = application.Journal.ImportBackup(doc)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d entries and %d goals from %s\n", len(doc.Entries), len(doc.Goals), args[0])
	return nil
}
