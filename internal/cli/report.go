package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the journal as a readable report",
	Long: `Render all entries and statistics as a Markdown report, or as a
standalone HTML page with --html. Writes to stdout unless --output is given.`,
	RunE: runReport,
}

var (
	reportHTML   bool
	reportOutput string
)

func init() {
	reportCmd.Flags().BoolVar(&reportHTML, "html", false, "render HTML instead of Markdown")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "write the report to a file")
}

func runReport(cmd *cobra.Command, args []string) error {
	now := time.Now()

	var data []byte
	if reportHTML {
		html, err := application.Report.HTML(now)
		if err != nil {
			return err
		}
		data = html
	} else {
		markdown, err := application.Report.Markdown(now)
		if err != nil {
			return err
		}
		data = []byte(markdown)
	}

	if reportOutput == "" {
		fmt.Print(string(data))
		return nil
	}

	err := os.WriteFile(reportOutput, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Printf("Wrote report: %s\n", reportOutput)
	return nil
}
