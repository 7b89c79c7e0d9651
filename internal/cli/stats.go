package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hanzibook/internal/adapter/export"
	"hanzibook/internal/usecase"
)

var (
	statsOut      string
	statsCombined bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [titles...]",
	Short: "Export book statistics",
	Long: `Export the statistics table of each selected book (or every book in the
books directory): total hanzi, unique hanzi, and the share of the text the
most frequent percentiles of hanzi account for.

Examples:
  hanzibook stats -o ./export            # One <title>_stats.csv per book
  hanzibook stats -o ./export --combined # One combined-stats.csv for all books`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsOut, "out", "o", "", "export directory (required)")
	statsCmd.Flags().BoolVar(&statsCombined, "combined", false, "export one combined file instead of per-book files")
	statsCmd.MarkFlagRequired("out")
}

func runStats(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(statsOut, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	result, err := loadBooks(args)
	if err != nil {
		return err
	}
	printLoadSummary(result)
	if len(result.Books) == 0 {
		return fmt.Errorf("no books to process")
	}

	exporter := export.NewCSVExporter(statsOut)

	if statsCombined {
		rows := usecase.CombinedStatistics(result.Books)
		return exporter.ExportCombinedStatistics(rows)
	}

	var exportErrs []string
	for _, book := range result.Books {
		if err := exporter.ExportStatistics(book); err != nil {
			exportErrs = append(exportErrs, err.Error())
		}
	}
	if len(exportErrs) > 0 {
		fmt.Println("Export failures:")
		for _, e := range exportErrs {
			fmt.Printf("  - %s\n", e)
		}
		return fmt.Errorf("%d export(s) failed", len(exportErrs))
	}
	return nil
}
