package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hanzibook/internal/adapter/export"
	"hanzibook/internal/usecase"
)

var (
	sharedOut     string
	sharedFreqAsc bool
)

var sharedCmd = &cobra.Command{
	Use:   "shared [titles...]",
	Short: "Export the hanzi shared by a set of books",
	Long: `Find the hanzi that appear in every one of the selected books (or every
book in the books directory), sum their frequencies across the books and
export them as shared-hanzi.csv.

Examples:
  hanzibook shared -o ./export 红楼梦 西游记
  hanzibook shared -o ./export --freq-asc`,
	RunE: runShared,
}

func init() {
	rootCmd.AddCommand(sharedCmd)
	sharedCmd.Flags().StringVarP(&sharedOut, "out", "o", "", "export directory (required)")
	sharedCmd.Flags().BoolVar(&sharedFreqAsc, "freq-asc", false, "sort summed frequency low to high")
	sharedCmd.MarkFlagRequired("out")
}

func runShared(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(sharedOut, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	result, err := loadBooks(args)
	if err != nil {
		return err
	}
	printLoadSummary(result)
	if len(result.Books) < 2 {
		return fmt.Errorf("shared hanzi needs at least two books, got %d", len(result.Books))
	}

	shared := usecase.SharedCharacters(result.Books, !sharedFreqAsc)
	fmt.Printf("Shared hanzi: %d\n", len(shared))

	exporter := export.NewCSVExporter(sharedOut)
	if err := exporter.ExportShared(shared); err != nil {
		return err
	}
	return nil
}
