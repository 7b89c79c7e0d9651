package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"hanzibook/internal/adapter/analyzer"
	"hanzibook/internal/adapter/export"
	"hanzibook/internal/domain"
	"hanzibook/internal/usecase"
)

var (
	analyzeOut       string
	analyzeExamples  int
	analyzeHanzi     bool
	analyzeLearn     bool
	analyzeStats     bool
	analyzeCompr     int
	analyzeThreshold int
	analyzeFreqAsc   bool
	analyzeDistAsc   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [titles...]",
	Short: "Analyse books and export hanzi CSV files",
	Long: `Analyse the selected books (or every book in the books directory) and
export per-book CSV files: the full ranked hanzi list, the hanzi-to-learn
list, and optionally per-book statistics.

Examples:
  hanzibook analyze -o ./export                   # Both lists for every book
  hanzibook analyze -o ./export --learn 红楼梦     # Learn list for one book
  hanzibook analyze -o ./export --hanzi --stats   # Ranked list plus statistics`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "export directory (required)")
	analyzeCmd.Flags().IntVarP(&analyzeExamples, "examples", "e", -1, "example sentences per hanzi (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeHanzi, "hanzi", false, "export the full ranked hanzi list")
	analyzeCmd.Flags().BoolVar(&analyzeLearn, "learn", false, "export the hanzi-to-learn list")
	analyzeCmd.Flags().BoolVar(&analyzeStats, "stats", false, "export per-book statistics")
	analyzeCmd.Flags().IntVar(&analyzeCompr, "comprehension", -1, "comprehension percentage (default from config)")
	analyzeCmd.Flags().IntVar(&analyzeThreshold, "threshold", -1, "frequency threshold (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeFreqAsc, "freq-asc", false, "sort frequency low to high")
	analyzeCmd.Flags().BoolVar(&analyzeDistAsc, "dist-asc", false, "sort spacing low to high")
	analyzeCmd.MarkFlagRequired("out")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// Neither flag means both lists.
	if !analyzeHanzi && !analyzeLearn {
		analyzeHanzi = true
		analyzeLearn = true
	}

	examples := cfg.Analysis.Examples
	if analyzeExamples >= 0 {
		examples = analyzeExamples
	}
	comprehension := cfg.Analysis.Comprehension
	if analyzeCompr >= 0 {
		comprehension = analyzeCompr
	}
	threshold := cfg.Analysis.Threshold
	if analyzeThreshold >= 0 {
		threshold = analyzeThreshold
	}
	key := domain.SortKey{
		FrequencyReversed: cfg.Analysis.FrequencyReversed,
		SpacingReversed:   cfg.Analysis.SpacingReversed,
	}
	if analyzeFreqAsc {
		key.FrequencyReversed = false
	}
	if analyzeDistAsc {
		key.SpacingReversed = false
	}

	if err := os.MkdirAll(analyzeOut, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	result, err := loadBooks(args)
	if err != nil {
		return err
	}
	if len(result.Books) == 0 {
		return fmt.Errorf("no books to process")
	}

	exporter := export.NewCSVExporter(analyzeOut)
	var exportErrs []string
	exported := 0

	for _, book := range result.Books {
		ranked := analyzer.Rank(book, key)

		if analyzeHanzi {
			if err := exporter.ExportHanzi(book, ranked, examples); err != nil {
				exportErrs = append(exportErrs, err.Error())
			} else {
				exported++
			}
		}
		if analyzeLearn {
			// The selector needs a descending-frequency ranking regardless
			// of the display sort order.
			learnRanked := ranked
			if !key.FrequencyReversed {
				learnRanked = analyzer.Rank(book, domain.SortKey{
					FrequencyReversed: true,
					SpacingReversed:   key.SpacingReversed,
				})
			}
			learn := analyzer.SelectToLearn(learnRanked, book.TotalCharacters, comprehension, threshold)
			fmt.Printf("%s: %d hanzi to learn\n", book.Title, len(learn))
			if err := exporter.ExportLearn(book, learn, examples); err != nil {
				exportErrs = append(exportErrs, err.Error())
			} else {
				exported++
			}
		}
		if analyzeStats {
			if err := exporter.ExportStatistics(book); err != nil {
				exportErrs = append(exportErrs, err.Error())
			} else {
				exported++
			}
		}
	}

	printLoadSummary(result)
	fmt.Printf("Files exported: %d\n", exported)
	if len(exportErrs) > 0 {
		fmt.Println("Export failures:")
		for _, e := range exportErrs {
			fmt.Printf("  - %s\n", e)
		}
		return fmt.Errorf("%d export(s) failed", len(exportErrs))
	}
	return nil
}

// loadBooks runs the batch load with a progress bar and per-book failure
// reporting.
func loadBooks(titles []string) (*usecase.LoadResult, error) {
	library, closeLibrary, err := newLibrary()
	if err != nil {
		return nil, err
	}
	defer closeLibrary()

	var bar *progressbar.ProgressBar
	progress := func(done, total int, title string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Analysing[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(done)
	}

	result, err := library.Load(booksDir, titles, progress)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func printLoadSummary(result *usecase.LoadResult) {
	fmt.Printf("Books analysed: %d (%d from cache)\n", len(result.Books), result.FromCache)
	for _, w := range result.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	if len(result.Errors) > 0 {
		fmt.Println("Skipped books:")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
}
