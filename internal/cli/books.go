package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List the book files in the books directory",
	RunE:  runBooks,
}

func init() {
	rootCmd.AddCommand(booksCmd)
}

func runBooks(cmd *cobra.Command, args []string) error {
	library, closeLibrary, err := newLibrary()
	if err != nil {
		return err
	}
	defer closeLibrary()

	files, err := library.ListBooks(booksDir)
	if err != nil {
		return fmt.Errorf("failed to scan books directory: %w", err)
	}

	if len(files) == 0 {
		fmt.Println("No book files found.")
		return nil
	}

	for _, f := range files {
		fmt.Printf("%s  (%d bytes)\n", f.Title, f.Size)
	}
	fmt.Printf("%d book(s)\n", len(files))
	return nil
}
