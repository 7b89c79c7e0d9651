package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hanzibook/config"
	"hanzibook/internal/adapter/analyzer"
	"hanzibook/internal/adapter/cache"
	"hanzibook/internal/adapter/fs"
	"hanzibook/internal/adapter/store"
	"hanzibook/internal/port"
	"hanzibook/internal/usecase"
)

var (
	cfgFile  string
	cfg      *config.Config
	booksDir string

	// Process-wide cache of analysed books; lives for the process lifetime.
	bookCache = cache.NewBookCache()
)

var rootCmd = &cobra.Command{
	Use:   "hanzibook",
	Short: "Chinese book analyser - rank hanzi by frequency and export learning lists",
	Long: `hanzibook analyses Chinese-language texts: it counts every unique hanzi,
measures how evenly each is spread through the text, collects example
sentences, and exports ranked CSV files for vocabulary-learning decisions.

Example usage:
  hanzibook books                          # List book files in the books directory
  hanzibook analyze -o ./export            # Export hanzi and learn lists for every book
  hanzibook shared -o ./export 红楼梦 西游记  # Export hanzi shared by two books`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if booksDir == "" {
			booksDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(booksDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./hanzibook.yaml)")
	rootCmd.PersistentFlags().StringVarP(&booksDir, "dir", "d", "", "books directory (default is current directory)")
}

// newLibrary wires the library with the process cache and, when enabled, the
// persistent store. The returned closer is a no-op when the store is off.
func newLibrary() (*usecase.Library, func(), error) {
	engine := analyzer.NewEngine(analyzer.NewSentenceSegmenter())
	walker := fs.NewWalker(cfg.Books.Includes, cfg.Books.Excludes)

	var bookStore port.BookStore
	closer := func() {}
	if cfg.Cache.Enabled {
		if err := config.EnsureCacheDir(booksDir); err != nil {
			return nil, nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
		st, err := store.NewBoltStore(config.CacheDBPath(booksDir))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open analysis cache: %w", err)
		}
		bookStore = st
		closer = func() { st.Close() }
	}

	return usecase.NewLibrary(engine, walker, bookCache, bookStore), closer, nil
}
