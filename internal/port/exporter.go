package port

import "hanzibook/internal/domain"

// Exporter writes analysis results as tabular files. Every method fails with
// an export error when the destination is not writable.
type Exporter interface {
	// ExportHanzi writes <title>_hanzi.csv for the given ranked records.
	ExportHanzi(book *domain.Book, records []*domain.CharacterRecord, examples int) error

	// ExportLearn writes <title>_learn.csv for the selector's output.
	ExportLearn(book *domain.Book, records []*domain.CharacterRecord, examples int) error

	// ExportShared writes shared-hanzi.csv.
	ExportShared(shared []domain.SharedCharacter) error

	// ExportStatistics writes <title>_stats.csv.
	ExportStatistics(book *domain.Book) error

	// ExportCombinedStatistics writes combined-stats.csv from pre-built rows
	// (header first, then one row per book).
	ExportCombinedStatistics(rows [][]string) error
}
