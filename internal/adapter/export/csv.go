package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hanzibook/internal/adapter/analyzer"
	"hanzibook/internal/domain"
)

// utf8BOM is prepended to every file so spreadsheet tools detect UTF-8.
const utf8BOM = "\uFEFF"

// ExportError reports a file that could not be written. The caller decides
// whether to abort or continue with the remaining exports.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("could not export %q: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// CSVExporter writes analysis results as comma-separated files into a
// destination directory. The directory must already exist.
type CSVExporter struct {
	dir string
}

func NewCSVExporter(dir string) *CSVExporter {
	return &CSVExporter{dir: dir}
}

// writeRecords writes one character table: header hanzi,freq,dist,ex1..exN
// and one row per record with a fresh random sample of example sentences.
func (e *CSVExporter) writeRecords(filename string, records []*domain.CharacterRecord, examples int) error {
	path := filepath.Join(e.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return &ExportError{Path: path, Err: err}
	}

	w := csv.NewWriter(f)
	w.UseCRLF = true

	header := []string{"hanzi", "freq", "dist"}
	for i := 1; i <= examples; i++ {
		header = append(header, fmt.Sprintf("ex%d", i))
	}
	if err := w.Write(header); err != nil {
		return &ExportError{Path: path, Err: err}
	}

	for _, rec := range records {
		row := []string{string(rec.Hanzi), strconv.Itoa(rec.Frequency), strconv.Itoa(rec.Spacing)}
		row = append(row, analyzer.SampleExamples(rec, examples)...)
		if err := w.Write(row); err != nil {
			return &ExportError{Path: path, Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}

// ExportHanzi writes <title>_hanzi.csv for the given ranked records.
func (e *CSVExporter) ExportHanzi(book *domain.Book, records []*domain.CharacterRecord, examples int) error {
	return e.writeRecords(book.Title+"_hanzi.csv", records, examples)
}

// ExportLearn writes <title>_learn.csv for the selector's output.
func (e *CSVExporter) ExportLearn(book *domain.Book, records []*domain.CharacterRecord, examples int) error {
	return e.writeRecords(book.Title+"_learn.csv", records, examples)
}

// ExportShared writes shared-hanzi.csv, one row per shared character.
func (e *CSVExporter) ExportShared(shared []domain.SharedCharacter) error {
	path := filepath.Join(e.dir, "shared-hanzi.csv")
	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString("hanzi,frequency\n")
	for _, sc := range shared {
		fmt.Fprintf(&b, "%s,%d\n", string(sc.Hanzi), sc.Frequency)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}

// ExportStatistics writes <title>_stats.csv: a row of labels, a row of values.
func (e *CSVExporter) ExportStatistics(book *domain.Book) error {
	path := filepath.Join(e.dir, book.Title+"_stats.csv")
	labels := make([]string, 0, len(book.Statistics))
	values := make([]string, 0, len(book.Statistics))
	for _, st := range book.Statistics {
		labels = append(labels, st.Label)
		values = append(values, st.Value)
	}
	content := utf8BOM + strings.Join(labels, ",") + "\n" + strings.Join(values, ",") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}

// ExportCombinedStatistics writes combined-stats.csv from pre-built rows:
// the header row first, then one row per book in input order.
func (e *CSVExporter) ExportCombinedStatistics(rows [][]string) error {
	path := filepath.Join(e.dir, "combined-stats.csv")
	var b strings.Builder
	b.WriteString(utf8BOM)
	for _, row := range rows {
		b.WriteString(strings.Join(row, ",") + "\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}
