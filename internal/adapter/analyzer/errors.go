package analyzer

import "fmt"

// ErrorKind discriminates the conditions that abort a book's analysis.
// Callers branch on the kind: all three are fatal to the book under analysis
// but must not stop a batch.
type ErrorKind int

const (
	// NoHanziFound: the text contains no character in U+4E00..U+9FFF.
	NoHanziFound ErrorKind = iota
	// NoSentencesFound: segmentation produced no sentences.
	NoSentencesFound
	// NoExampleSentences: a discovered character matched no sentence,
	// which indicates a discovery/segmentation mismatch.
	NoExampleSentences
)

// AnalysisError reports why a book could not be analysed. Hanzi is set only
// for NoExampleSentences.
type AnalysisError struct {
	Kind  ErrorKind
	Title string
	Hanzi rune
}

func (e *AnalysisError) Error() string {
	switch e.Kind {
	case NoHanziFound:
		return fmt.Sprintf("no hanzi found in %q", e.Title)
	case NoSentencesFound:
		return fmt.Sprintf("no valid sentences found in %q", e.Title)
	case NoExampleSentences:
		return fmt.Sprintf("could not find example sentences for %q in %q", string(e.Hanzi), e.Title)
	default:
		return fmt.Sprintf("analysis of %q failed", e.Title)
	}
}
