package analyzer

import (
	"math"
	"strings"

	"hanzibook/internal/domain"
	"hanzibook/internal/port"
)

// Engine turns raw text into an analysed Book: character discovery,
// sentence segmentation, per-character metrics, default ranking and
// statistics. Analysis is a pure function of (title, text).
type Engine struct {
	segmenter port.Segmenter
}

func NewEngine(segmenter port.Segmenter) *Engine {
	return &Engine{segmenter: segmenter}
}

// isHanzi reports whether r is a CJK unified ideograph. Discovery matches
// this range exactly; radicals and punctuation do not count.
func isHanzi(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// Analyze analyses text and returns the resulting book, or an
// *AnalysisError when the text yields no hanzi, no sentences, or a
// character without example sentences.
func (e *Engine) Analyze(title, text string) (*domain.Book, error) {
	book := &domain.Book{
		Title:      title,
		Text:       text,
		Characters: make(map[rune]*domain.CharacterRecord),
	}

	// Single pass over rune positions.
	for i, r := range []rune(text) {
		if !isHanzi(r) {
			continue
		}
		rec, ok := book.Characters[r]
		if !ok {
			rec = &domain.CharacterRecord{Hanzi: r}
			book.Characters[r] = rec
			book.Discovered = append(book.Discovered, rec)
		}
		rec.Frequency++
		rec.Occurrences = append(rec.Occurrences, i)
	}
	if len(book.Characters) == 0 {
		return nil, &AnalysisError{Kind: NoHanziFound, Title: title}
	}

	book.Sentences = e.segmenter.Segment(text)
	if len(book.Sentences) == 0 {
		return nil, &AnalysisError{Kind: NoSentencesFound, Title: title}
	}

	for _, rec := range book.Discovered {
		computeSpacing(rec)
		if err := findExamples(rec, book.Sentences); err != nil {
			if ae, ok := err.(*AnalysisError); ok {
				ae.Title = title
			}
			return nil, err
		}
	}

	Rank(book, domain.SortKey{FrequencyReversed: true, SpacingReversed: true})
	Calculate(book)

	return book, nil
}

// computeSpacing sets the rounded mean gap between consecutive occurrences.
// Singletons get 0.
func computeSpacing(rec *domain.CharacterRecord) {
	if rec.Frequency <= 1 {
		rec.Spacing = 0
		return
	}
	gaps := 0
	for i := 1; i < len(rec.Occurrences); i++ {
		gaps += rec.Occurrences[i] - rec.Occurrences[i-1]
	}
	rec.Spacing = int(math.Round(float64(gaps) / float64(rec.Frequency-1)))
}

// findExamples collects every sentence containing the character. A character
// with no matching sentence means segmentation and discovery disagree, which
// is fatal for the whole book.
func findExamples(rec *domain.CharacterRecord, sentences []string) error {
	needle := string(rec.Hanzi)
	for _, sentence := range sentences {
		if strings.Contains(sentence, needle) {
			rec.Examples = append(rec.Examples, sentence)
		}
	}
	if len(rec.Examples) == 0 {
		return &AnalysisError{Kind: NoExampleSentences, Hanzi: rec.Hanzi}
	}
	return nil
}
