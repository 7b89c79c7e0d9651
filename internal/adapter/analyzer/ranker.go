package analyzer

import (
	"math/rand"
	"sort"

	"hanzibook/internal/domain"
)

// Rank returns the book's characters ordered by the given key and caches the
// result on the book. Asking again with the same key returns the cached slice
// unchanged. The sort is stable and two-pass: spacing first, then frequency,
// so frequency dominates and spacing breaks frequency ties.
func Rank(book *domain.Book, key domain.SortKey) []*domain.CharacterRecord {
	if book.Ranked.Records != nil && book.Ranked.Key == key {
		return book.Ranked.Records
	}

	records := make([]*domain.CharacterRecord, len(book.Discovered))
	copy(records, book.Discovered)

	sort.SliceStable(records, func(i, j int) bool {
		if key.SpacingReversed {
			return records[i].Spacing > records[j].Spacing
		}
		return records[i].Spacing < records[j].Spacing
	})
	sort.SliceStable(records, func(i, j int) bool {
		if key.FrequencyReversed {
			return records[i].Frequency > records[j].Frequency
		}
		return records[i].Frequency < records[j].Frequency
	})

	book.Ranked = domain.RankedView{Records: records, Key: key}
	return records
}

// SampleExamples returns up to n distinct example sentences of rec in random
// order. It returns fewer when the record has fewer, and nothing when n <= 0
// or no examples exist.
func SampleExamples(rec *domain.CharacterRecord, n int) []string {
	if n <= 0 || len(rec.Examples) == 0 {
		return nil
	}
	if n > len(rec.Examples) {
		n = len(rec.Examples)
	}
	out := make([]string, 0, n)
	for _, idx := range rand.Perm(len(rec.Examples))[:n] {
		out = append(out, rec.Examples[idx])
	}
	return out
}
