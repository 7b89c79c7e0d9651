package usecase

import (
	"sort"

	"hanzibook/internal/domain"
)

// SharedCharacters returns every character present in all supplied books with
// its frequency summed across them, sorted by summed frequency per
// frequencyReversed. Equal sums are ordered by code point ascending; callers
// must not rely on that tie order.
func SharedCharacters(books []*domain.Book, frequencyReversed bool) []domain.SharedCharacter {
	if len(books) == 0 {
		return nil
	}

	var shared []domain.SharedCharacter
	for hz := range books[0].Characters {
		sum := books[0].Characters[hz].Frequency
		inAll := true
		for _, book := range books[1:] {
			rec, ok := book.Characters[hz]
			if !ok {
				inAll = false
				break
			}
			sum += rec.Frequency
		}
		if inAll {
			shared = append(shared, domain.SharedCharacter{Hanzi: hz, Frequency: sum})
		}
	}

	sort.Slice(shared, func(i, j int) bool {
		if shared[i].Frequency != shared[j].Frequency {
			if frequencyReversed {
				return shared[i].Frequency > shared[j].Frequency
			}
			return shared[i].Frequency < shared[j].Frequency
		}
		return shared[i].Hanzi < shared[j].Hanzi
	})

	return shared
}

// CombinedStatistics builds the combined-stats table: the first book's
// statistic labels prefixed with "book title", then one row per book with its
// title and values. Every book carries the same fixed label sequence, so the
// first book's labels serve as the header for all.
func CombinedStatistics(books []*domain.Book) [][]string {
	if len(books) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(books)+1)
	header := []string{"book title"}
	for _, st := range books[0].Statistics {
		header = append(header, st.Label)
	}
	rows = append(rows, header)

	for _, book := range books {
		row := []string{book.Title}
		for _, st := range book.Statistics {
			row = append(row, st.Value)
		}
		rows = append(rows, row)
	}

	return rows
}
