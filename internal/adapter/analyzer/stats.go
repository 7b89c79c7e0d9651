package analyzer

import (
	"fmt"
	"math"
	"strconv"

	"hanzibook/internal/domain"
)

// Percentiles of the unique-character count reported in every book's
// statistics table.
var percentiles = []int{1, 2, 5, 10, 15, 20, 30, 40, 50}

// Calculate recomputes book.TotalCharacters and book.Statistics from scratch
// off the default descending-frequency ranking. The label set and order are
// fixed, which is what lets combined statistics share one header row.
func Calculate(book *domain.Book) {
	ranked := Rank(book, domain.SortKey{FrequencyReversed: true, SpacingReversed: true})

	total := 0
	for _, rec := range ranked {
		total += rec.Frequency
	}
	book.TotalCharacters = total

	stats := make([]domain.Statistic, 0, 2+2*len(percentiles))
	stats = append(stats,
		domain.Statistic{Label: "total hanzi", Value: strconv.Itoa(total)},
		domain.Statistic{Label: "total unique hanzi", Value: strconv.Itoa(len(ranked))},
	)

	for _, p := range percentiles {
		cut := int(math.Round(float64(p) / 100 * float64(len(ranked))))
		sum := 0
		for _, rec := range ranked[:cut] {
			sum += rec.Frequency
		}
		share := float64(sum) / float64(total)
		stats = append(stats,
			domain.Statistic{
				Label: fmt.Sprintf("top %d%% of hanzi as %% of book", p),
				Value: fmt.Sprintf("%.6f%%", share*100),
			},
			domain.Statistic{
				Label: fmt.Sprintf("no. hanzi in top %d%% of unique hanzi", p),
				Value: strconv.Itoa(cut),
			},
		)
	}

	book.Statistics = stats
}
