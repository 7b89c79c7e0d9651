package analyzer

import (
	"math"

	"hanzibook/internal/domain"
)

// SelectToLearn picks the characters worth learning from a ranking that must
// be in descending frequency order. The walk accumulates each character's
// share of total occurrences until the running percentage, rounded to two
// decimals, reaches comprehensionPct; 100 always covers the whole ranking so
// float accumulation never has to hit it exactly. The slice starts at the
// first character at or below freqThreshold. No match, or a start past the
// comprehension cutoff, yields an empty result rather than an error.
func SelectToLearn(ranked []*domain.CharacterRecord, total int, comprehensionPct, freqThreshold int) []*domain.CharacterRecord {
	if len(ranked) == 0 || total <= 0 {
		return nil
	}

	last := 0
	if comprehensionPct == 100 {
		last = len(ranked) - 1
	} else {
		pct := 0.0
		for last < len(ranked) && math.Round(pct*100)/100 < float64(comprehensionPct) {
			pct += float64(ranked[last].Frequency) / float64(total) * 100
			last++
		}
	}

	first := -1
	for i, rec := range ranked {
		if rec.Frequency <= freqThreshold {
			first = i
			break
		}
	}
	if first < 0 || first > last {
		return nil
	}

	end := last + 1
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[first:end]
}
