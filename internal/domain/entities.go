package domain

// CharacterRecord holds everything known about one unique hanzi within a book.
type CharacterRecord struct {
	Hanzi       rune
	Frequency   int
	Occurrences []int
	Spacing     int
	Examples    []string
}

// SortKey identifies one ranking of a book's characters. Each flag reverses
// its key independently; true means descending (largest first).
type SortKey struct {
	FrequencyReversed bool
	SpacingReversed   bool
}

// RankedView is a cached ordering of a book's characters together with the
// key that produced it. Records is nil until the first ranking.
type RankedView struct {
	Records []*CharacterRecord
	Key     SortKey
}

// Statistic is one labelled value in a book's statistics table.
type Statistic struct {
	Label string
	Value string
}

// Book is a fully analysed text. Construction runs discovery, segmentation,
// ranking and statistics; after that the only mutations are re-ranking with a
// different key and statistics refresh. Discovered keeps the records in order
// of first appearance; rankings sort a copy of it, never the slice itself.
type Book struct {
	Title           string
	Text            string
	Sentences       []string
	Characters      map[rune]*CharacterRecord
	Discovered      []*CharacterRecord
	Ranked          RankedView
	TotalCharacters int
	Statistics      []Statistic
}

// SharedCharacter is one hanzi present in every book of a corpus, with its
// frequency summed across the corpus.
type SharedCharacter struct {
	Hanzi     rune
	Frequency int
}
