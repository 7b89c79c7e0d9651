package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"hanzibook/internal/domain"
)

var bucketBooks = []byte("books")

// BoltStore persists analysed books between runs. A stored book is keyed by
// title and carries the SHA-256 hash of the text it was analysed from; a
// lookup with a different hash misses, so edited book files are re-analysed.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketBooks)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// recordMeta keeps example sentences as indices into the book's sentence
// list instead of repeating the sentence text per character.
type recordMeta struct {
	Hanzi       string `json:"hanzi"`
	Frequency   int    `json:"freq"`
	Occurrences []int  `json:"occurrences"`
	Spacing     int    `json:"spacing"`
	ExampleIdx  []int  `json:"example_idx"`
}

type bookMeta struct {
	Hash            string             `json:"hash"`
	Text            string             `json:"text"`
	Sentences       []string           `json:"sentences"`
	Records         []recordMeta       `json:"records"`
	TotalCharacters int                `json:"total_characters"`
	Statistics      []domain.Statistic `json:"statistics"`
}

func (s *BoltStore) Put(book *domain.Book, hash string) error {
	sentenceIdx := make(map[string]int, len(book.Sentences))
	for i, sentence := range book.Sentences {
		sentenceIdx[sentence] = i
	}

	meta := bookMeta{
		Hash:            hash,
		Text:            book.Text,
		Sentences:       book.Sentences,
		Records:         make([]recordMeta, 0, len(book.Discovered)),
		TotalCharacters: book.TotalCharacters,
		Statistics:      book.Statistics,
	}
	for _, rec := range book.Discovered {
		rm := recordMeta{
			Hanzi:       string(rec.Hanzi),
			Frequency:   rec.Frequency,
			Occurrences: rec.Occurrences,
			Spacing:     rec.Spacing,
			ExampleIdx:  make([]int, 0, len(rec.Examples)),
		}
		for _, ex := range rec.Examples {
			rm.ExampleIdx = append(rm.ExampleIdx, sentenceIdx[ex])
		}
		meta.Records = append(meta.Records, rm)
	}

	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBooks).Put([]byte(book.Title), data)
	})
}

// Get returns the stored book for title when its hash matches. The ranked
// view is left unset; rankings are recomputed on demand.
func (s *BoltStore) Get(title string, hash string) (*domain.Book, bool, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketBooks).Get([]byte(title))
		if v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}

	var meta bookMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, false, err
	}
	if meta.Hash != hash {
		return nil, false, nil
	}

	book := &domain.Book{
		Title:           title,
		Text:            meta.Text,
		Sentences:       meta.Sentences,
		Characters:      make(map[rune]*domain.CharacterRecord, len(meta.Records)),
		TotalCharacters: meta.TotalCharacters,
		Statistics:      meta.Statistics,
	}
	for _, rm := range meta.Records {
		if rm.Hanzi == "" {
			return nil, false, fmt.Errorf("corrupt record for %q: empty hanzi", title)
		}
		rec := &domain.CharacterRecord{
			Hanzi:       []rune(rm.Hanzi)[0],
			Frequency:   rm.Frequency,
			Occurrences: rm.Occurrences,
			Spacing:     rm.Spacing,
		}
		for _, idx := range rm.ExampleIdx {
			if idx >= 0 && idx < len(meta.Sentences) {
				rec.Examples = append(rec.Examples, meta.Sentences[idx])
			}
		}
		book.Characters[rec.Hanzi] = rec
		book.Discovered = append(book.Discovered, rec)
	}

	return book, true, nil
}

func (s *BoltStore) Delete(title string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBooks).Delete([]byte(title))
	})
}

func (s *BoltStore) ListTitles() ([]string, error) {
	var titles []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBooks).ForEach(func(k, v []byte) error {
			titles = append(titles, string(k))
			return nil
		})
	})
	return titles, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
