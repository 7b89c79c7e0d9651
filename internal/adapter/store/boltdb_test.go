package store

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"go.etcd.io/bbolt"

	"hanzibook/internal/adapter/analyzer"
	"hanzibook/internal/domain"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	st, err := NewBoltStore(filepath.Join(t.TempDir(), "books.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func analyzeTestBook(t *testing.T, title, text string) *domain.Book {
	t.Helper()
	engine := analyzer.NewEngine(analyzer.NewSentenceSegmenter())
	book, err := engine.Analyze(title, text)
	if err != nil {
		t.Fatal(err)
	}
	return book
}

func TestBoltStore_PutGet(t *testing.T) {
	st := newTestStore(t)
	book := analyzeTestBook(t, "test", "他说：你好。他说：再见！")

	if err := st.Put(book, "hash1"); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, ok, err := st.Get("test", "hash1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit for a stored book")
	}

	if got.Title != book.Title || got.Text != book.Text {
		t.Error("title or text did not round-trip")
	}
	if len(got.Sentences) != len(book.Sentences) {
		t.Fatalf("expected %d sentences, got %d", len(book.Sentences), len(got.Sentences))
	}
	if got.TotalCharacters != book.TotalCharacters {
		t.Errorf("expected total %d, got %d", book.TotalCharacters, got.TotalCharacters)
	}
	if len(got.Statistics) != len(book.Statistics) {
		t.Errorf("expected %d statistics, got %d", len(book.Statistics), len(got.Statistics))
	}

	if len(got.Discovered) != len(book.Discovered) {
		t.Fatalf("expected %d records, got %d", len(book.Discovered), len(got.Discovered))
	}
	for i, want := range book.Discovered {
		rec := got.Discovered[i]
		if rec.Hanzi != want.Hanzi || rec.Frequency != want.Frequency || rec.Spacing != want.Spacing {
			t.Errorf("record %d did not round-trip: got %+v, want %+v", i, rec, want)
		}
		if len(rec.Examples) != len(want.Examples) {
			t.Errorf("record %d examples did not round-trip: got %d, want %d",
				i, len(rec.Examples), len(want.Examples))
		}
	}
	if got.Characters['他'] == nil {
		t.Error("character map was not rebuilt")
	}
}

func TestBoltStore_HashMismatch(t *testing.T) {
	st := newTestStore(t)
	book := analyzeTestBook(t, "test", "你好。")

	if err := st.Put(book, "hash1"); err != nil {
		t.Fatal(err)
	}

	_, ok, err := st.Get("test", "other")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("a changed text hash must miss")
	}
}

func TestBoltStore_MissingTitle(t *testing.T) {
	st := newTestStore(t)
	_, ok, err := st.Get("missing", "hash")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected a miss for an unknown title")
	}
}

func TestBoltStore_CorruptRecord(t *testing.T) {
	st := newTestStore(t)

	// Hand-write an entry whose record has an empty hanzi field.
	meta := bookMeta{
		Hash:      "hash1",
		Sentences: []string{"你好。"},
		Records:   []recordMeta{{Hanzi: "", Frequency: 1}},
	}
	data, err := json.Marshal(meta)
	if err != nil {
		t.Fatal(err)
	}
	err = st.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBooks).Put([]byte("broken"), data)
	})
	if err != nil {
		t.Fatal(err)
	}

	_, ok, err := st.Get("broken", "hash1")
	if err == nil {
		t.Fatal("a corrupt record must return an error, not a book")
	}
	if ok {
		t.Error("a corrupt record must not report a hit")
	}
}

func TestBoltStore_DeleteAndList(t *testing.T) {
	st := newTestStore(t)
	st.Put(analyzeTestBook(t, "one", "你好。"), "h1")
	st.Put(analyzeTestBook(t, "two", "再见。"), "h2")

	titles, err := st.ListTitles()
	if err != nil {
		t.Fatal(err)
	}
	if len(titles) != 2 {
		t.Fatalf("expected 2 titles, got %v", titles)
	}

	if err := st.Delete("one"); err != nil {
		t.Fatal(err)
	}
	titles, err = st.ListTitles()
	if err != nil {
		t.Fatal(err)
	}
	if len(titles) != 1 || titles[0] != "two" {
		t.Errorf("expected only %q left, got %v", "two", titles)
	}
}
