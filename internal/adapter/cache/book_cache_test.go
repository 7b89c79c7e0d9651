package cache

import (
	"testing"

	"hanzibook/internal/domain"
)

func TestBookCache(t *testing.T) {
	c := NewBookCache()

	if _, ok := c.Get("missing"); ok {
		t.Error("empty cache should miss")
	}

	book := &domain.Book{Title: "one"}
	c.Put(book)

	got, ok := c.Get("one")
	if !ok {
		t.Fatal("expected a hit for a cached title")
	}
	if got != book {
		t.Error("cache must return the same Book, not a copy")
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}

	// Entries are never evicted, only explicitly cleared.
	c.Put(&domain.Book{Title: "two"})
	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected an empty cache after Clear, got %d", c.Len())
	}
}
