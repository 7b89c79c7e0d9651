package cache

import (
	"sync"

	"hanzibook/internal/domain"
)

// BookCache maps book title to its analysed Book so a title is analysed at
// most once per run. It is owned by the orchestration layer, not the engine;
// entries live until Clear or process exit.
type BookCache struct {
	mu    sync.RWMutex
	books map[string]*domain.Book
}

func NewBookCache() *BookCache {
	return &BookCache{books: make(map[string]*domain.Book)}
}

func (c *BookCache) Get(title string) (*domain.Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	book, ok := c.books[title]
	return book, ok
}

func (c *BookCache) Put(book *domain.Book) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.books[book.Title] = book
}

func (c *BookCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}

func (c *BookCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.books = make(map[string]*domain.Book)
}
