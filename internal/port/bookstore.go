package port

import "hanzibook/internal/domain"

// BookStore persists analysed books between runs.
type BookStore interface {
	// Get returns the stored book for title if its text hash matches hash.
	Get(title string, hash string) (*domain.Book, bool, error)

	Put(book *domain.Book, hash string) error

	Delete(title string) error

	ListTitles() ([]string, error)

	Close() error
}
