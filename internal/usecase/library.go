package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"hanzibook/internal/adapter/analyzer"
	"hanzibook/internal/adapter/cache"
	"hanzibook/internal/adapter/fs"
	"hanzibook/internal/domain"
	"hanzibook/internal/port"
)

// Library loads and analyses a batch of books. A failed book never stops the
// batch; its failure is collected and reported. Already-analysed titles are
// served from the in-memory cache, and from the persistent store when one is
// configured.
type Library struct {
	engine *analyzer.Engine
	walker *fs.Walker
	cache  *cache.BookCache
	store  port.BookStore // nil when persistence is disabled
}

func NewLibrary(engine *analyzer.Engine, walker *fs.Walker, bookCache *cache.BookCache, store port.BookStore) *Library {
	return &Library{
		engine: engine,
		walker: walker,
		cache:  bookCache,
		store:  store,
	}
}

// LoadResult reports what a batch load did. Errors holds per-book failures;
// Warnings holds conditions the load recovered from, such as an unreadable
// persistent store entry.
type LoadResult struct {
	Books     []*domain.Book
	Analyzed  int
	FromCache int
	Errors    []string
	Warnings  []string
}

// ListBooks returns the book files discovered under root.
func (l *Library) ListBooks(root string) ([]fs.BookFile, error) {
	return l.walker.Walk(root)
}

// Load analyses the selected titles under root, or every discovered book when
// titles is empty. progress, when non-nil, is called after each book.
func (l *Library) Load(root string, titles []string, progress func(done, total int, title string)) (*LoadResult, error) {
	files, err := l.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan books directory: %w", err)
	}

	if len(titles) > 0 {
		wanted := make(map[string]bool, len(titles))
		for _, t := range titles {
			wanted[t] = true
		}
		selected := files[:0]
		for _, f := range files {
			if wanted[f.Title] {
				selected = append(selected, f)
				delete(wanted, f.Title)
			}
		}
		files = selected
		for t := range wanted {
			return nil, fmt.Errorf("no book file found for title %q", t)
		}
	}

	result := &LoadResult{}
	for i, file := range files {
		book, fromCache, err := l.loadOne(file, result)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
		} else {
			result.Books = append(result.Books, book)
			if fromCache {
				result.FromCache++
			} else {
				result.Analyzed++
			}
		}
		if progress != nil {
			progress(i+1, len(files), file.Title)
		}
	}

	return result, nil
}

func (l *Library) loadOne(file fs.BookFile, result *LoadResult) (*domain.Book, bool, error) {
	if book, ok := l.cache.Get(file.Title); ok {
		return book, true, nil
	}

	text, err := fs.ReadBook(file.Path)
	if err != nil {
		return nil, false, fmt.Errorf("could not read %q: %w", file.Path, err)
	}
	hash := textHash(text)

	if l.store != nil {
		book, ok, err := l.store.Get(file.Title, hash)
		if err != nil {
			// a broken store entry degrades to re-analysis, but never silently
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not read %q from the book store: %v", file.Title, err))
		} else if ok {
			l.cache.Put(book)
			return book, true, nil
		}
	}

	book, err := l.engine.Analyze(file.Title, text)
	if err != nil {
		return nil, false, err
	}

	l.cache.Put(book)
	if l.store != nil {
		// a failed store write must not fail the load, but it must surface
		if err := l.store.Put(book, hash); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not write %q to the book store: %v", file.Title, err))
		}
	}
	return book, false, nil
}

func textHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
