// Package catalog holds an insertion-ordered collection of books, unique by
// canonical ISBN, with lookup, search and aggregate queries.
//
// A Catalog is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"bookstore/internal/book"
	"bookstore/internal/config"
)

// ErrInvalidArgument is returned for a malformed price range.
var ErrInvalidArgument = errors.New("invalid argument")

// Catalog owns its books. Every query returning several books returns a
// fresh slice; the *book.Book values themselves are immutable and shared.
type Catalog struct {
	books  []*book.Book
	cfg    config.Config
	logger Logger
}

// New returns an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		cfg:    config.Default(),
		logger: noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends b unless it is nil, was not built by book.New or
// book.Draft.Build, or its ISBN is already present. Every rejection reports
// false.
func (c *Catalog) Add(b *book.Book) bool {
	if b == nil {
		c.logger.Debug("add rejected: nil book")
		return false
	}
	if b.ISBN() == "" {
		c.logger.Debug("add rejected: unvalidated book")
		return false
	}
	if c.indexOf(b.ISBN()) >= 0 {
		c.logger.Debug("add rejected: duplicate isbn", "isbn", b.ISBN())
		return false
	}
	c.books = append(c.books, b)
	return true
}

// RemoveByISBN removes the book with the given ISBN. A blank ISBN is treated
// as not found.
func (c *Catalog) RemoveByISBN(isbn string) bool {
	if strings.TrimSpace(isbn) == "" {
		return false
	}
	i := c.indexOf(book.CanonicalISBN(isbn))
	if i < 0 {
		return false
	}
	c.books = slices.Delete(c.books, i, i+1)
	c.logger.Debug("book removed", "isbn", book.CanonicalISBN(isbn))
	return true
}

// FindByISBN returns the book with the given ISBN, if any.
func (c *Catalog) FindByISBN(isbn string) (*book.Book, bool) {
	if strings.TrimSpace(isbn) == "" {
		return nil, false
	}
	i := c.indexOf(book.CanonicalISBN(isbn))
	if i < 0 {
		return nil, false
	}
	return c.books[i], true
}

func (c *Catalog) indexOf(isbn string) int {
	for i, b := range c.books {
		if b.ISBN() == isbn {
			return i
		}
	}
	return -1
}

// FindByTitle returns books whose title contains query, case-insensitively.
//
// A blank query reports ok == false, which is distinct from a valid query
// with no matches. FindByPriceRange fails instead, and the bookarray counters
// return zero; the three policies are intentionally not unified.
func (c *Catalog) FindByTitle(query string) (matches []*book.Book, ok bool) {
	return c.findContaining(query, (*book.Book).Title)
}

// FindByAuthor returns books whose author contains query, case-insensitively.
// A blank query reports ok == false, as in FindByTitle.
func (c *Catalog) FindByAuthor(query string) (matches []*book.Book, ok bool) {
	return c.findContaining(query, (*book.Book).Author)
}

func (c *Catalog) findContaining(query string, field func(*book.Book) string) ([]*book.Book, bool) {
	if strings.TrimSpace(query) == "" {
		return nil, false
	}
	needle := strings.ToLower(strings.TrimSpace(query))

	matches := []*book.Book{}
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(strings.TrimSpace(field(b))), needle) {
			matches = append(matches, b)
		}
	}
	return matches, true
}

// FindByPriceRange returns books priced within [minPrice, maxPrice].
//
// It fails when minPrice > maxPrice, when minPrice is negative, or when
// maxPrice is not positive. The last rule also rejects
// the otherwise well-formed [0, 0] range for free books.
func (c *Catalog) FindByPriceRange(minPrice, maxPrice float64) ([]*book.Book, error) {
	switch {
	case minPrice > maxPrice:
		return nil, fmt.Errorf("%w: min price %.2f exceeds max price %.2f", ErrInvalidArgument, minPrice, maxPrice)
	case minPrice < 0:
		return nil, fmt.Errorf("%w: min price %.2f is negative", ErrInvalidArgument, minPrice)
	case maxPrice <= 0:
		return nil, fmt.Errorf("%w: max price %.2f must be positive", ErrInvalidArgument, maxPrice)
	}

	matches := []*book.Book{}
	for _, b := range c.books {
		if b.Price() >= minPrice && b.Price() <= maxPrice {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

// FindByYear returns books published in year. A year outside
// [1, MaxQueryYear] reports ok == false.
func (c *Catalog) FindByYear(year int) (matches []*book.Book, ok bool) {
	if year < 1 || year > c.cfg.MaxQueryYear() {
		return nil, false
	}

	matches = []*book.Book{}
	for _, b := range c.books {
		if b.Year() == year {
			matches = append(matches, b)
		}
	}
	return matches, true
}

// Size returns the number of books.
func (c *Catalog) Size() int {
	return len(c.books)
}

// InventoryValue sums all prices.
func (c *Catalog) InventoryValue() float64 {
	var total float64
	for _, b := range c.books {
		total += b.Price()
	}
	return total
}

// MostExpensive returns the highest priced book. On a tie the book added last
// wins.
func (c *Catalog) MostExpensive() (*book.Book, bool) {
	var best *book.Book
	for _, b := range c.books {
		if best == nil || b.Price() >= best.Price() {
			best = b
		}
	}
	return best, best != nil
}

// MostRecent returns the book with the latest year. On a tie the book added
// first wins.
func (c *Catalog) MostRecent() (*book.Book, bool) {
	var best *book.Book
	for _, b := range c.books {
		if best == nil || b.Year() > best.Year() {
			best = b
		}
	}
	return best, best != nil
}

// Snapshot returns a fixed-size copy of all books in insertion order.
func (c *Catalog) Snapshot() []*book.Book {
	out := make([]*book.Book, len(c.books))
	copy(out, c.books)
	return out
}

// AllBooks returns a growable copy of all books in insertion order.
func (c *Catalog) AllBooks() []*book.Book {
	return append([]*book.Book{}, c.books...)
}
