// Package bookarray provides stateless operations over caller-owned slices
// of books.
//
// Unlike a catalog, these slices may hold nil entries, and a nil slice is a
// valid input. Invalid input degrades to zero or an empty slice; only
// FilterPriceAtMost returns an error.
package bookarray

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"bookstore/internal/book"
)

// ErrInvalidArgument is returned for a negative price threshold.
var ErrInvalidArgument = errors.New("invalid argument")

// CountBeforeYear counts books published before cutoff.
func CountBeforeYear(books []*book.Book, cutoff int) int {
	n := 0
	for _, b := range books {
		if b != nil && b.Year() < cutoff {
			n++
		}
	}
	return n
}

// CountByAuthor counts books whose author equals author exactly.
func CountByAuthor(books []*book.Book, author string) int {
	n := 0
	for _, b := range books {
		if b != nil && b.Author() == author {
			n++
		}
	}
	return n
}

// FilterPriceAtMost returns the books priced at or below maxPrice, in their
// original order.
func FilterPriceAtMost(books []*book.Book, maxPrice float64) ([]*book.Book, error) {
	if maxPrice < 0 {
		return nil, fmt.Errorf("%w: max price %.2f is negative", ErrInvalidArgument, maxPrice)
	}
	return filter(books, func(b *book.Book) bool {
		return b.Price() <= maxPrice
	}), nil
}

// FilterByDecade returns the books published in [decadeStart, decadeStart+9].
func FilterByDecade(books []*book.Book, decadeStart int) []*book.Book {
	return filter(books, func(b *book.Book) bool {
		return b.Year() >= decadeStart && b.Year() <= decadeStart+9
	})
}

func filter(books []*book.Book, keep func(*book.Book) bool) []*book.Book {
	out := []*book.Book{}
	for _, b := range books {
		if b != nil && keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// SortByPrice sorts books in place by ascending price. The sort is stable and
// nil entries move to the end.
func SortByPrice(books []*book.Book) {
	sortNilsLast(books, func(a, b *book.Book) int {
		return cmp.Compare(a.Price(), b.Price())
	})
}

// SortByYear sorts books in place by ascending year, like SortByPrice.
func SortByYear(books []*book.Book) {
	sortNilsLast(books, func(a, b *book.Book) int {
		return cmp.Compare(a.Year(), b.Year())
	})
}

// SortByTitle sorts books in place by their natural title order.
func SortByTitle(books []*book.Book) {
	sortNilsLast(books, book.CompareByTitle)
}

func sortNilsLast(books []*book.Book, compare func(a, b *book.Book) int) {
	slices.SortStableFunc(books, func(a, b *book.Book) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		case b == nil:
			return -1
		}
		return compare(a, b)
	})
}

// AveragePrice returns the mean price of the non-nil books, or 0.
func AveragePrice(books []*book.Book) float64 {
	var sum float64
	n := 0
	for _, b := range books {
		if b != nil {
			sum += b.Price()
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// FindOldest returns the first book with the smallest year.
func FindOldest(books []*book.Book) (*book.Book, bool) {
	var oldest *book.Book
	for _, b := range books {
		if b != nil && (oldest == nil || b.Year() < oldest.Year()) {
			oldest = b
		}
	}
	return oldest, oldest != nil
}

// Merge returns a followed by b. Nil entries are carried through.
func Merge(a, b []*book.Book) []*book.Book {
	out := make([]*book.Book, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// RemoveDuplicates keeps the first book for each ISBN, in original order.
// Nil entries are dropped.
func RemoveDuplicates(books []*book.Book) []*book.Book {
	seen := make(map[string]struct{}, len(books))
	out := []*book.Book{}
	for _, b := range books {
		if b == nil {
			continue
		}
		if _, dup := seen[b.ISBN()]; dup {
			continue
		}
		seen[b.ISBN()] = struct{}{}
		out = append(out, b)
	}
	return out
}
