package testutil

import (
	"testing"

	"bookstore/internal/book"
	"bookstore/internal/config"
)

// Config is the validation config shared by tests. Fixture years are valid
// against it regardless of the wall clock.
var Config = config.ForYear(2025)

// NewBook builds a book against Config and fails the test on error.
func NewBook(t testing.TB, isbn, title, author string, price float64, year int) *book.Book {
	t.Helper()
	b, err := book.New(isbn, title, author, price, year, Config)
	if err != nil {
		t.Fatalf("book.New(%q): %v", isbn, err)
	}
	return b
}

// Shelf is a set of six books with overlapping titles, authors, prices and
// years, in the order tests usually add them.
type Shelf struct {
	MyBook       *book.Book
	Fahrenheit   *book.Book
	HungerGames  *book.Book
	Amulet       *book.Book
	AmuletStone  *book.Book
	HungerSequel *book.Book
}

// NewShelf returns a fresh Shelf.
func NewShelf(t testing.TB) Shelf {
	t.Helper()
	return Shelf{
		MyBook:       NewBook(t, "9374859192843", "My book", "John Doe", 29.99, 2012),
		Fahrenheit:   NewBook(t, "9375827462849", "Fahrenheit 451", "Ray Bradbury", 9.99, 2014),
		HungerGames:  NewBook(t, "9576818375934", "Hunger Games", "Jane Smith", 10.99, 2015),
		Amulet:       NewBook(t, "9345834573845", "Amulet", "Samantha Smith", 12.99, 2005),
		AmuletStone:  NewBook(t, "9365810375869", "Amulet Stone", "Jane Doe", 10.99, 2008),
		HungerSequel: NewBook(t, "9384758393475", "Hunger Games Sequel", "Jane Doe", 45.99, 2015),
	}
}

