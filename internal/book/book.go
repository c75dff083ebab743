package book

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"bookstore/internal/config"
)

// Book is one validated, immutable catalog entry. Only New and Draft.Build
// produce valid values; the zero value has an empty ISBN and is rejected by
// catalogs.
//
// Identity is the canonical ISBN: two books with the same ISBN are the same
// logical book regardless of their other fields.
type Book struct {
	isbn   string
	title  string
	author string
	price  float64
	year   int
}

// Draft is the nullable input form of a Book. A nil ISBN, Title or Author is
// reported as a missing value, distinct from a present but malformed one.
type Draft struct {
	ISBN   *string `json:"isbn" yaml:"isbn"`
	Title  *string `json:"title" yaml:"title"`
	Author *string `json:"author" yaml:"author"`
	Price  float64 `json:"price" yaml:"price"`
	Year   int     `json:"year" yaml:"year"`
}

// New validates its arguments and returns a Book.
func New(isbn, title, author string, price float64, year int, cfg config.Config) (*Book, error) {
	return Draft{
		ISBN:   &isbn,
		Title:  &title,
		Author: &author,
		Price:  price,
		Year:   year,
	}.Build(cfg)
}

// Build validates the draft in field order (isbn, title, author, price, year)
// and stops at the first failure.
func (d Draft) Build(cfg config.Config) (*Book, error) {
	if d.ISBN == nil {
		return nil, missing("isbn")
	}
	isbn := CanonicalISBN(*d.ISBN)
	if err := validateISBN(isbn); err != nil {
		return nil, err
	}

	if d.Title == nil {
		return nil, missing("title")
	}
	if d.Author == nil {
		return nil, missing("author")
	}
	if err := validatePrice(d.Price); err != nil {
		return nil, err
	}
	if err := validateYear(d.Year, cfg); err != nil {
		return nil, err
	}

	return &Book{
		isbn:   isbn,
		title:  strings.TrimSpace(*d.Title),
		author: strings.TrimSpace(*d.Author),
		price:  d.Price,
		year:   d.Year,
	}, nil
}

// CanonicalISBN strips hyphens and surrounding whitespace.
func CanonicalISBN(isbn string) string {
	return strings.TrimSpace(strings.ReplaceAll(isbn, "-", ""))
}

// ISBN returns the canonical, digits-only ISBN.
func (b *Book) ISBN() string { return b.isbn }

func (b *Book) Title() string { return b.title }

func (b *Book) Author() string { return b.author }

func (b *Book) Price() float64 { return b.price }

func (b *Book) Year() int { return b.year }

// Equal reports whether b and other share a canonical ISBN.
func (b *Book) Equal(other *Book) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.isbn == other.isbn
}

// CompareByTitle orders books lexicographically by title.
func CompareByTitle(a, b *Book) int {
	return strings.Compare(a.title, b.title)
}

func (b *Book) String() string {
	return fmt.Sprintf("Book{isbn=%s, title=%q, author=%q, price=%.2f, year=%d}",
		b.isbn, b.title, b.author, b.price, b.year)
}

type bookJSON struct {
	ISBN   string  `json:"isbn"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price"`
	Year   int     `json:"year"`
}

// MarshalJSON encodes the book's read-only view.
func (b *Book) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(bookJSON{
		ISBN:   b.isbn,
		Title:  b.title,
		Author: b.author,
		Price:  b.price,
		Year:   b.year,
	})
}
