package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/book"
	"bookstore/internal/catalog"
	"bookstore/internal/config"
)

var testCfg = config.ForYear(2025)

const sample = `
books:
  - isbn: "978-0-13-468599-0"
    title: "The Go Programming Language"
    author: "Donovan"
    price: 39.5
    year: 2015
  - title: "No ISBN"
    author: "Nobody"
    price: 1
    year: 2000
  - isbn: "12345"
    title: "Short ISBN"
    author: "Someone"
    price: 1
    year: 2000
  - isbn: "9780134685990"
    title: "Same book, other printing"
    author: "Donovan"
    price: 10
    year: 2016
  - isbn: "0201633612"
    title: "Design Patterns"
    author: "Gamma"
    price: 54
    year: 1994
`

func TestLoad(t *testing.T) {
	c := catalog.New(catalog.WithConfig(testCfg))

	report, err := Load(strings.NewReader(sample), c, testCfg)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Added)
	assert.Equal(t, 2, c.Size())
	require.Len(t, report.Rejected, 3)

	assert.Equal(t, 1, report.Rejected[0].Index)
	assert.ErrorIs(t, report.Rejected[0].Err, book.ErrMissingValue)

	assert.Equal(t, 2, report.Rejected[1].Index)
	assert.ErrorIs(t, report.Rejected[1].Err, book.ErrInvalidValue)

	assert.Equal(t, 3, report.Rejected[2].Index)
	assert.ErrorIs(t, report.Rejected[2].Err, ErrDuplicate)
	assert.Contains(t, report.Rejected[2].String(), "entry 3")

	got, ok := c.FindByISBN("9780134685990")
	require.True(t, ok)
	assert.Equal(t, "The Go Programming Language", got.Title())
}

func TestLoad_EmptyDocument(t *testing.T) {
	c := catalog.New()
	report, err := Load(strings.NewReader(""), c, testCfg)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Added)
	assert.Empty(t, report.Rejected)
}

func TestLoad_Malformed(t *testing.T) {
	c := catalog.New()

	_, err := Load(strings.NewReader("books: [ {isbn: "), c, testCfg)
	assert.Error(t, err)

	_, err = Load(strings.NewReader("books:\n  - isbn: \"0201633612\"\n    publisher: X\n"), c, testCfg)
	assert.Error(t, err, "unknown fields are rejected")
	assert.Equal(t, 0, c.Size())
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "books.yaml")
	require.NoError(t, os.WriteFile(p, []byte(sample), 0644))

	c := catalog.New(catalog.WithConfig(testCfg))
	report, err := LoadFile(p, c, testCfg)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Added)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), c, testCfg)
	assert.Error(t, err)
}
