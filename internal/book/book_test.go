package book

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"bookstore/internal/config"
)

var testCfg = config.ForYear(2025)

func strPtr(s string) *string { return &s }

func TestNew_Valid(t *testing.T) {
	b, err := New("9780134685991", "How to read a book", "Daniel Zhong", 29.99, 2025, testCfg)
	require.NoError(t, err)

	assert.Equal(t, "9780134685991", b.ISBN())
	assert.Equal(t, "How to read a book", b.Title())
	assert.Equal(t, "Daniel Zhong", b.Author())
	assert.Equal(t, 29.99, b.Price())
	assert.Equal(t, 2025, b.Year())
}

func TestNew_CanonicalizesISBN(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"978-0-13-468599-0", "9780134685990"},
		{"  9780134685990  ", "9780134685990"},
		{" 0-13-468599-1 ", "0134685991"},
		{"0134685991", "0134685991"},
	}

	for _, tc := range testCases {
		b, err := New(tc.in, "Title", "Author", 1, 2000, testCfg)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, b.ISBN())
	}
}

func TestNew_TrimsTitleAndAuthor(t *testing.T) {
	b, err := New("0134685991", "  Dune ", "\tFrank Herbert\n", 9.5, 1965, testCfg)
	require.NoError(t, err)
	assert.Equal(t, "Dune", b.Title())
	assert.Equal(t, "Frank Herbert", b.Author())

	blank, err := New("0134685991", "   ", "", 0, 1965, testCfg)
	require.NoError(t, err)
	assert.Equal(t, "", blank.Title())
	assert.Equal(t, "", blank.Author())
}

func TestNew_InvalidISBN(t *testing.T) {
	testCases := []struct {
		name string
		isbn string
	}{
		{"empty", ""},
		{"blank", "    "},
		{"only hyphens", "----"},
		{"too short", "123456789"},
		{"too long", "12345678901234"},
		{"letters", "97801346859X"},
		{"check digit X", "012345678X"},
		{"inner space", "978013 468599"},
		{"sign", "+978013468599"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.isbn, "Title", "Author", 1, 2000, testCfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
			assert.NotErrorIs(t, err, ErrMissingValue)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "isbn", verr.Field)
		})
	}
}

func TestNew_PriceAndYearBounds(t *testing.T) {
	testCases := []struct {
		name  string
		price float64
		year  int
		field string
	}{
		{"negative price", -0.01, 2000, "price"},
		{"year before printing", 10, 1449, "year"},
		{"year too far ahead", 10, 2027, "year"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("0134685991", "Title", "Author", tc.price, tc.year, testCfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	t.Run("inclusive bounds", func(t *testing.T) {
		_, err := New("0134685991", "T", "A", 0, 1450, testCfg)
		assert.NoError(t, err)
		_, err = New("0134685991", "T", "A", 0, 2026, testCfg)
		assert.NoError(t, err)
	})

	t.Run("bound follows config", func(t *testing.T) {
		_, err := New("0134685991", "T", "A", 0, 2031, config.ForYear(2030))
		assert.NoError(t, err)
		_, err = New("0134685991", "T", "A", 0, 2032, config.ForYear(2030))
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestDraft_MissingValues(t *testing.T) {
	valid := Draft{
		ISBN:   strPtr("0134685991"),
		Title:  strPtr("Title"),
		Author: strPtr("Author"),
		Price:  1,
		Year:   2000,
	}

	t.Run("complete", func(t *testing.T) {
		_, err := valid.Build(testCfg)
		assert.NoError(t, err)
	})

	for _, field := range []string{"isbn", "title", "author"} {
		t.Run(field, func(t *testing.T) {
			d := valid
			switch field {
			case "isbn":
				d.ISBN = nil
			case "title":
				d.Title = nil
			case "author":
				d.Author = nil
			}

			b, err := d.Build(testCfg)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrMissingValue)
			assert.NotErrorIs(t, err, ErrInvalidValue)
			assert.True(t, strings.HasPrefix(err.Error(), field+":"))
		})
	}
}

func TestDraft_FirstFailureWins(t *testing.T) {
	d := Draft{
		ISBN:   strPtr("bad"),
		Title:  nil,
		Author: nil,
		Price:  -1,
		Year:   1,
	}
	_, err := d.Build(testCfg)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "isbn", verr.Field)

	d.ISBN = strPtr("0134685991")
	_, err = d.Build(testCfg)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "title", verr.Field)
	assert.ErrorIs(t, err, ErrMissingValue)

	d.Title = strPtr("t")
	d.Author = strPtr("a")
	_, err = d.Build(testCfg)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "price", verr.Field)
}

func TestEqual_UsesISBNOnly(t *testing.T) {
	a, err := New("978-0-13-468599-0", "One", "X", 1, 2000, testCfg)
	require.NoError(t, err)
	b, err := New("9780134685990", "Two", "Y", 99, 1990, testCfg)
	require.NoError(t, err)
	c, err := New("0134685991", "One", "X", 1, 2000, testCfg)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestCompareByTitle(t *testing.T) {
	a, _ := New("0134685991", "Alpha", "X", 1, 2000, testCfg)
	b, _ := New("0134685992", "Beta", "X", 1, 2000, testCfg)

	assert.Negative(t, CompareByTitle(a, b))
	assert.Positive(t, CompareByTitle(b, a))
	assert.Zero(t, CompareByTitle(a, a))
}

func TestMarshalJSON(t *testing.T) {
	b, err := New("978-0-13-468599-0", "Go", "Rob", 12.5, 2015, testCfg)
	require.NoError(t, err)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"isbn":"9780134685990","title":"Go","author":"Rob","price":12.5,"year":2015}`, string(data))
}

func TestISBNRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		digits := rapid.StringMatching(`[0-9]{10,13}`).Draw(t, "digits")

		// Sprinkle hyphens between digits and pad with whitespace.
		var sb strings.Builder
		sb.WriteString(rapid.SampledFrom([]string{"", " ", "\t", "  "}).Draw(t, "lead"))
		for i, r := range digits {
			if i > 0 && rapid.Bool().Draw(t, "hyphen") {
				sb.WriteByte('-')
			}
			sb.WriteRune(r)
		}
		sb.WriteString(rapid.SampledFrom([]string{"", " ", "\n"}).Draw(t, "trail"))

		b, err := New(sb.String(), "t", "a", 0, 2000, testCfg)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", sb.String(), err)
		}
		if b.ISBN() != digits {
			t.Fatalf("ISBN() = %q, want %q", b.ISBN(), digits)
		}
	})
}
