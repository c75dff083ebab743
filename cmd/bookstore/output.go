package main

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"bookstore/internal/book"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printBooks(w io.Writer, books []*book.Book, asJSON bool) error {
	if asJSON {
		return writeJSON(w, books)
	}
	if len(books) == 0 {
		_, err := fmt.Fprintln(w, "no books found")
		return err
	}
	for _, b := range books {
		if _, err := fmt.Fprintf(w, "%-13s  %4d  %8.2f  %s / %s\n", b.ISBN(), b.Year(), b.Price(), b.Title(), b.Author()); err != nil {
			return err
		}
	}
	return nil
}

func describe(b *book.Book, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%s (%s, %d, %.2f)", b.Title(), b.ISBN(), b.Year(), b.Price())
}
