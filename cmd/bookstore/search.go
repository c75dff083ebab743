package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bookstore/internal/book"
)

var errNotApplicable = errors.New("query not applicable")

func newSearchCmd(a *app) *cobra.Command {
	var (
		isbn     string
		title    string
		author   string
		year     int
		minPrice float64
		maxPrice float64
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find books by isbn, title, author, year or price range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			priceSet := flags.Changed("min") || flags.Changed("max")
			if err := requireOneOf(map[string]bool{
				"isbn":   flags.Changed("isbn"),
				"title":  flags.Changed("title"),
				"author": flags.Changed("author"),
				"year":   flags.Changed("year"),
				"price":  priceSet,
			}); err != nil {
				return err
			}

			var (
				matches []*book.Book
				ok      = true
				err     error
			)
			switch {
			case flags.Changed("isbn"):
				var b *book.Book
				if b, ok = a.catalog.FindByISBN(isbn); ok {
					matches = []*book.Book{b}
				} else {
					matches, ok = []*book.Book{}, true
				}
			case flags.Changed("title"):
				matches, ok = a.catalog.FindByTitle(title)
			case flags.Changed("author"):
				matches, ok = a.catalog.FindByAuthor(author)
			case flags.Changed("year"):
				matches, ok = a.catalog.FindByYear(year)
			case priceSet:
				matches, err = a.catalog.FindByPriceRange(minPrice, maxPrice)
			}
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: blank text or unsupported year", errNotApplicable)
			}

			return printBooks(cmd.OutOrStdout(), matches, a.asJSON)
		},
	}

	cmd.Flags().StringVar(&isbn, "isbn", "", "exact isbn, hyphens allowed")
	cmd.Flags().StringVar(&title, "title", "", "case-insensitive title substring")
	cmd.Flags().StringVar(&author, "author", "", "case-insensitive author substring")
	cmd.Flags().IntVar(&year, "year", 0, "exact publication year")
	cmd.Flags().Float64Var(&minPrice, "min", 0, "lowest price, inclusive")
	cmd.Flags().Float64Var(&maxPrice, "max", 0, "highest price, inclusive")
	return cmd
}
