package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookstore/internal/bookarray"
	"bookstore/internal/catalog"
	"bookstore/internal/seed"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		sortBy    string
		decade    int
		maxPrice  float64
		mergeFile string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print every book, optionally merged with another file, filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books := a.catalog.Snapshot()

			if mergeFile != "" {
				other := catalog.New(catalog.WithConfig(a.cfg))
				report, err := seed.LoadFile(mergeFile, other, a.cfg)
				if err != nil {
					return err
				}
				logRejections(mergeFile, report)
				books = bookarray.RemoveDuplicates(bookarray.Merge(books, other.Snapshot()))
			}

			if cmd.Flags().Changed("decade") {
				books = bookarray.FilterByDecade(books, decade)
			}
			if cmd.Flags().Changed("max-price") {
				var err error
				if books, err = bookarray.FilterPriceAtMost(books, maxPrice); err != nil {
					return err
				}
			}

			switch sortBy {
			case "", "insertion":
			case "price":
				bookarray.SortByPrice(books)
			case "year":
				bookarray.SortByYear(books)
			case "title":
				bookarray.SortByTitle(books)
			default:
				return fmt.Errorf("unknown sort key %q (want insertion, price, year or title)", sortBy)
			}

			return printBooks(cmd.OutOrStdout(), books, a.asJSON)
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "insertion", "sort key: insertion, price, year or title")
	cmd.Flags().IntVar(&decade, "decade", 0, "keep books from this decade, e.g. 1990")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "keep books priced at or below this")
	cmd.Flags().StringVar(&mergeFile, "merge", "", "merge books from a second seed file, first isbn wins")
	return cmd
}
