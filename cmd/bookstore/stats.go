package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookstore/internal/book"
	"bookstore/internal/bookarray"
)

type statsView struct {
	Size           int        `json:"size"`
	InventoryValue float64    `json:"inventory_value"`
	AveragePrice   float64    `json:"average_price"`
	MostExpensive  *book.Book `json:"most_expensive"`
	MostRecent     *book.Book `json:"most_recent"`
	Oldest         *book.Book `json:"oldest"`
	BeforeYear     *int       `json:"before_year,omitempty"`
	ByAuthor       *int       `json:"by_author,omitempty"`
}

func newStatsCmd(a *app) *cobra.Command {
	var (
		before int
		author string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print catalog size, value and extremes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books := a.catalog.Snapshot()

			var v statsView
			v.Size = a.catalog.Size()
			v.InventoryValue = a.catalog.InventoryValue()
			v.AveragePrice = bookarray.AveragePrice(books)
			v.MostExpensive, _ = a.catalog.MostExpensive()
			v.MostRecent, _ = a.catalog.MostRecent()
			v.Oldest, _ = bookarray.FindOldest(books)
			if cmd.Flags().Changed("before") {
				n := bookarray.CountBeforeYear(books, before)
				v.BeforeYear = &n
			}
			if cmd.Flags().Changed("author") {
				n := bookarray.CountByAuthor(books, author)
				v.ByAuthor = &n
			}

			out := cmd.OutOrStdout()
			if a.asJSON {
				return writeJSON(out, v)
			}

			fmt.Fprintf(out, "books:           %d\n", v.Size)
			fmt.Fprintf(out, "inventory value: %.2f\n", v.InventoryValue)
			fmt.Fprintf(out, "average price:   %.2f\n", v.AveragePrice)
			fmt.Fprintf(out, "most expensive:  %s\n", describe(v.MostExpensive, v.MostExpensive != nil))
			fmt.Fprintf(out, "most recent:     %s\n", describe(v.MostRecent, v.MostRecent != nil))
			fmt.Fprintf(out, "oldest:          %s\n", describe(v.Oldest, v.Oldest != nil))
			if v.BeforeYear != nil {
				fmt.Fprintf(out, "before %d:     %d\n", before, *v.BeforeYear)
			}
			if v.ByAuthor != nil {
				fmt.Fprintf(out, "by %q: %d\n", author, *v.ByAuthor)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&before, "before", 0, "also count books published before this year")
	cmd.Flags().StringVar(&author, "author", "", "also count books by this exact author")
	return cmd
}
