// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/config"
	"github.com/mtreilly/arc-shelf/internal/library"
)

func newAddCmd(cfg *config.Config) *cobra.Command {
	var (
		title  string
		author string
		year   int
		genre  string
		read   bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Long: `Add a single book. Title, author, year and genre are all required;
the record is rejected with a per-field message when one is missing or the
year falls outside 1000..current year.

Examples:
  arc-shelf add --title "Dune" --author "Frank Herbert" --year 1965 --genre "Science Fiction"
  arc-shelf add -t "Hyperion" -a "Dan Simmons" -y 1989 -g "Science Fiction" --read`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := library.NewStore(cfg.LibraryFile)
			catalog, err := store.Load()
			if err != nil {
				return err
			}

			book := library.Book{
				Title:      title,
				Author:     author,
				Genre:      genre,
				ReadStatus: read,
			}
			if cmd.Flags().Changed("year") {
				book.Year = &year
			}

			if err := catalog.Add(book); err != nil {
				var verr *library.ValidationError
				if errors.As(err, &verr) {
					fmt.Println("Book not added:")
					for _, f := range verr.Fields {
						fmt.Printf("  - %s\n", f.Message)
					}
					return fmt.Errorf("%d field(s) failed validation", len(verr.Fields))
				}
				return err
			}

			if err := store.Save(catalog); err != nil {
				return err
			}

			fmt.Printf("Added: %s by %s\n", book.Title, book.Author)
			fmt.Printf("Total: %d book(s)\n", catalog.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Book title")
	cmd.Flags().StringVarP(&author, "author", "a", "", "Book author")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Publication year")
	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Genre")
	cmd.Flags().BoolVar(&read, "read", false, "Mark the book as already read")

	return cmd
}
