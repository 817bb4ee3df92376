// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/config"
	"github.com/mtreilly/arc-shelf/internal/library"
	"github.com/mtreilly/arc-shelf/internal/output"
)

func newSearchCmd(cfg *config.Config) *cobra.Command {
	var out output.OutputOptions
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search books by title or author",
		Long: `Search case-insensitively for a substring of a title or an author
name. An empty query matches nothing.

Examples:
  arc-shelf search "dune"                 # Title match
  arc-shelf search "herbert"              # Author match
  arc-shelf search "sci" --output json    # Machine-readable`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			query := args[0]

			store := library.NewStore(cfg.LibraryFile)
			catalog, err := store.Load()
			if err != nil {
				return err
			}

			books := catalog.Search(query)
			if limit > 0 && len(books) > limit {
				books = books[:limit]
			}

			if len(books) == 0 {
				fmt.Printf("No books found matching %q\n", query)
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(books)
			}
			if out.Is(output.OutputYAML) {
				return output.YAML(books)
			}

			fmt.Printf("Found %d result(s) for %q:\n\n", len(books), query)

			table := output.NewTable("Title", "Author", "Year", "Genre", "Read")
			for _, b := range books {
				table.AddRow(truncate(b.Title, 45), truncate(b.Author, 30), yearString(b.Year), truncate(b.Genre, 20), readString(b.ReadStatus))
			}
			table.Render()

			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Limit number of results")

	return cmd
}
