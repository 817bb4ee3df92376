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

func newListCmd(cfg *config.Config) *cobra.Command {
	var out output.OutputOptions
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books in the catalog",
		Long: `List every book in the catalog, in the order it was added.

Examples:
  arc-shelf list                 # Table of all books
  arc-shelf list --limit 20      # First 20 only
  arc-shelf list --output json   # Machine-readable`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			store := library.NewStore(cfg.LibraryFile)
			catalog, err := store.Load()
			if err != nil {
				return err
			}

			books := catalog.ListAll()
			if limit > 0 && len(books) > limit {
				books = books[:limit]
			}

			if len(books) == 0 {
				fmt.Println("No books in the library yet.")
				fmt.Println("Use 'arc-shelf add' to add your first one.")
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(books)
			}
			if out.Is(output.OutputYAML) {
				return output.YAML(books)
			}

			table := output.NewTable("Title", "Author", "Year", "Genre", "Read")
			for _, b := range books {
				table.AddRow(truncate(b.Title, 45), truncate(b.Author, 30), yearString(b.Year), truncate(b.Genre, 20), readString(b.ReadStatus))
			}
			table.Render()

			fmt.Printf("\nTotal: %d book(s)\n", catalog.Len())
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Limit number of results")

	return cmd
}
