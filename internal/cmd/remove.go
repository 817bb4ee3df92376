// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/config"
	"github.com/mtreilly/arc-shelf/internal/library"
)

func newRemoveCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove books by title",
		Long: `Remove every book whose title matches, ignoring case. Duplicate
copies all go at once.

Examples:
  arc-shelf remove "Dune"
  arc-shelf remove "the hobbit"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]

			store := library.NewStore(cfg.LibraryFile)
			catalog, err := store.Load()
			if err != nil {
				return err
			}

			removed := catalog.Remove(title)
			if removed == 0 {
				fmt.Printf("No books found with title %q\n", title)
				return nil
			}

			if err := store.Save(catalog); err != nil {
				return err
			}

			fmt.Printf("Removed %d book(s) titled %q\n", removed, title)
			fmt.Printf("Remaining: %d book(s)\n", catalog.Len())
			return nil
		},
	}

	return cmd
}
