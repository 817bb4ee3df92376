// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/config"
	"github.com/mtreilly/arc-shelf/internal/library"
)

func newClearCmd(cfg *config.Config) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every book in the catalog",
		Long: `Empty the whole catalog. Destructive, so it runs in two steps:
without --yes nothing is deleted and the command reports what a confirmed
run would remove.

Examples:
  arc-shelf clear        # Shows what would be deleted
  arc-shelf clear --yes  # Actually deletes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := library.NewStore(cfg.LibraryFile)
			catalog, err := store.Load()
			if err != nil {
				return err
			}

			switch catalog.Clear(yes) {
			case library.ClearStatusConfirmationRequired:
				fmt.Printf("This would delete all %d book(s) in %s.\n", catalog.Len(), store.Path())
				fmt.Println("Re-run with --yes to confirm.")
			case library.ClearStatusCleared:
				if err := store.Save(catalog); err != nil {
					return err
				}
				fmt.Println("Library cleared.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")

	return cmd
}
