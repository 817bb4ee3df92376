// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/config"
	"github.com/mtreilly/arc-shelf/internal/library"
)

func newImportCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import a catalog from exported text",
		Long: `Read an exported text catalog and replace the current library with it.

The parser is tolerant: lines it does not recognize are skipped, and a book
whose year cannot be read is imported with the year left unknown. Pass -
to read from standard input.

Examples:
  arc-shelf import library.txt
  arc-shelf import ~/backups/library.txt
  cat library.txt | arc-shelf import -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var r io.Reader
			if path == "-" {
				r = os.Stdin
			} else {
				// Expand ~ to home directory
				if strings.HasPrefix(path, "~") {
					home, _ := os.UserHomeDir()
					path = filepath.Join(home, path[1:])
				}

				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open import file: %w", err)
				}
				defer f.Close()
				r = f
			}

			catalog, err := library.Decode(r)
			if err != nil {
				return err
			}

			store := library.NewStore(cfg.LibraryFile)
			if err := store.Save(catalog); err != nil {
				return err
			}

			fmt.Printf("Imported %d book(s) into %s\n", catalog.Len(), store.Path())
			return nil
		},
	}

	return cmd
}
