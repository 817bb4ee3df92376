// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/config"
)

// NewRootCmd creates the root command for arc-shelf.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	var libraryFile string

	root := &cobra.Command{
		Use:   "arc-shelf",
		Short: "Manage your personal book catalog",
		Long: `Track the books you own, read, and mean to read.

arc-shelf provides tools to:
- Add, remove and search books
- Track read status and per-genre totals
- Export and import the catalog as plain text
- Keep everything in one JSON file you can sync or back up`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if libraryFile != "" {
				cfg.LibraryFile = libraryFile
			}
		},
	}

	root.PersistentFlags().StringVar(&libraryFile, "library", "", "Library JSON file (default from config)")

	root.AddCommand(newAddCmd(cfg))
	root.AddCommand(newRemoveCmd(cfg))
	root.AddCommand(newListCmd(cfg))
	root.AddCommand(newSearchCmd(cfg))
	root.AddCommand(newStatsCmd(cfg))
	root.AddCommand(newExportCmd(cfg))
	root.AddCommand(newImportCmd(cfg))
	root.AddCommand(newClearCmd(cfg))
	root.AddCommand(newWatchCmd(cfg))

	return root
}

// truncate shortens s to max bytes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// yearString renders a possibly unknown year for display.
func yearString(year *int) string {
	if year == nil {
		return "-"
	}
	return strconv.Itoa(*year)
}

// readString renders a read status with the same tokens the text format uses.
func readString(read bool) string {
	if read {
		return "Yes"
	}
	return "No"
}
