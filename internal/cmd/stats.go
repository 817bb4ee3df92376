// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mtreilly/arc-shelf/internal/config"
	"github.com/mtreilly/arc-shelf/internal/library"
	"github.com/mtreilly/arc-shelf/internal/output"
)

func newStatsCmd(cfg *config.Config) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Long:  `Display totals for the catalog: book count, read count and percentage, and books per genre.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			store := library.NewStore(cfg.LibraryFile)
			catalog, err := store.Load()
			if err != nil {
				return err
			}

			summary := library.Summarize(catalog)

			if out.Is(output.OutputJSON) {
				return output.JSON(summary)
			}
			if out.Is(output.OutputYAML) {
				return output.YAML(summary)
			}

			fmt.Printf("Library Statistics\n")
			fmt.Printf("==================\n\n")
			fmt.Printf("Books:        %d\n", summary.Total)
			fmt.Printf("Read:         %d\n", summary.ReadCount)
			fmt.Printf("Percent read: %.2f%%\n", summary.PercentRead)

			if len(summary.GenreHistogram) > 0 {
				fmt.Println("By genre:")
				genres := make([]string, 0, len(summary.GenreHistogram))
				for g := range summary.GenreHistogram {
					genres = append(genres, g)
				}
				sort.Strings(genres)
				for _, g := range genres {
					fmt.Printf("  %s: %d\n", g, summary.GenreHistogram[g])
				}
			}

			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	return cmd
}
