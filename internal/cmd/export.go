// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mtreilly/arc-shelf/internal/config"
	"github.com/mtreilly/arc-shelf/internal/library"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newExportCmd(cfg *config.Config) *cobra.Command {
	var (
		format string // "text", "json", "yaml"
		file   string // file path or "-" for stdout
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog to a file",
		Long: `Export the catalog for sharing or backup.

The text format is the canonical interchange form that import reads back:
five labelled lines per book and a dashed delimiter. JSON and YAML mirror
the on-disk record shape.

Examples:
  arc-shelf export                                    # Text format to the configured export file
  arc-shelf export --file -                           # Text format to stdout
  arc-shelf export --format json --file backup.json   # JSON instead`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := library.NewStore(cfg.LibraryFile)
			catalog, err := store.Load()
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "text":
				data = library.Encode(catalog)
			case "json":
				data, err = json.MarshalIndent(catalog.ListAll(), "", "  ")
				if err == nil {
					data = append(data, '\n')
				}
			case "yaml":
				data, err = yaml.Marshal(catalog.ListAll())
			default:
				return fmt.Errorf("unsupported format: %s (choose text, json, yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}

			if file == "" {
				file = cfg.ExportFile
			}
			if file == "-" {
				fmt.Print(string(data))
				return nil
			}

			if err := os.WriteFile(file, data, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}

			fmt.Printf("Exported %d book(s) to %s\n", catalog.Len(), file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Export format: text, json, yaml")
	cmd.Flags().StringVar(&file, "file", "", "Output file path, - for stdout (default from config)")

	return cmd
}
