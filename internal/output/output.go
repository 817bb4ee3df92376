// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package output renders command results as aligned tables, JSON or YAML.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// OutputFormat names a supported presentation format.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// OutputOptions carries a command's presentation format choice.
type OutputOptions struct {
	raw      string
	resolved OutputFormat
}

// AddOutputFlags registers the --output flag with the given default.
func (o *OutputOptions) AddOutputFlags(cmd *cobra.Command, def OutputFormat) {
	cmd.Flags().StringVarP(&o.raw, "output", "o", string(def), "Output format: table, json, or yaml")
}

// Resolve validates the flag value. Call it first in RunE.
func (o *OutputOptions) Resolve() error {
	switch OutputFormat(o.raw) {
	case OutputTable, OutputJSON, OutputYAML:
		o.resolved = OutputFormat(o.raw)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (choose table, json, or yaml)", o.raw)
	}
}

// Is reports whether the resolved format is f.
func (o *OutputOptions) Is(f OutputFormat) bool {
	return o.resolved == f
}

// JSON writes v to stdout as indented JSON.
func JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// YAML writes v to stdout as YAML.
func YAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml output: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// Table renders rows with tab-aligned columns under an upper-case header.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable returns a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends one row of cells.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the table to stdout.
func (t *Table) Render() {
	t.RenderTo(os.Stdout)
}

// RenderTo writes the table to w.
func (t *Table) RenderTo(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	headers := make([]string, len(t.headers))
	for i, h := range t.headers {
		headers[i] = strings.ToUpper(h)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, row := range t.rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}
