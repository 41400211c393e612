/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for mond.
package list

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/mond/cmd/project"
	"bennypowers.dev/mond/generator"
	"bennypowers.dev/mond/render"
	"bennypowers.dev/mond/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List the generated CSS variables",
	Long: `List every generated CSS variable with its light and dark value.

Examples:
  mond list --group text
  mond list --theme dark --swatches
  mond list --format markdown > TOKENS.md`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("theme", "", "Only variables declared in this theme's block (light, dark)")
	Cmd.Flags().String("group", "", "Only variables of this group, e.g. text or font-size")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, markdown, names, json")
	Cmd.Flags().Bool("swatches", false, "Show color swatches in table output")
}

func run(cmd *cobra.Command, args []string) error {
	themeFlag, _ := cmd.Flags().GetString("theme")
	group, _ := cmd.Flags().GetString("group")
	format, _ := cmd.Flags().GetString("format")
	swatches, _ := cmd.Flags().GetBool("swatches")

	p, err := project.Load(cmd.Context())
	if err != nil {
		return err
	}

	result, err := generator.New(p.Store, generator.Options{Prefix: p.Prefix}).Collect()
	if err != nil {
		return err
	}

	rows, err := filterRows(render.Rows(p.Prefix, result.Light, result.Dark, p.Store.ScaleNames()...), themeFlag, group)
	if err != nil {
		return err
	}
	return writeRows(cmd.OutOrStdout(), rows, format, swatches)
}

func filterRows(rows []render.Row, theme, group string) ([]render.Row, error) {
	if theme != "" {
		t, err := token.ParseTheme(theme)
		if err != nil {
			return nil, err
		}
		rows = render.ForTheme(rows, t)
	}
	return render.Filter(rows, group), nil
}

func writeRows(w io.Writer, rows []render.Row, format string, swatches bool) error {
	switch format {
	case "table", "":
		return render.Table(w, rows, swatches)
	case "markdown", "md":
		return render.Markdown(w, rows)
	case "names":
		return render.Names(w, rows)
	case "json":
		if rows == nil {
			rows = []render.Row{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	default:
		return fmt.Errorf("unknown format: %s (valid: table, markdown, names, json)", format)
	}
}
