/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for mond.
package resolve

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/mond/cmd/project"
	"bennypowers.dev/mond/resolver"
	"bennypowers.dev/mond/token"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Resolve a single token for one or both themes",
	Long: `Resolve a dot-separated token path to its final CSS value, following aliases.

Examples:
  mond resolve text.primary
  mond resolve brand.interactive.background --theme dark
  mond resolve spacing.4 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("theme", "t", "all", "Theme to resolve: light, dark, or all")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

// Resolution is the outcome of resolving one path for one theme.
type Resolution struct {
	Theme string   `json:"theme"`
	Value string   `json:"value,omitempty"`
	Chain []string `json:"chain,omitempty"`
	Error string   `json:"error,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	themeFlag, _ := cmd.Flags().GetString("theme")
	format, _ := cmd.Flags().GetString("format")

	themes, err := parseThemes(themeFlag)
	if err != nil {
		return err
	}

	p, err := project.Load(cmd.Context())
	if err != nil {
		return err
	}

	path := args[0]
	resolutions := resolveAll(resolver.New(p.Store), path, themes)

	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(resolutions); err != nil {
			return err
		}
	case "text":
		writeText(cmd.OutOrStdout(), token.CSSVariableName(p.Prefix, path), resolutions)
	default:
		return fmt.Errorf("unknown format: %s (valid: text, json)", format)
	}

	for _, r := range resolutions {
		if r.Error == "" {
			return nil
		}
	}
	return fmt.Errorf("cannot resolve %s", path)
}

func parseThemes(s string) ([]token.Theme, error) {
	if s == "" || strings.EqualFold(s, "all") {
		return token.Themes(), nil
	}
	theme, err := token.ParseTheme(s)
	if err != nil {
		return nil, err
	}
	return []token.Theme{theme}, nil
}

func resolveAll(r *resolver.Resolver, path string, themes []token.Theme) []Resolution {
	resolutions := make([]Resolution, 0, len(themes))
	for _, theme := range themes {
		value, chain, err := r.Trace(path, theme)
		res := Resolution{Theme: theme.String(), Value: value, Chain: chain}
		if err != nil {
			res.Value = ""
			res.Error = err.Error()
		}
		resolutions = append(resolutions, res)
	}
	return resolutions
}

func writeText(w io.Writer, name string, resolutions []Resolution) {
	fmt.Fprintln(w, name)
	for _, r := range resolutions {
		if r.Error != "" {
			fmt.Fprintf(w, "  %-5s  error: %s\n", r.Theme, r.Error)
			continue
		}
		fmt.Fprintf(w, "  %-5s  %s\n", r.Theme, r.Value)
		if len(r.Chain) > 1 {
			fmt.Fprintf(w, "         via %s\n", strings.Join(r.Chain, " -> "))
		}
	}
}
