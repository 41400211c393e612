/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for mond.
package generate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/mond/cmd/project"
	"bennypowers.dev/mond/formatter"
	"bennypowers.dev/mond/fs"
	"bennypowers.dev/mond/generator"
	"bennypowers.dev/mond/internal/logger"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the --mond-* stylesheet",
	Long: `Resolve every token for the light and dark themes and write the stylesheet.

Tokens that cannot be resolved are left out. Broken themed tokens are reported
as warnings; broken plain tokens are skipped quietly.

Examples:
  # Print the stylesheet
  mond generate

  # Write it to a file
  mond generate -o dist/mond.css

  # Layer project tokens over the built-in ones
  mond generate --tokens tokens/brand.yaml -o dist/mond.css

  # Both blocks as JSON
  mond generate --format json`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default from config, else stdout)")
	Cmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(formatter.ValidFormats(), ", "))
	Cmd.Flags().String("indent", "", "Indentation before each declaration (default two spaces)")
}

func run(cmd *cobra.Command, args []string) error {
	p, err := project.Load(cmd.Context())
	if err != nil {
		return err
	}
	cfg := p.Config

	output, _ := cmd.Flags().GetString("output")
	if output == "" && cfg.Output != "" {
		output = cfg.Output
		if !filepath.IsAbs(output) {
			output = filepath.Join(viper.GetString("root"), output)
		}
	}

	formatFlag, _ := cmd.Flags().GetString("format")
	if formatFlag == "" {
		formatFlag = cfg.Format
	}
	format, err := formatter.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	indent := cfg.Indent
	if cmd.Flags().Changed("indent") {
		indent, _ = cmd.Flags().GetString("indent")
	}

	result, err := generator.New(p.Store, generator.Options{
		Prefix: p.Prefix,
		Indent: indent,
		Format: format,
	}).Generate()
	if err != nil {
		return fmt.Errorf("error generating stylesheet: %w", err)
	}

	logSummary(result)

	if output != "" {
		if err := fs.NewOSFileSystem().WriteFile(output, []byte(result.Output), 0644); err != nil {
			return fmt.Errorf("error writing to %s: %w", output, err)
		}
		logger.Info("wrote %d light and %d dark declarations to %s", result.Light.Len(), result.Dark.Len(), output)
		return nil
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), result.Output)
	return err
}

func logSummary(result *generator.Result) {
	skipped := result.Report.SkippedPaths()
	if len(skipped) == 0 {
		return
	}
	logger.Info("skipped %d tokens: %s", len(skipped), strings.Join(skipped, ", "))
}
