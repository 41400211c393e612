/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for mond.
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/mond/cmd/project"
	"bennypowers.dev/mond/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the token store",
	Long: `Check the merged token store for partial variants, broken references,
reference cycles, and clashing CSS variable names.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output issues")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	p, err := project.Load(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !quiet {
		for _, file := range p.Files {
			fmt.Fprintf(out, "Layered %s\n", file)
		}
	}

	issues := validator.ValidateWithPrefix(p.Store, p.Prefix)
	return report(out, issues, strict, quiet)
}

func report(w io.Writer, issues []validator.Issue, strict, quiet bool) error {
	for _, issue := range issues {
		fmt.Fprintf(w, "%-7s %s\n", issue.Severity, issue.Error())
	}

	errs, warnings := validator.Count(issues)
	if errs > 0 || (strict && warnings > 0) {
		return fmt.Errorf("validation failed: %d errors, %d warnings", errs, warnings)
	}

	if !quiet {
		if warnings > 0 {
			fmt.Fprintf(w, "Tokens valid with %d warnings.\n", warnings)
		} else {
			fmt.Fprintln(w, "All tokens valid.")
		}
	}
	return nil
}
