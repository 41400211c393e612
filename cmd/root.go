/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for mond.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/mond/cmd/generate"
	"bennypowers.dev/mond/cmd/list"
	"bennypowers.dev/mond/cmd/mcp"
	"bennypowers.dev/mond/cmd/resolve"
	"bennypowers.dev/mond/cmd/validate"
	"bennypowers.dev/mond/cmd/version"
	"bennypowers.dev/mond/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "mond",
	Short: "Compile Mond design tokens into CSS custom properties",
	Long: `mond resolves the Mond design system's tokens and generates a stylesheet of
--mond-* CSS custom properties with a light block on :root and a dark block on
[data-theme="dark"].

Project token files listed in .config/mond.yaml are layered over the built-in
tokens in order.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("root", ".", "Project directory holding .config/mond.yaml")
	flags.String("prefix", "", "CSS variable prefix (default from config, else mond)")
	flags.StringSlice("tokens", nil, "Token files layered over the built-in tokens, replacing the config list")
	flags.Bool("no-defaults", false, "Start from an empty store instead of the built-in tokens")
	flags.BoolP("verbose", "v", false, "Log debug output to stderr")

	for _, name := range []string{"root", "prefix", "tokens", "no-defaults", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	viper.SetEnvPrefix("MOND")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
