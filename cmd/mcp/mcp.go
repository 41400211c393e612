/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command for mond.
package mcp

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/mond/cmd/project"
	"bennypowers.dev/mond/mcp"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve token tools over the Model Context Protocol",
	Long: `Start an MCP server on stdin/stdout exposing the resolve_token,
list_variables, and validate_tokens tools for the loaded token store.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	p, err := project.Load(cmd.Context())
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(p.Store, p.Prefix)
	if err != nil {
		return err
	}
	return server.Run(cmd.Context())
}
