/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp serves token resolution over the Model Context Protocol.
package mcp

import (
	"context"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/mond/generator"
	"bennypowers.dev/mond/internal/logger"
	"bennypowers.dev/mond/internal/version"
	"bennypowers.dev/mond/resolver"
	"bennypowers.dev/mond/token"
)

// Server exposes one token store to MCP clients.
type Server struct {
	mcpServer *mcp.Server
	store     *token.Store
	resolver  *resolver.Resolver
	prefix    string
	generated *generator.Result
}

// NewServer compiles store once and registers the mond tools.
func NewServer(store *token.Store, prefix string) (*Server, error) {
	if prefix == "" {
		prefix = token.DefaultPrefix
	}

	generated, err := generator.New(store, generator.Options{Prefix: prefix}).Collect()
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:     store,
		resolver:  resolver.New(store),
		prefix:    prefix,
		generated: generated,
	}

	s.mcpServer = mcp.NewServer(&mcp.Implementation{
		Name:    "mond",
		Version: version.Get(),
	}, nil)
	s.registerTools()

	return s, nil
}

// Run serves on stdin/stdout until ctx is done or the client disconnects.
// Logging is silenced first, since stdio belongs to the protocol.
func (s *Server) Run(ctx context.Context) error {
	logger.SetOutput(io.Discard)
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
