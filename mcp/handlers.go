/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/mond/render"
	"bennypowers.dev/mond/resolver"
	"bennypowers.dev/mond/token"
	"bennypowers.dev/mond/validator"
)

// themesFor returns the requested theme, or every theme when name is empty.
func themesFor(name string) ([]token.Theme, error) {
	if strings.TrimSpace(name) == "" {
		return token.Themes(), nil
	}
	theme, err := token.ParseTheme(name)
	if err != nil {
		return nil, err
	}
	return []token.Theme{theme}, nil
}

func (s *Server) handleResolveToken(_ context.Context, _ *mcp.CallToolRequest, in ResolveInput) (*mcp.CallToolResult, ResolveOutput, error) {
	path := strings.TrimSpace(in.Path)
	if path == "" {
		return nil, ResolveOutput{}, errors.New("path is required")
	}
	themes, err := themesFor(in.Theme)
	if err != nil {
		return nil, ResolveOutput{}, err
	}

	out := ResolveOutput{
		Path:     path,
		Variable: token.CSSVariableName(s.prefix, path),
	}
	failed := 0
	for _, theme := range themes {
		value, chain, err := s.resolver.Trace(path, theme)
		tv := ThemeValue{Theme: theme.String(), Value: value, Chain: chain}
		if err != nil {
			failed++
			var resErr *resolver.ResolutionError
			if errors.As(err, &resErr) {
				tv.Error = resErr.Err.Error()
			} else {
				tv.Error = err.Error()
			}
			tv.Value = ""
		}
		out.Values = append(out.Values, tv)
	}

	if failed == len(themes) {
		return nil, ResolveOutput{}, fmt.Errorf("cannot resolve %s: %s", path, out.Values[0].Error)
	}
	return nil, out, nil
}

func (s *Server) handleListVariables(_ context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, ListOutput, error) {
	rows := render.Rows(s.prefix, s.generated.Light, s.generated.Dark, s.store.ScaleNames()...)
	if strings.TrimSpace(in.Theme) != "" {
		theme, err := token.ParseTheme(in.Theme)
		if err != nil {
			return nil, ListOutput{}, err
		}
		rows = render.ForTheme(rows, theme)
	}

	rows = render.Filter(rows, strings.TrimSpace(in.Group))
	if rows == nil {
		rows = []render.Row{}
	}
	return nil, ListOutput{Count: len(rows), Variables: rows}, nil
}

func (s *Server) handleValidateTokens(_ context.Context, _ *mcp.CallToolRequest, _ ValidateInput) (*mcp.CallToolResult, ValidateOutput, error) {
	issues := validator.ValidateWithPrefix(s.store, s.prefix)
	errs, warnings := validator.Count(issues)

	out := ValidateOutput{Errors: errs, Warnings: warnings, Issues: make([]IssueOutput, 0, len(issues))}
	for _, issue := range issues {
		out.Issues = append(out.Issues, newIssueOutput(issue))
	}
	return nil, out, nil
}
