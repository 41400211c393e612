/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/mond/render"
	"bennypowers.dev/mond/validator"
)

// Tool names.
const (
	ToolResolveToken   = "resolve_token"
	ToolListVariables  = "list_variables"
	ToolValidateTokens = "validate_tokens"
)

// ResolveInput is the input of resolve_token.
type ResolveInput struct {
	Path  string `json:"path" jsonschema:"dot-separated token path, e.g. text.primary or spacing.4"`
	Theme string `json:"theme,omitempty" jsonschema:"light or dark; both when omitted"`
}

// ThemeValue is a token's value in one theme, or why it has none.
type ThemeValue struct {
	Theme string   `json:"theme"`
	Value string   `json:"value,omitempty"`
	Chain []string `json:"chain,omitempty"`
	Error string   `json:"error,omitempty"`
}

// ResolveOutput is the result of resolve_token.
type ResolveOutput struct {
	Path     string       `json:"path"`
	Variable string       `json:"variable"`
	Values   []ThemeValue `json:"values"`
}

// ListInput is the input of list_variables.
type ListInput struct {
	Group string `json:"group,omitempty" jsonschema:"only variables of this group, e.g. text or spacing"`
	Theme string `json:"theme,omitempty" jsonschema:"light or dark; only variables declared in that block"`
}

// ListOutput is the result of list_variables.
type ListOutput struct {
	Count     int          `json:"count"`
	Variables []render.Row `json:"variables"`
}

// ValidateInput is the input of validate_tokens. It takes no arguments.
type ValidateInput struct{}

// ValidateOutput is the result of validate_tokens.
type ValidateOutput struct {
	Errors   int           `json:"errors"`
	Warnings int           `json:"warnings"`
	Issues   []IssueOutput `json:"issues"`
}

// IssueOutput is one validation issue.
type IssueOutput struct {
	Severity   string `json:"severity"`
	Path       string `json:"path,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

func newIssueOutput(i validator.Issue) IssueOutput {
	return IssueOutput{
		Severity:   i.Severity.String(),
		Path:       i.Path,
		Message:    i.Message,
		Suggestion: i.Suggestion,
	}
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        ToolResolveToken,
		Description: "Resolve a design token path to its CSS value per theme, following aliases",
	}, s.handleResolveToken)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        ToolListVariables,
		Description: "List the generated --" + s.prefix + "-* CSS variables with light and dark values",
	}, s.handleListVariables)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        ToolValidateTokens,
		Description: "Report partial variants, broken references, cycles, and CSS name clashes",
	}, s.handleValidateTokens)
}
