/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generator compiles a token store into themed CSS custom properties.
package generator

import (
	"fmt"
	"strings"
	"time"

	"bennypowers.dev/mond/formatter"
	"bennypowers.dev/mond/formatter/css"
	"bennypowers.dev/mond/formatter/flatjson"
	"bennypowers.dev/mond/resolver"
	"bennypowers.dev/mond/schema"
	"bennypowers.dev/mond/token"
)

// ToolName is stamped into the generated header.
const ToolName = "mond"

// Options configures generation.
type Options struct {
	// Prefix is the CSS variable prefix. Defaults to token.DefaultPrefix.
	Prefix string

	// Indent is written before every declaration. Defaults to css.DefaultIndent.
	Indent string

	// Format selects the output document. Defaults to formatter.FormatCSS.
	Format formatter.Format

	// Now supplies the header timestamp. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Prefix: token.DefaultPrefix,
		Indent: css.DefaultIndent,
		Format: formatter.FormatCSS,
		Now:    time.Now,
	}
}

// Result is the outcome of one generation run.
type Result struct {
	// Output is the rendered document.
	Output string

	// Light holds the declarations of the root/light block.
	Light *css.Collection

	// Dark holds the declarations of the dark block.
	Dark *css.Collection

	// Report lists the tokens that were left out.
	Report *Report

	// GeneratedAt is the timestamp written into the header.
	GeneratedAt time.Time
}

// Generator compiles a store. It keeps no state between runs.
type Generator struct {
	store    *token.Store
	resolver *resolver.Resolver
	opts     Options
}

// New creates a generator for store. Zero option fields take their defaults.
func New(store *token.Store, opts Options) *Generator {
	defaults := DefaultOptions()
	if opts.Prefix == "" {
		opts.Prefix = defaults.Prefix
	}
	if opts.Indent == "" {
		opts.Indent = defaults.Indent
	}
	if opts.Format == "" {
		opts.Format = defaults.Format
	}
	if opts.Now == nil {
		opts.Now = defaults.Now
	}
	return &Generator{
		store:    store,
		resolver: resolver.New(store),
		opts:     opts,
	}
}

// Generate compiles store with default options and returns the stylesheet.
func Generate(store *token.Store) (string, error) {
	result, err := New(store, DefaultOptions()).Generate()
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// Collect builds fresh light and dark collections.
//
// Brand colors are flattened first, then the semantic tree is traversed once
// per theme, then the remaining scale categories are flattened. Per-token
// failures are logged and reported, never returned.
func (g *Generator) Collect() (*Result, error) {
	if g.store == nil || g.store.Semantic == nil {
		return nil, schema.ErrNoStore
	}

	result := &Result{
		Light:  css.NewCollection(),
		Dark:   css.NewCollection(),
		Report: &Report{},
	}

	static := &Flattener{
		Resolver: g.resolver,
		Prefix:   g.opts.Prefix,
		Sink:     result.Light,
		Report:   result.Report,
	}
	static.FlattenBrandColors(g.store.BrandColors)

	for _, theme := range token.Themes() {
		sink := result.Light
		if theme == token.Dark {
			sink = result.Dark
		}
		pass := &Pass{
			Resolver: g.resolver,
			Prefix:   g.opts.Prefix,
			Theme:    theme,
			Sink:     sink,
			Report:   result.Report,
		}
		pass.Traverse(g.store.Semantic, nil)
	}

	for _, scale := range g.store.Scales {
		static.FlattenScale(scale)
	}

	return result, nil
}

// Generate collects both themes and renders the configured output document.
func (g *Generator) Generate() (*Result, error) {
	result, err := g.Collect()
	if err != nil {
		return nil, err
	}
	result.GeneratedAt = g.opts.Now()

	switch g.opts.Format {
	case formatter.FormatCSS:
		result.Output = g.stylesheet(result)
	case formatter.FormatJSON:
		out, err := flatjson.Format(result.Light, result.Dark)
		if err != nil {
			return nil, fmt.Errorf("error formatting json: %w", err)
		}
		result.Output = string(out) + "\n"
	default:
		return nil, fmt.Errorf("unsupported format: %s", g.opts.Format)
	}

	return result, nil
}

func (g *Generator) stylesheet(result *Result) string {
	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(
		formatter.GeneratedNotice(ToolName, result.GeneratedAt),
		formatter.CStyleComments,
	))
	sb.WriteString(css.Stylesheet(result.Light, result.Dark, g.opts.Indent))
	return sb.String()
}
