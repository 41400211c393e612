/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver resolves token paths to concrete CSS values for a theme.
//
// The same Resolver backs stylesheet generation and single-token lookups at
// runtime, so a path resolves identically in both.
package resolver

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/mond/schema"
	"bennypowers.dev/mond/token"
)

// MaxDepth bounds the length of an alias chain.
const MaxDepth = 16

// ResolutionError reports why a token path could not be resolved.
type ResolutionError struct {
	// Path is the path that was requested.
	Path string

	// Theme is the theme it was requested for.
	Theme token.Theme

	// Chain is the alias chain followed before the failure, starting at Path.
	Chain []string

	// Err is the underlying schema sentinel, possibly wrapped.
	Err error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "resolve %s (%s): %v", e.Path, e.Theme, e.Err)
	if len(e.Chain) > 1 {
		sb.WriteString(" [")
		sb.WriteString(strings.Join(e.Chain, " -> "))
		sb.WriteString("]")
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Resolver resolves token paths against a store.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	store *token.Store
}

// New creates a resolver over store.
func New(store *token.Store) *Resolver {
	return &Resolver{store: store}
}

// Store returns the store this resolver reads from.
func (r *Resolver) Store() *token.Store {
	return r.store
}

// Resolve is a convenience for New(store).Resolve(path, theme).
func Resolve(store *token.Store, path string, theme token.Theme) (string, error) {
	return New(store).Resolve(path, theme)
}

// Resolve returns the CSS value of the token at path for theme.
// Failures are returned as *ResolutionError.
func (r *Resolver) Resolve(path string, theme token.Theme) (string, error) {
	value, _, err := r.Trace(path, theme)
	return value, err
}

// Trace resolves path like Resolve and also returns the alias chain that was
// followed, starting with path itself.
func (r *Resolver) Trace(path string, theme token.Theme) (string, []string, error) {
	if !theme.Valid() {
		return "", nil, &ResolutionError{
			Path:  path,
			Theme: theme,
			Err:   fmt.Errorf("%w: %q", schema.ErrUnknownTheme, theme),
		}
	}

	value, chain, err := r.resolvePath(path, theme, nil)
	if err != nil {
		return "", chain, &ResolutionError{Path: path, Theme: theme, Chain: chain, Err: err}
	}
	return value, chain, nil
}

// ResolveValue resolves the raw value of the token at path without looking
// the path up, for entries whose keys are not valid path segments (such as a
// scale key "0.5"). References inside raw are followed as usual.
func (r *Resolver) ResolveValue(path, raw string, theme token.Theme) (string, error) {
	var chain []string
	if path != "" {
		chain = []string{path}
	}
	value, chain, err := r.resolveRaw(raw, theme, chain)
	if err != nil {
		return "", &ResolutionError{Path: path, Theme: theme, Chain: chain, Err: err}
	}
	return value, nil
}

func (r *Resolver) resolvePath(path string, theme token.Theme, chain []string) (string, []string, error) {
	if slices.Contains(chain, path) {
		cycle := append(slices.Clone(chain), path)
		return "", cycle, fmt.Errorf("%w: %s", schema.ErrCircularReference, strings.Join(cycle, " -> "))
	}
	if len(chain) >= MaxDepth {
		return "", chain, fmt.Errorf("%w: alias chain deeper than %d", schema.ErrCircularReference, MaxDepth)
	}
	chain = append(slices.Clone(chain), path)

	if r.store == nil {
		return "", chain, fmt.Errorf("%w: %s", schema.ErrUnresolvedReference, path)
	}
	node, err := r.store.Lookup(path)
	if err != nil {
		return "", chain, err
	}

	var raw string
	switch n := node.(type) {
	case *token.Variant:
		value, ok := n.Value(theme)
		if !ok {
			return "", chain, fmt.Errorf("%w: %s has no %s value", schema.ErrMissingTheme, path, theme)
		}
		raw = value
	case *token.Literal:
		raw = n.Value
	default:
		return "", chain, fmt.Errorf("%w: %s is a %s", schema.ErrNotTerminal, path, node.Kind())
	}

	return r.resolveRaw(raw, theme, chain)
}

func (r *Resolver) resolveRaw(raw string, theme token.Theme, chain []string) (string, []string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", chain, schema.ErrEmptyValue
	}

	// Whole-value alias: follow it with the same theme.
	if ref, ok := token.ParseRef(raw); ok {
		return r.resolvePath(ref, theme, chain)
	}

	// Composite value with embedded aliases, e.g. a box-shadow color.
	if token.IsRef(raw) {
		failedChain := chain
		resolved, err := token.ReplaceRefs(raw, func(ref string) (string, error) {
			value, refChain, err := r.resolvePath(ref, theme, chain)
			if err != nil {
				failedChain = refChain
			}
			return value, err
		})
		if err != nil {
			return "", failedChain, err
		}
		raw = resolved
	}

	if token.HasReferenceSyntax(raw) {
		return "", chain, fmt.Errorf("%w: %q", schema.ErrNotTerminal, raw)
	}
	return raw, chain, nil
}
