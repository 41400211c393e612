/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/mond/resolver"
	"bennypowers.dev/mond/schema"
	"bennypowers.dev/mond/token"
)

func newTestStore() *token.Store {
	store := token.NewStore()
	store.BrandColors["blue"] = map[string]string{"500": "#3b82f6", "600": "#2563eb"}
	store.BrandColors["slate"] = map[string]string{"50": "#f8fafc", "900": "#0f172a"}
	store.SetScale(token.Scale{Name: "spacing", Values: map[string]string{"4": "1rem"}})
	store.SetScale(token.Scale{Name: "shadows", Values: map[string]string{
		"sm": "0 1px 2px {shadow.color}",
	}})

	store.Semantic.
		Set("text", token.NewGroup("text").
			Set("primary", token.NewVariant("{color.slate.900}", "{color.slate.50}")).
			Set("muted", token.NewLiteral("#64748b")).
			Set("link", token.NewLiteral("{brand.interactive.background}"))).
		Set("brand", token.NewGroup("brand").
			Set("interactive", token.NewGroup("interactive").
				Set("background", token.NewVariant("{color.blue.600}", "{color.blue.500}")))).
		Set("shadow", token.NewGroup("shadow").
			Set("color", token.NewVariant("rgba(15, 23, 42, 0.08)", "rgba(0, 0, 0, 0.4)")).
			Set("card", token.NewLiteral("0 4px 8px {shadow.color}, 0 0 0 1px {border.default}"))).
		Set("border", token.NewGroup("border").
			Set("default", token.NewVariant("#e2e8f0", "#334155")).
			Set("broken", token.NewVariant("{color.blue.950}", "#000000")).
			Set("partial", &token.Variant{Values: map[token.Theme]string{token.Light: "#ffffff"}}).
			Set("empty", token.NewLiteral("   "))).
		Set("loop", token.NewGroup("loop").
			Set("a", token.NewLiteral("{loop.b}")).
			Set("b", token.NewLiteral("{loop.c}")).
			Set("c", token.NewLiteral("{loop.a}")).
			Set("self", token.NewVariant("{loop.self}", "#000")))

	return store
}

func TestResolve_Literal(t *testing.T) {
	r := resolver.New(newTestStore())

	for _, theme := range token.Themes() {
		value, err := r.Resolve("text.muted", theme)
		require.NoError(t, err)
		assert.Equal(t, "#64748b", value)
	}
}

func TestResolve_VariantPerTheme(t *testing.T) {
	r := resolver.New(newTestStore())

	light, err := r.Resolve("text.primary", token.Light)
	require.NoError(t, err)
	assert.Equal(t, "#0f172a", light)

	dark, err := r.Resolve("text.primary", token.Dark)
	require.NoError(t, err)
	assert.Equal(t, "#f8fafc", dark)
}

func TestResolve_AliasChainKeepsTheme(t *testing.T) {
	r := resolver.New(newTestStore())

	value, chain, err := r.Trace("text.link", token.Dark)
	require.NoError(t, err)
	assert.Equal(t, "#3b82f6", value)
	assert.Equal(t, []string{"text.link", "brand.interactive.background", "color.blue.500"}, chain)
}

func TestResolve_ScaleAndBrandPaths(t *testing.T) {
	r := resolver.New(newTestStore())

	value, err := r.Resolve("spacing.4", token.Dark)
	require.NoError(t, err)
	assert.Equal(t, "1rem", value)

	value, err = r.Resolve("color.blue.500", token.Light)
	require.NoError(t, err)
	assert.Equal(t, "#3b82f6", value)
}

func TestResolve_EmbeddedReferences(t *testing.T) {
	r := resolver.New(newTestStore())

	light, err := r.Resolve("shadow.card", token.Light)
	require.NoError(t, err)
	assert.Equal(t, "0 4px 8px rgba(15, 23, 42, 0.08), 0 0 0 1px #e2e8f0", light)

	dark, err := r.Resolve("shadow.card", token.Dark)
	require.NoError(t, err)
	assert.Equal(t, "0 4px 8px rgba(0, 0, 0, 0.4), 0 0 0 1px #334155", dark)
}

func TestResolveValue(t *testing.T) {
	r := resolver.New(newTestStore())

	value, err := r.ResolveValue("shadows.sm", "0 1px 2px {shadow.color}", token.Light)
	require.NoError(t, err)
	assert.Equal(t, "0 1px 2px rgba(15, 23, 42, 0.08)", value)

	_, err = r.ResolveValue("spacing.0.5", "", token.Light)
	assert.ErrorIs(t, err, schema.ErrEmptyValue)

	var resErr *resolver.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "spacing.0.5", resErr.Path)

	_, err = r.ResolveValue("shadows.md", "0 4px 6px {shadow.missing}", token.Light)
	assert.ErrorIs(t, err, schema.ErrUnresolvedReference)

	_, err = r.ResolveValue("text.muted", "{text.muted}", token.Light)
	assert.ErrorIs(t, err, schema.ErrCircularReference)
}

func TestResolve_Failures(t *testing.T) {
	r := resolver.New(newTestStore())

	tests := []struct {
		name    string
		path    string
		theme   token.Theme
		wantErr error
	}{
		{"missing path", "text.secondary", token.Light, schema.ErrUnresolvedReference},
		{"broken alias", "border.broken", token.Light, schema.ErrUnresolvedReference},
		{"missing theme", "border.partial", token.Dark, schema.ErrMissingTheme},
		{"group is not terminal", "brand.interactive", token.Light, schema.ErrNotTerminal},
		{"brand family is not terminal", "color.blue", token.Light, schema.ErrNotTerminal},
		{"empty literal", "border.empty", token.Light, schema.ErrEmptyValue},
		{"cycle", "loop.a", token.Light, schema.ErrCircularReference},
		{"self reference", "loop.self", token.Light, schema.ErrCircularReference},
		{"unknown theme", "text.primary", token.Theme("sepia"), schema.ErrUnknownTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := r.Resolve(tt.path, tt.theme)
			require.Error(t, err)
			assert.Empty(t, value)
			assert.ErrorIs(t, err, tt.wantErr)

			var resErr *resolver.ResolutionError
			require.True(t, errors.As(err, &resErr))
			assert.Equal(t, tt.path, resErr.Path)
			assert.Equal(t, tt.theme, resErr.Theme)
		})
	}
}

func TestResolve_PartialVariantPresentTheme(t *testing.T) {
	value, err := resolver.Resolve(newTestStore(), "border.partial", token.Light)
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", value)
}

func TestResolve_BrokenAliasOnlyAffectsOneTheme(t *testing.T) {
	r := resolver.New(newTestStore())

	value, err := r.Resolve("border.broken", token.Dark)
	require.NoError(t, err)
	assert.Equal(t, "#000000", value)
}

func TestResolve_CycleChain(t *testing.T) {
	_, err := resolver.Resolve(newTestStore(), "loop.a", token.Dark)

	var resErr *resolver.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, []string{"loop.a", "loop.b", "loop.c", "loop.a"}, resErr.Chain)
	assert.Contains(t, err.Error(), "loop.a -> loop.b -> loop.c -> loop.a")
}

func TestResolve_DepthLimit(t *testing.T) {
	store := token.NewStore()
	chain := token.NewGroup("chain")
	for i := 0; i <= resolver.MaxDepth; i++ {
		chain.Set(string(rune('a'+i)), token.NewLiteral("{chain."+string(rune('a'+i+1))+"}"))
	}
	chain.Set(string(rune('a'+resolver.MaxDepth+1)), token.NewLiteral("#000"))
	store.Semantic.Set("chain", chain)

	_, err := resolver.Resolve(store, "chain.a", token.Light)
	assert.ErrorIs(t, err, schema.ErrCircularReference)

	value, err := resolver.Resolve(store, "chain.c", token.Light)
	require.NoError(t, err)
	assert.Equal(t, "#000", value)
}

func TestResolve_NeverReturnsReferenceSyntax(t *testing.T) {
	store := newTestStore()
	r := resolver.New(store)

	store.Semantic.Walk(nil, func(path []string, _ token.Node) {
		for _, theme := range token.Themes() {
			value, err := r.Resolve(token.JoinPath(path...), theme)
			if err != nil {
				continue
			}
			assert.NotContains(t, value, "{", "path %v", path)
			assert.NotContains(t, value, "}", "path %v", path)
			assert.NotEmpty(t, value)
		}
	})
}

func TestResolve_Concurrent(t *testing.T) {
	r := resolver.New(newTestStore())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				value, err := r.Resolve("text.link", token.Light)
				assert.NoError(t, err)
				assert.Equal(t, "#2563eb", value)
			}
		}()
	}
	wg.Wait()
}
