/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generator_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/mond/formatter"
	"bennypowers.dev/mond/generator"
	"bennypowers.dev/mond/internal/logger"
	"bennypowers.dev/mond/schema"
	"bennypowers.dev/mond/testutil"
	"bennypowers.dev/mond/token"
	"bennypowers.dev/mond/tokens"
)

var fixedClock = func() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

var namePattern = regexp.MustCompile(`^--mond-[a-z0-9-]+$`)

func TestMain(m *testing.M) {
	logger.SetOutput(&bytes.Buffer{})
	os.Exit(m.Run())
}

func smallStore() *token.Store {
	store := token.NewStore()
	store.BrandColors["blue"] = map[string]string{"500": "#3b82f6"}
	store.SetScale(token.Scale{Name: "spacing", Values: map[string]string{"4": "1rem"}})
	store.Semantic.
		Set("text", token.NewGroup("text").
			Set("primary", token.NewVariant("#000000", "#ffffff"))).
		Set("border", token.NewGroup("border").
			Set("width", token.NewLiteral("1px"))).
		Set("brand", token.NewGroup("brand").
			Set("link", token.NewVariant("{color.blue.500}", "#93c5fd")))
	return store
}

func generate(t *testing.T, store *token.Store, opts generator.Options) *generator.Result {
	t.Helper()
	if opts.Now == nil {
		opts.Now = fixedClock
	}
	result, err := generator.New(store, opts).Generate()
	require.NoError(t, err)
	return result
}

func TestGenerate_Golden(t *testing.T) {
	result := generate(t, smallStore(), generator.Options{})

	expected := testutil.Golden(t, "golden/small.css", []byte(result.Output))
	assert.Equal(t, expected, result.Output)
}

func TestGenerate_EndToEnd(t *testing.T) {
	store := token.NewStore()
	store.SetScale(token.Scale{Name: "spacing", Values: map[string]string{"4": "1rem"}})
	store.Semantic.Set("text", token.NewGroup("text").
		Set("primary", token.NewVariant("#0f172a", "#f1f5f9")))

	result := generate(t, store, generator.Options{})

	light := strings.SplitN(result.Output, `[data-theme="dark"]`, 2)[0]
	dark := strings.SplitN(result.Output, `[data-theme="dark"]`, 2)[1]

	assert.Contains(t, light, "  --mond-text-primary: #0f172a;")
	assert.Contains(t, light, "  --mond-spacing-4: 1rem;")
	assert.Contains(t, dark, "  --mond-text-primary: #f1f5f9;")
	assert.NotContains(t, dark, "--mond-spacing-4")
}

func TestGenerate_Header(t *testing.T) {
	result := generate(t, smallStore(), generator.Options{})

	assert.True(t, strings.HasPrefix(result.Output, "/*\n * Auto-generated by mond. Do not edit by hand.\n"))
	assert.Contains(t, result.Output, " * Generated: 2026-01-02T03:04:05Z\n */\n\n")
	assert.Equal(t, fixedClock(), result.GeneratedAt)
}

func TestGenerate_MondStore(t *testing.T) {
	result := generate(t, tokens.Mond(), generator.Options{})

	t.Run("light has more declarations than dark", func(t *testing.T) {
		assert.Greater(t, result.Light.Len(), result.Dark.Len())
	})

	t.Run("names follow the prefix pattern", func(t *testing.T) {
		for _, name := range append(result.Light.Names(), result.Dark.Names()...) {
			assert.Regexp(t, namePattern, name)
		}
	})

	t.Run("brand colors and scales are light only", func(t *testing.T) {
		assert.True(t, result.Light.Has("--mond-color-blue-500"))
		assert.False(t, result.Dark.Has("--mond-color-blue-500"))
		assert.True(t, result.Light.Has("--mond-spacing-4"))
		assert.False(t, result.Dark.Has("--mond-spacing-4"))
	})

	t.Run("every variant has both themes", func(t *testing.T) {
		tokens.Mond().Semantic.Walk(nil, func(path []string, node token.Node) {
			if node.Kind() != token.KindVariant {
				return
			}
			name := token.CSSVariableName(token.DefaultPrefix, token.JoinPath(path...))
			assert.True(t, result.Light.Has(name), name)
			assert.True(t, result.Dark.Has(name), name)
		})
	})

	t.Run("nothing skipped", func(t *testing.T) {
		assert.Empty(t, result.Report.Skipped)
	})
}

func TestGenerate_BlocksAreSorted(t *testing.T) {
	result := generate(t, tokens.Mond(), generator.Options{})

	declaration := regexp.MustCompile(`^  (--[a-z0-9-]+): .*;$`)
	var blocks [][]string
	var current []string
	for line := range strings.SplitSeq(result.Output, "\n") {
		switch {
		case strings.HasSuffix(line, "{"):
			current = nil
		case line == "}":
			blocks = append(blocks, current)
		default:
			if m := declaration.FindStringSubmatch(line); m != nil {
				current = append(current, m[1])
			}
		}
	}

	require.Len(t, blocks, 2)
	for _, block := range blocks {
		assert.True(t, slices.IsSorted(block))
	}
	assert.Len(t, blocks[0], result.Light.Len())
	assert.Len(t, blocks[1], result.Dark.Len())
}

func TestGenerate_Idempotent(t *testing.T) {
	first := generate(t, tokens.Mond(), generator.Options{})
	second := generate(t, tokens.Mond(), generator.Options{})
	assert.Equal(t, first.Output, second.Output)

	later := generate(t, tokens.Mond(), generator.Options{
		Now: func() time.Time { return fixedClock().Add(time.Hour) },
	})
	stripHeader := func(s string) string {
		_, body, _ := strings.Cut(s, " */\n")
		return body
	}
	assert.NotEqual(t, first.Output, later.Output)
	assert.Equal(t, stripHeader(first.Output), stripHeader(later.Output))
}

func TestGenerate_BrokenReferenceIsOmitted(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(&bytes.Buffer{}) })

	store := smallStore()
	store.Semantic.Child("text").(*token.Group).
		Set("ghost", token.NewVariant("{color.blue.950}", "#111111"))

	result := generate(t, store, generator.Options{})

	assert.False(t, result.Light.Has("--mond-text-ghost"))
	assert.True(t, result.Dark.Has("--mond-text-ghost"))
	assert.True(t, result.Light.Has("--mond-text-primary"))
	assert.Contains(t, buf.String(), "warning: skipping text.ghost for light theme")

	require.Len(t, result.Report.Warnings(), 1)
	skip := result.Report.Warnings()[0]
	assert.Equal(t, "text.ghost", skip.Path)
	assert.Equal(t, token.Light, skip.Theme)
	assert.True(t, errors.Is(skip.Err, schema.ErrUnresolvedReference))
}

func TestGenerate_PlainLeafFailureIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(&bytes.Buffer{}) })

	store := smallStore()
	store.Semantic.Child("border").(*token.Group).
		Set("ghost", token.NewLiteral("{border.nowhere}"))

	result := generate(t, store, generator.Options{})

	assert.False(t, result.Light.Has("--mond-border-ghost"))
	assert.False(t, result.Dark.Has("--mond-border-ghost"))
	assert.Empty(t, buf.String())
	assert.Empty(t, result.Report.Warnings())
	assert.Equal(t, []string{"border.ghost"}, result.Report.SkippedPaths())
}

func TestGenerate_PlainLeafInBothThemes(t *testing.T) {
	result := generate(t, smallStore(), generator.Options{})

	light, ok := result.Light.Get("--mond-border-width")
	require.True(t, ok)
	dark, ok := result.Dark.Get("--mond-border-width")
	require.True(t, ok)
	assert.Equal(t, "1px", light)
	assert.Equal(t, light, dark)
}

func TestGenerate_CustomPrefixAndIndent(t *testing.T) {
	result := generate(t, smallStore(), generator.Options{Prefix: "acme", Indent: "\t"})

	assert.Contains(t, result.Output, "\t--acme-text-primary: #000000;\n")
	assert.NotContains(t, result.Output, "--mond-")
}

func TestGenerate_JSON(t *testing.T) {
	result := generate(t, smallStore(), generator.Options{Format: formatter.FormatJSON})

	assert.True(t, strings.HasSuffix(result.Output, "}\n"))

	var decoded map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(result.Output), &decoded))
	assert.Equal(t, "#3b82f6", decoded["light"]["--mond-brand-link"])
	assert.Equal(t, "#93c5fd", decoded["dark"]["--mond-brand-link"])
	assert.NotContains(t, decoded["dark"], "--mond-spacing-4")
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	_, err := generator.New(smallStore(), generator.Options{Format: "scss"}).Generate()
	assert.Error(t, err)
}

func TestGenerate_NoStore(t *testing.T) {
	_, err := generator.New(nil, generator.Options{}).Generate()
	assert.ErrorIs(t, err, schema.ErrNoStore)

	_, err = generator.Generate(&token.Store{})
	assert.ErrorIs(t, err, schema.ErrNoStore)
}

func TestGenerate_PackageLevel(t *testing.T) {
	out, err := generator.Generate(smallStore())
	require.NoError(t, err)
	assert.Contains(t, out, "--mond-text-primary: #000000;")
}

func TestCollect_FreshCollectionsPerRun(t *testing.T) {
	g := generator.New(smallStore(), generator.Options{})

	first, err := g.Collect()
	require.NoError(t, err)
	second, err := g.Collect()
	require.NoError(t, err)

	assert.NotSame(t, first.Light, second.Light)
	assert.Equal(t, first.Light.Map(), second.Light.Map())
	assert.Equal(t, first.Dark.Map(), second.Dark.Map())
}
