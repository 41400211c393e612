/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/mond/config"
	"bennypowers.dev/mond/load"
	"bennypowers.dev/mond/resolver"
	"bennypowers.dev/mond/testutil"
	"bennypowers.dev/mond/token"
)

type mockFetcher struct {
	content []byte
	err     error
	urls    []string
}

func (m *mockFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	m.urls = append(m.urls, url)
	return m.content, m.err
}

func TestLoad_DefaultsOnly(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "bare", "/project")

	result, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs})
	require.NoError(t, err)

	assert.Equal(t, "mond", result.Config.Prefix)
	assert.Empty(t, result.Files)

	value, err := resolver.Resolve(result.Store, "spacing.4", token.Light)
	require.NoError(t, err)
	assert.Equal(t, "1rem", value)
}

func TestLoad_ConfiguredLayers(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "project", "/project")

	result, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs})
	require.NoError(t, err)

	assert.Equal(t, "acme", result.Config.Prefix)
	assert.Equal(t, []string{
		"/project/tokens/brand.yaml",
		"/project/tokens/marketing.json",
	}, result.Files)

	r := resolver.New(result.Store)

	tests := []struct {
		path  string
		theme token.Theme
		want  string
	}{
		{"text.primary", token.Light, "#111111"},
		{"text.primary", token.Dark, "#eeeeee"},
		{"marketing.hero", token.Light, "#0050ff"},
		{"brand.interactive.hover", token.Dark, "#60a5fa"},
		{"radii.full", token.Light, "9999px"},
	}
	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.theme.String(), func(t *testing.T) {
			got, err := r.Resolve(tt.path, tt.theme)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_FilesOverrideConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "bare", "/project")

	result, err := load.Load(t.Context(), load.Options{
		Root:       "/project",
		FS:         mfs,
		Files:      []config.FileSpec{{Path: "tokens.yaml"}},
		NoDefaults: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"only"}, result.Store.Semantic.Keys())
	assert.Empty(t, result.Store.Scales)
}

func TestLoad_FileNotFound(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "bare", "/project")

	_, err := load.Load(t.Context(), load.Options{
		Root:  "/project",
		FS:    mfs,
		Files: []config.FileSpec{{Path: "missing.yaml"}},
	})
	assert.Error(t, err)
}

func TestLoad_RemoteFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "bare", "/project")
	fetcher := &mockFetcher{content: []byte(`{"semantic": {"remote": "1px"}}`)}

	result, err := load.Load(t.Context(), load.Options{
		Root:    "/project",
		FS:      mfs,
		Files:   []config.FileSpec{{Path: "https://example.com/tokens.json"}},
		Fetcher: fetcher,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/tokens.json"}, fetcher.urls)
	value, err := resolver.Resolve(result.Store, "remote", token.Dark)
	require.NoError(t, err)
	assert.Equal(t, "1px", value)
}

func TestLoad_RemoteFileWithoutFetcher(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "bare", "/project")

	_, err := load.Load(t.Context(), load.Options{
		Root:  "/project",
		FS:    mfs,
		Files: []config.FileSpec{{Path: "https://example.com/tokens.json"}},
	})
	assert.ErrorIs(t, err, load.ErrNoFetcher)
}

func TestLoad_RemoteFetchError(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "bare", "/project")
	fetchErr := errors.New("boom")

	_, err := load.Load(t.Context(), load.Options{
		Root:    "/project",
		FS:      mfs,
		Files:   []config.FileSpec{{Path: "https://example.com/tokens.json"}},
		Fetcher: &mockFetcher{err: fetchErr},
	})
	assert.ErrorIs(t, err, fetchErr)
}
