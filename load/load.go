/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load assembles the token store for a project: the built-in Mond
// tokens with any configured token files layered on top.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"bennypowers.dev/mond/config"
	"bennypowers.dev/mond/fs"
	"bennypowers.dev/mond/internal/logger"
	"bennypowers.dev/mond/parser"
	"bennypowers.dev/mond/token"
	"bennypowers.dev/mond/tokens"
)

// ErrNoFetcher is returned for a URL token file when no Fetcher is configured.
var ErrNoFetcher = errors.New("remote token files require a fetcher")

// Options configures how tokens are loaded.
type Options struct {
	// Root is the project directory holding .config/mond.*. Defaults to ".".
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Files replaces the token files listed in the config when non-empty.
	Files []config.FileSpec

	// NoDefaults starts from an empty store instead of the built-in tokens.
	NoDefaults bool

	// Fetcher enables http(s) token files. Nil means URLs fail with ErrNoFetcher.
	Fetcher Fetcher

	// FetchTimeout bounds each fetch. Defaults to DefaultTimeout when zero.
	FetchTimeout time.Duration
}

// Result is a loaded project.
type Result struct {
	// Store is the merged token store.
	Store *token.Store

	// Config is the project config with defaults applied.
	Config *config.Config

	// Files are the token files that were layered, in order.
	Files []string
}

// Load reads the project config, expands its token files, and merges them
// over the built-in tokens in the order given.
func Load(ctx context.Context, opts Options) (*Result, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	cfg = cfg.WithDefaults()
	if len(opts.Files) > 0 {
		cfg.Tokens = opts.Files
	}

	files, err := cfg.ExpandFiles(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("failed to expand token files: %w", err)
	}

	store := token.NewStore()
	if !opts.NoDefaults {
		store = tokens.Mond()
	}

	fetchTimeout := opts.FetchTimeout
	if fetchTimeout == 0 {
		fetchTimeout = DefaultTimeout
	}

	result := &Result{Config: cfg}
	for _, file := range files {
		content, err := readContent(ctx, filesystem, opts.Fetcher, fetchTimeout, file.Path)
		if err != nil {
			return nil, err
		}

		layer, err := parser.Parse(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file.Path, err)
		}
		layer, err = parser.Mount(layer, file.Group)
		if err != nil {
			return nil, fmt.Errorf("failed to mount %s: %w", file.Path, err)
		}

		logger.Debug("layering %s", file.Path)
		store = parser.Merge(store, layer)
		result.Files = append(result.Files, file.Path)
	}

	result.Store = store
	return result, nil
}

// readContent reads a local token file or fetches a remote one.
func readContent(ctx context.Context, filesystem fs.FileSystem, fetcher Fetcher, timeout time.Duration, path string) ([]byte, error) {
	if !config.IsURL(path) {
		content, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return content, nil
	}

	if fetcher == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoFetcher, path)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	content, err := fetcher.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	return content, nil
}
