/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	mondfs "bennypowers.dev/mond/fs"
	"bennypowers.dev/mond/specifier"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "mond"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// TokenFile is a token file resolved from a FileSpec.
type TokenFile struct {
	// Path is the absolute or root-joined file path.
	Path string

	// Group is the mount group of the FileSpec that matched it.
	Group string
}

// Load searches for .config/mond.{yaml,yml,json} under rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem mondfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", configPath, err)
			}
		}

		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem mondfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg.WithDefaults()
}

// ExpandFiles expands glob patterns in Tokens. Matches of one pattern are
// sorted; the order of the specs themselves is preserved.
func (c *Config) ExpandFiles(filesystem mondfs.FileSystem, rootDir string) ([]TokenFile, error) {
	var result []TokenFile

	for _, spec := range c.Tokens {
		expanded, err := expandFilePath(filesystem, rootDir, spec.Path)
		if err != nil {
			return nil, err
		}
		for _, path := range expanded {
			result = append(result, TokenFile{Path: path, Group: spec.Group})
		}
	}

	return result, nil
}

// IsURL reports whether a token file path is an http(s) URL.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "http://")
}

// expandFilePath expands a single file path which may contain globs.
// URLs are passed through unchanged. Package specifiers resolve to the
// installed file, or to its CDN URL when the package is not installed.
func expandFilePath(filesystem mondfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if IsURL(pattern) {
		return []string{pattern}, nil
	}

	if specifier.IsPackage(pattern) {
		path, err := specifier.Resolve(filesystem, rootDir, pattern)
		if errors.Is(err, specifier.ErrNotInstalled) {
			if url, ok := specifier.Parse(pattern).CDNURL(); ok {
				return []string{url}, nil
			}
		}
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the non-glob prefix of pattern and matches the rest with
// doublestar, so patterns like tokens/**/*.yaml work.
func expandGlob(filesystem mondfs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, filepath.ToSlash(relPath)); matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(matches)
	return matches, nil
}
