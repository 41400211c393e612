/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config loads the project configuration for mond.
package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/mond/formatter"
	"bennypowers.dev/mond/formatter/css"
	"bennypowers.dev/mond/token"
)

// Config is the contents of .config/mond.{yaml,yml,json}.
type Config struct {
	// Prefix is the CSS variable prefix.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Indent is written before every declaration.
	Indent string `yaml:"indent" json:"indent"`

	// Tokens lists token files layered over the built-in Mond tokens, in order.
	Tokens []FileSpec `yaml:"tokens" json:"tokens"`

	// Output is the stylesheet path. Empty means standard output.
	Output string `yaml:"output" json:"output"`

	// Format is the output format, "css" or "json".
	Format string `yaml:"format" json:"format"`
}

// FileSpec names a token file.
// It can be written as a plain path or as an object with a mount group.
type FileSpec struct {
	// Path is the file path, relative to the project root. Globs are allowed.
	Path string `yaml:"path" json:"path"`

	// Group mounts the file's semantic tree under this dotted path.
	Group string `yaml:"group" json:"group"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Prefix: token.DefaultPrefix,
		Indent: css.DefaultIndent,
		Format: string(formatter.FormatCSS),
	}
}

// WithDefaults returns a copy of c with empty fields filled from Default.
func (c *Config) WithDefaults() *Config {
	merged := *c
	defaults := Default()
	if merged.Prefix == "" {
		merged.Prefix = defaults.Prefix
	}
	if merged.Indent == "" {
		merged.Indent = defaults.Indent
	}
	if merged.Format == "" {
		merged.Format = defaults.Format
	}
	return &merged
}

// Validate checks field values that can be checked without the filesystem.
func (c *Config) Validate() error {
	if c.Format != "" {
		if _, err := formatter.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	for i, spec := range c.Tokens {
		if spec.Path == "" {
			return fmt.Errorf("config: tokens[%d] has no path", i)
		}
	}
	return nil
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Tokens))
	for _, spec := range c.Tokens {
		paths = append(paths, spec.Path)
	}
	return paths
}
