/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token store types: themes, token paths,
// and the tagged node tree that semantic tokens are defined in.
package token

import (
	"fmt"
	"strings"

	"bennypowers.dev/mond/schema"
)

// DefaultPrefix is the CSS variable prefix used when none is configured.
const DefaultPrefix = "mond"

// PathSeparator separates the segments of a token path.
const PathSeparator = "."

// Theme is a color scheme that theme-variant tokens carry a value for.
type Theme string

const (
	// Light is the default theme, emitted under :root as well.
	Light Theme = "light"

	// Dark is the dark theme.
	Dark Theme = "dark"
)

// Themes returns every theme in emission order.
func Themes() []Theme {
	return []Theme{Light, Dark}
}

// String returns the theme name.
func (t Theme) String() string {
	return string(t)
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// ParseTheme returns the theme for a name, ignoring case.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: light, dark)", schema.ErrUnknownTheme, s)
	}
}

// SplitPath splits a dot-separated token path into its segments.
// An empty path yields no segments.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, PathSeparator)
}

// JoinPath joins path segments into a dot-separated token path.
func JoinPath(segments ...string) string {
	return strings.Join(segments, PathSeparator)
}

// CSSVariableName returns the CSS custom property name for a token path.
// e.g., "text.primary" with prefix "mond" -> "--mond-text-primary"
func CSSVariableName(prefix, path string) string {
	name := strings.ReplaceAll(path, PathSeparator, "-")
	if name == "" {
		return ""
	}
	if prefix != "" {
		prefix = strings.ReplaceAll(prefix, PathSeparator, "-")
		return "--" + prefix + "-" + name
	}
	return "--" + name
}
