/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css renders collections of CSS custom properties.
package css

import (
	"maps"
	"slices"
	"strings"
)

// DefaultIndent is the indentation of declarations inside a rule block.
const DefaultIndent = "  "

// Selectors for the themed rule blocks.
const (
	// SelectorLight matches the document root and explicit light theme.
	SelectorLight = `:root, [data-theme="light"]`

	// SelectorDark matches the explicit dark theme.
	SelectorDark = `[data-theme="dark"]`
)

// Declaration is a single custom property.
type Declaration struct {
	Name  string
	Value string
}

// Collection maps CSS variable names to resolved values for one theme.
// Insertion order is irrelevant; every read is sorted by name.
type Collection struct {
	values map[string]string
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{values: make(map[string]string)}
}

// Set records a declaration, replacing any previous value for name.
func (c *Collection) Set(name, value string) {
	c.values[name] = value
}

// Get returns the value for name.
func (c *Collection) Get(name string) (string, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Has reports whether name is declared.
func (c *Collection) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Len returns the number of declarations.
func (c *Collection) Len() int {
	return len(c.values)
}

// Names returns the declared names in lexicographic order.
func (c *Collection) Names() []string {
	return slices.Sorted(maps.Keys(c.values))
}

// Entries returns the declarations sorted by name.
func (c *Collection) Entries() []Declaration {
	names := c.Names()
	entries := make([]Declaration, len(names))
	for i, name := range names {
		entries[i] = Declaration{Name: name, Value: c.values[name]}
	}
	return entries
}

// Map returns a copy of the declarations as a plain map.
func (c *Collection) Map() map[string]string {
	return maps.Clone(c.values)
}

// Format renders the collection as one "{indent}{name}: {value};" line per
// declaration, sorted by name and joined by newlines.
func Format(c *Collection, indent string) string {
	entries := c.Entries()
	lines := make([]string, len(entries))
	for i, d := range entries {
		lines[i] = indent + d.Name + ": " + d.Value + ";"
	}
	return strings.Join(lines, "\n")
}

// Rule wraps a formatted body in a rule block for selector.
// An empty body yields an empty block.
func Rule(selector, body string) string {
	if body == "" {
		return selector + " {\n}\n"
	}
	return selector + " {\n" + body + "\n}\n"
}

// Stylesheet renders the light collection under SelectorLight and the dark
// collection under SelectorDark, separated by a blank line.
func Stylesheet(light, dark *Collection, indent string) string {
	return Rule(SelectorLight, Format(light, indent)) +
		"\n" +
		Rule(SelectorDark, Format(dark, indent))
}
