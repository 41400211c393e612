/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"maps"
	"slices"
)

// Kind tags the shape of a Node.
type Kind int

const (
	// KindGroup is an intermediate node holding named children.
	KindGroup Kind = iota

	// KindVariant is a leaf carrying one value per theme.
	KindVariant

	// KindLiteral is a leaf carrying one theme-independent value.
	KindLiteral
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindVariant:
		return "variant"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Node is a node in the semantic token tree.
// The concrete type is one of *Group, *Variant, or *Literal, decided when the
// store is built; consumers dispatch on Kind.
type Node interface {
	Kind() Kind
}

// Group represents a group of tokens (can be nested).
type Group struct {
	// Name is the group's identifier.
	Name string

	// Description is optional documentation for the group.
	Description string

	// Children contains the nested nodes keyed by path segment.
	Children map[string]Node
}

// NewGroup creates a new empty token group.
func NewGroup(name string) *Group {
	return &Group{
		Name:     name,
		Children: make(map[string]Node),
	}
}

// Kind implements Node.
func (g *Group) Kind() Kind { return KindGroup }

// Set adds or replaces a child node and returns the group for chaining.
func (g *Group) Set(key string, node Node) *Group {
	if g.Children == nil {
		g.Children = make(map[string]Node)
	}
	g.Children[key] = node
	return g
}

// Keys returns the child keys in lexicographic order.
func (g *Group) Keys() []string {
	return slices.Sorted(maps.Keys(g.Children))
}

// Child returns the child node for key, or nil.
func (g *Group) Child(key string) Node {
	if g == nil {
		return nil
	}
	return g.Children[key]
}

// Variant is a theme-variant leaf: one raw value per theme.
// A variant built from malformed input may lack one of the themes.
type Variant struct {
	Values map[Theme]string
}

// NewVariant creates a variant with both a light and a dark value.
func NewVariant(light, dark string) *Variant {
	return &Variant{Values: map[Theme]string{Light: light, Dark: dark}}
}

// Kind implements Node.
func (v *Variant) Kind() Kind { return KindVariant }

// Value returns the raw value for a theme.
func (v *Variant) Value(theme Theme) (string, bool) {
	val, ok := v.Values[theme]
	return val, ok
}

// Complete reports whether the variant has a value for every theme.
func (v *Variant) Complete() bool {
	for _, theme := range Themes() {
		if _, ok := v.Values[theme]; !ok {
			return false
		}
	}
	return true
}

// Literal is a plain leaf: a single theme-independent raw value.
type Literal struct {
	Value string
}

// NewLiteral creates a literal leaf.
func NewLiteral(value string) *Literal {
	return &Literal{Value: value}
}

// Kind implements Node.
func (l *Literal) Kind() Kind { return KindLiteral }

// WalkFunc is called for every leaf reached by Walk.
type WalkFunc func(path []string, node Node)

// Walk visits every leaf under g in lexicographic key order.
// The path passed to fn is owned by fn.
func (g *Group) Walk(prefix []string, fn WalkFunc) {
	for _, key := range g.Keys() {
		path := append(slices.Clone(prefix), key)
		child := g.Children[key]
		if nested, ok := child.(*Group); ok {
			nested.Walk(path, fn)
			continue
		}
		fn(path, child)
	}
}
