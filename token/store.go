/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"maps"
	"slices"

	"bennypowers.dev/mond/schema"
)

// BrandColorNamespace is the first path segment of raw brand palette tokens,
// e.g. "color.blue.500".
const BrandColorNamespace = "color"

// SemanticNamespace is the key holding the semantic tree in token files.
const SemanticNamespace = "semantic"

// Scale is a flat, theme-independent token category such as spacing or radii.
type Scale struct {
	// Name is the category name and first path segment (e.g., "spacing").
	Name string

	// Values maps scale keys to CSS values (e.g., "4" -> "1rem").
	Values map[string]string
}

// Keys returns the scale keys in lexicographic order.
func (s Scale) Keys() []string {
	return slices.Sorted(maps.Keys(s.Values))
}

// BrandColors maps a color family to its shades (e.g., "blue" -> "500" -> "#3b82f6").
type BrandColors map[string]map[string]string

// Families returns the color families in lexicographic order.
func (b BrandColors) Families() []string {
	return slices.Sorted(maps.Keys(b))
}

// Shades returns the shades of a family in lexicographic order.
func (b BrandColors) Shades(family string) []string {
	return slices.Sorted(maps.Keys(b[family]))
}

// Store is the immutable input to generation: scale categories, the brand
// palette, and the semantic tree.
type Store struct {
	// Description is optional documentation for the token set.
	Description string

	// BrandColors is the raw brand palette.
	BrandColors BrandColors

	// Scales are the theme-independent categories, in declaration order.
	Scales []Scale

	// Semantic is the root of the semantic tree.
	Semantic *Group
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		BrandColors: make(BrandColors),
		Semantic:    NewGroup(""),
	}
}

// Scale returns the scale category with the given name.
func (s *Store) Scale(name string) (Scale, bool) {
	for _, scale := range s.Scales {
		if scale.Name == name {
			return scale, true
		}
	}
	return Scale{}, false
}

// SetScale adds a scale category or replaces the one with the same name.
func (s *Store) SetScale(scale Scale) {
	for i, existing := range s.Scales {
		if existing.Name == scale.Name {
			s.Scales[i] = scale
			return
		}
	}
	s.Scales = append(s.Scales, scale)
}

// ScaleNames returns the scale category names in declaration order.
func (s *Store) ScaleNames() []string {
	names := make([]string, 0, len(s.Scales))
	for _, scale := range s.Scales {
		names = append(names, scale.Name)
	}
	return names
}

// Lookup finds the node addressed by a dot-separated token path.
//
// Brand palette paths ("color.<family>.<shade>") and scale paths
// ("<scale>.<key>") are checked first, then the semantic tree. A path naming
// a family, a scale, or a semantic group returns a *Group so callers can
// tell it apart from a leaf.
func (s *Store) Lookup(path string) (Node, error) {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: empty path", schema.ErrUnresolvedReference)
	}

	if node, ok := s.lookupBrand(segments); ok {
		return node, nil
	}
	if node, ok := s.lookupScale(segments); ok {
		return node, nil
	}

	var current Node = s.Semantic
	for _, segment := range segments {
		group, ok := current.(*Group)
		if !ok || group == nil {
			return nil, fmt.Errorf("%w: %s", schema.ErrUnresolvedReference, path)
		}
		child := group.Child(segment)
		if child == nil {
			return nil, fmt.Errorf("%w: %s", schema.ErrUnresolvedReference, path)
		}
		current = child
	}
	return current, nil
}

func (s *Store) lookupBrand(segments []string) (Node, bool) {
	if segments[0] != BrandColorNamespace || len(s.BrandColors) == 0 {
		return nil, false
	}
	switch len(segments) {
	case 1:
		return NewGroup(BrandColorNamespace), true
	case 2:
		if _, ok := s.BrandColors[segments[1]]; ok {
			return NewGroup(segments[1]), true
		}
	case 3:
		if value, ok := s.BrandColors[segments[1]][segments[2]]; ok {
			return NewLiteral(value), true
		}
	}
	return nil, false
}

func (s *Store) lookupScale(segments []string) (Node, bool) {
	scale, ok := s.Scale(segments[0])
	if !ok {
		return nil, false
	}
	switch len(segments) {
	case 1:
		return NewGroup(scale.Name), true
	case 2:
		if value, ok := scale.Values[segments[1]]; ok {
			return NewLiteral(value), true
		}
	}
	return nil, false
}
