/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"maps"
	"slices"

	"bennypowers.dev/mond/schema"
	"bennypowers.dev/mond/token"
)

// Merge returns a new store with overlay applied on top of base.
// Leaves in overlay replace leaves at the same path; groups are merged
// recursively. Neither input is modified.
func Merge(base, overlay *token.Store) *token.Store {
	result := cloneStore(base)
	if overlay == nil {
		return result
	}

	if overlay.Description != "" {
		result.Description = overlay.Description
	}
	for family, shades := range overlay.BrandColors {
		if result.BrandColors[family] == nil {
			result.BrandColors[family] = make(map[string]string, len(shades))
		}
		maps.Copy(result.BrandColors[family], shades)
	}
	for _, scale := range overlay.Scales {
		merged := token.Scale{Name: scale.Name, Values: make(map[string]string)}
		if existing, ok := result.Scale(scale.Name); ok {
			maps.Copy(merged.Values, existing.Values)
		}
		maps.Copy(merged.Values, scale.Values)
		result.SetScale(merged)
	}
	if overlay.Semantic != nil {
		mergeGroup(result.Semantic, overlay.Semantic)
	}

	return result
}

func mergeGroup(dst, src *token.Group) {
	if src.Description != "" {
		dst.Description = src.Description
	}
	for _, key := range src.Keys() {
		srcChild := src.Children[key]
		if srcGroup, ok := srcChild.(*token.Group); ok {
			if dstGroup, ok := dst.Children[key].(*token.Group); ok {
				mergeGroup(dstGroup, srcGroup)
				continue
			}
		}
		dst.Set(key, cloneNode(srcChild))
	}
}

// Mount returns a copy of store whose semantic tree is nested under the
// dot-separated group path. Brand colors and scales are unchanged, and
// references inside the tree are not rewritten.
func Mount(store *token.Store, group string) (*token.Store, error) {
	result := cloneStore(store)
	if group == "" {
		return result, nil
	}

	segments := token.SplitPath(group)
	if slices.Contains(segments, "") {
		return nil, fmt.Errorf("%w: invalid group path %q", schema.ErrInvalidToken, group)
	}

	mounted := result.Semantic
	mounted.Name = segments[len(segments)-1]
	for i := len(segments) - 1; i > 0; i-- {
		mounted = token.NewGroup(segments[i-1]).Set(segments[i], mounted)
	}
	result.Semantic = token.NewGroup("").Set(segments[0], mounted)
	return result, nil
}

func cloneStore(store *token.Store) *token.Store {
	result := token.NewStore()
	if store == nil {
		return result
	}

	result.Description = store.Description
	for family, shades := range store.BrandColors {
		result.BrandColors[family] = maps.Clone(shades)
	}
	for _, scale := range store.Scales {
		result.Scales = append(result.Scales, token.Scale{Name: scale.Name, Values: maps.Clone(scale.Values)})
	}
	if store.Semantic != nil {
		result.Semantic = cloneNode(store.Semantic).(*token.Group)
	}
	return result
}

func cloneNode(node token.Node) token.Node {
	switch n := node.(type) {
	case *token.Group:
		group := token.NewGroup(n.Name)
		group.Description = n.Description
		for key, child := range n.Children {
			group.Set(key, cloneNode(child))
		}
		return group
	case *token.Variant:
		return &token.Variant{Values: maps.Clone(n.Values)}
	case *token.Literal:
		return token.NewLiteral(n.Value)
	default:
		return node
	}
}
