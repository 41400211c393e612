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
	"strconv"
	"strings"

	"bennypowers.dev/mond/schema"
	"bennypowers.dev/mond/token"
)

func buildStore(raw map[string]any) (*token.Store, error) {
	store := token.NewStore()

	for _, key := range slices.Sorted(maps.Keys(raw)) {
		value := raw[key]

		switch key {
		case DescriptionKey:
			desc, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be a string", schema.ErrInvalidToken, DescriptionKey)
			}
			store.Description = desc

		case token.SemanticNamespace:
			m, ok := value.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be an object", schema.ErrInvalidToken, key)
			}
			group, err := buildGroup("", m, nil)
			if err != nil {
				return nil, err
			}
			store.Semantic = group

		case token.BrandColorNamespace:
			colors, err := buildBrandColors(value)
			if err != nil {
				return nil, err
			}
			store.BrandColors = colors

		default:
			if strings.HasPrefix(key, "$") {
				continue
			}
			values, err := flatStrings(key, value)
			if err != nil {
				return nil, err
			}
			store.SetScale(token.Scale{Name: key, Values: values})
		}
	}

	return store, nil
}

func buildBrandColors(value any) (token.BrandColors, error) {
	families, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object", schema.ErrInvalidToken, token.BrandColorNamespace)
	}

	colors := make(token.BrandColors, len(families))
	for family, shades := range families {
		if strings.HasPrefix(family, "$") {
			continue
		}
		values, err := flatStrings(token.JoinPath(token.BrandColorNamespace, family), shades)
		if err != nil {
			return nil, err
		}
		colors[family] = values
	}
	return colors, nil
}

// flatStrings reads a map whose values are all scalars.
func flatStrings(path string, value any) (map[string]string, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an object", schema.ErrInvalidToken, path)
	}

	values := make(map[string]string, len(m))
	for key, v := range m {
		if strings.HasPrefix(key, "$") {
			continue
		}
		s, err := scalar(token.JoinPath(path, key), v)
		if err != nil {
			return nil, err
		}
		values[key] = s
	}
	return values, nil
}

// buildGroup classifies every child of a semantic mapping as a group, a
// theme variant, or a literal.
func buildGroup(name string, m map[string]any, path []string) (*token.Group, error) {
	group := token.NewGroup(name)
	if desc, ok := m[DescriptionKey].(string); ok {
		group.Description = desc
	}

	for _, key := range slices.Sorted(maps.Keys(m)) {
		if strings.HasPrefix(key, "$") {
			continue
		}
		childPath := append(slices.Clone(path), key)

		switch v := m[key].(type) {
		case map[string]any:
			if variant, ok := asVariant(v); ok {
				group.Set(key, variant)
				continue
			}
			child, err := buildGroup(key, v, childPath)
			if err != nil {
				return nil, err
			}
			group.Set(key, child)

		default:
			s, err := scalar(token.JoinPath(childPath...), v)
			if err != nil {
				return nil, err
			}
			group.Set(key, token.NewLiteral(s))
		}
	}

	return group, nil
}

// asVariant reports whether m is a theme variant: its keys are a non-empty
// subset of the theme names and every value is a scalar. A mapping that mixes
// theme keys with any other key is a group.
func asVariant(m map[string]any) (*token.Variant, bool) {
	variant := &token.Variant{Values: make(map[token.Theme]string, len(token.Themes()))}

	for key, v := range m {
		if strings.HasPrefix(key, "$") {
			continue
		}
		theme := token.Theme(key)
		if !theme.Valid() {
			return nil, false
		}
		s, err := scalar(key, v)
		if err != nil {
			return nil, false
		}
		variant.Values[theme] = s
	}

	if len(variant.Values) == 0 {
		return nil, false
	}
	return variant, true
}

// scalar converts a decoded leaf to its string form.
func scalar(path string, v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %s has unsupported value %v (%T)", schema.ErrInvalidToken, path, v, v)
	}
}
