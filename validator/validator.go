/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator reports structural problems in a token store: partial
// variants, unresolvable references, cycles, and CSS name clashes.
package validator

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"bennypowers.dev/mond/resolver"
	"bennypowers.dev/mond/schema"
	"bennypowers.dev/mond/token"
)

// Severity ranks an issue.
type Severity int

const (
	// SeverityError marks an issue that makes generation drop a variable.
	SeverityError Severity = iota

	// SeverityWarning marks a likely mistake that still generates.
	SeverityWarning
)

// String returns "error" or "warning".
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue is one validation finding.
type Issue struct {
	// Severity ranks the issue.
	Severity Severity

	// Path is the token path the issue is about.
	Path string

	// Message describes what's wrong.
	Message string

	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	if i.Path != "" {
		sb.WriteString(i.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)
	if i.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(i.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

var validName = regexp.MustCompile(`^--[a-z0-9-]+$`)

// Validate checks store with the default prefix.
func Validate(store *token.Store) []Issue {
	return ValidateWithPrefix(store, token.DefaultPrefix)
}

// ValidateWithPrefix checks store, deriving CSS names with prefix.
// Issues are sorted by path, errors first.
func ValidateWithPrefix(store *token.Store, prefix string) []Issue {
	if store == nil || store.Semantic == nil {
		return []Issue{{Severity: SeverityError, Message: schema.ErrNoStore.Error()}}
	}

	v := &validation{
		store:    store,
		resolver: resolver.New(store),
		prefix:   prefix,
		seen:     make(map[string]bool),
	}
	leaves := collectLeaves(store)

	v.checkVariants(leaves)
	v.checkCycles()
	v.checkResolution(leaves)
	v.checkNames(leaves)
	v.checkBrandColors()
	v.checkContrast(leaves)

	slices.SortStableFunc(v.issues, func(a, b Issue) int {
		return cmp.Or(
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Severity, b.Severity),
			cmp.Compare(a.Message, b.Message),
		)
	})
	return v.issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	return slices.ContainsFunc(issues, func(i Issue) bool { return i.Severity == SeverityError })
}

// Count returns the number of errors and warnings.
func Count(issues []Issue) (errs, warnings int) {
	for _, i := range issues {
		if i.Severity == SeverityError {
			errs++
		} else {
			warnings++
		}
	}
	return errs, warnings
}

type leafKind int

const (
	leafBrand leafKind = iota
	leafScale
	leafSemantic
)

func (k leafKind) String() string {
	switch k {
	case leafBrand:
		return "brand color"
	case leafScale:
		return "scale"
	default:
		return "semantic"
	}
}

// leaf is one addressable value in the store.
type leaf struct {
	path string
	kind leafKind
	raw  string
	node token.Node
}

func (l leaf) String() string {
	return fmt.Sprintf("%s %s", l.kind, l.path)
}

func collectLeaves(store *token.Store) []leaf {
	var leaves []leaf
	for _, family := range store.BrandColors.Families() {
		for _, shade := range store.BrandColors.Shades(family) {
			leaves = append(leaves, leaf{
				path: token.JoinPath(token.BrandColorNamespace, family, shade),
				kind: leafBrand,
				raw:  store.BrandColors[family][shade],
			})
		}
	}
	for _, scale := range store.Scales {
		for _, key := range scale.Keys() {
			leaves = append(leaves, leaf{
				path: token.JoinPath(scale.Name, key),
				kind: leafScale,
				raw:  scale.Values[key],
			})
		}
	}
	store.Semantic.Walk(nil, func(path []string, node token.Node) {
		leaves = append(leaves, leaf{path: token.JoinPath(path...), kind: leafSemantic, node: node})
	})
	return leaves
}

type validation struct {
	store    *token.Store
	resolver *resolver.Resolver
	prefix   string
	issues   []Issue
	seen     map[string]bool
	cyclic   bool
}

func (v *validation) add(issue Issue) {
	key := issue.Path + "\x00" + issue.Message
	if v.seen[key] {
		return
	}
	v.seen[key] = true
	v.issues = append(v.issues, issue)
}

func (v *validation) checkVariants(leaves []leaf) {
	for _, l := range leaves {
		variant, ok := l.node.(*token.Variant)
		if !ok || variant.Complete() {
			continue
		}
		for _, theme := range token.Themes() {
			if _, ok := variant.Value(theme); !ok {
				v.add(Issue{
					Severity:   SeverityError,
					Path:       l.path,
					Message:    fmt.Sprintf("variant has no %s value", theme),
					Suggestion: "add both light and dark values, or use a plain value",
				})
			}
		}
	}
}

func (v *validation) checkCycles() {
	for _, theme := range token.Themes() {
		cycle := resolver.BuildDependencyGraph(v.store, theme).FindCycle()
		if cycle == nil {
			continue
		}
		v.cyclic = true
		v.add(Issue{
			Severity: SeverityError,
			Path:     cycle[0],
			Message:  "circular reference: " + strings.Join(cycle, " -> "),
		})
	}
}

func (v *validation) checkResolution(leaves []leaf) {
	for _, l := range leaves {
		themes := token.Themes()
		if l.kind != leafSemantic {
			themes = []token.Theme{token.Light}
		}

		for _, theme := range themes {
			var err error
			if l.kind == leafSemantic {
				_, err = v.resolver.Resolve(l.path, theme)
			} else {
				_, err = v.resolver.ResolveValue(l.path, l.raw, theme)
			}
			if err == nil || errors.Is(err, schema.ErrMissingTheme) {
				continue
			}
			if v.cyclic && errors.Is(err, schema.ErrCircularReference) {
				continue
			}

			message := rootCause(err)
			if l.kind == leafSemantic && l.node.Kind() == token.KindVariant {
				message = fmt.Sprintf("%s value: %s", theme, message)
			}
			v.add(Issue{Severity: SeverityError, Path: l.path, Message: message})
		}
	}
}

// rootCause strips the ResolutionError wrapper, whose path and theme the
// issue already carries.
func rootCause(err error) string {
	var resErr *resolver.ResolutionError
	if errors.As(err, &resErr) {
		return resErr.Err.Error()
	}
	return err.Error()
}

func (v *validation) checkNames(leaves []leaf) {
	owners := make(map[string][]leaf)
	for _, l := range leaves {
		name := token.CSSVariableName(v.prefix, l.path)
		owners[name] = append(owners[name], l)

		if !validName.MatchString(name) {
			v.add(Issue{
				Severity:   SeverityWarning,
				Path:       l.path,
				Message:    fmt.Sprintf("CSS name %s contains characters outside [a-z0-9-]", name),
				Suggestion: "use lowercase letters, digits, and hyphens in token keys",
			})
		}
	}

	for name, clashing := range owners {
		if len(clashing) < 2 {
			continue
		}
		for i, l := range clashing {
			var rest []string
			for j, other := range clashing {
				if j != i {
					rest = append(rest, other.String())
				}
			}
			slices.Sort(rest)
			v.add(Issue{
				Severity: SeverityError,
				Path:     l.path,
				Message:  fmt.Sprintf("CSS name %s is also produced by %s", name, strings.Join(rest, ", ")),
			})
		}
	}
}
