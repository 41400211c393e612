/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// curlyBracePattern matches {token.path} references.
var curlyBracePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// ParseRef extracts the token path from a value that is exactly one reference.
// Returns the path and true if valid, empty string and false otherwise.
func ParseRef(value string) (string, bool) {
	value = strings.TrimSpace(value)
	matches := curlyBracePattern.FindStringSubmatch(value)
	if len(matches) != 2 || matches[0] != value {
		return "", false
	}
	return strings.TrimSpace(matches[1]), true
}

// IsRef returns true if the value contains a curly brace reference.
func IsRef(value string) bool {
	return curlyBracePattern.MatchString(value)
}

// ExtractRefs extracts all curly brace references from a string.
func ExtractRefs(value string) []string {
	matches := curlyBracePattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) >= 2 {
			refs = append(refs, strings.TrimSpace(m[1]))
		}
	}
	return refs
}

// ReplaceRefs substitutes every embedded reference in value with the result
// of fn. The first error returned by fn stops substitution and is returned.
func ReplaceRefs(value string, fn func(path string) (string, error)) (string, error) {
	var firstErr error
	out := curlyBracePattern.ReplaceAllStringFunc(value, func(match string) string {
		if firstErr != nil {
			return match
		}
		path := strings.TrimSpace(match[1 : len(match)-1])
		resolved, err := fn(path)
		if err != nil {
			firstErr = err
			return match
		}
		return resolved
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// HasReferenceSyntax reports whether value still contains brace characters,
// which never appear in a resolved CSS value.
func HasReferenceSyntax(value string) bool {
	return strings.ContainsAny(value, "{}")
}
