/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier locates token files published in npm or jsr packages.
//
// A token file entry such as "npm:@acme/tokens/mond.yaml" is looked up in
// node_modules, walking up from the project root. When the package is not
// installed the file can be fetched from a CDN instead.
package specifier

import (
	"regexp"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a local file path.
	KindLocal Kind = iota
	// KindNPM is an npm package specifier.
	KindNPM
	// KindJSR is a jsr package specifier.
	KindJSR
)

// Specifier is a parsed token file entry.
type Specifier struct {
	Kind Kind

	// Package is the package name, e.g. "@scope/pkg". Empty for local paths.
	Package string

	// File is the path inside the package, or the local path.
	File string

	// Raw is the entry as written.
	Raw string
}

var packagePattern = regexp.MustCompile(`^(npm|jsr):(@[^/]+/[^/]+|[^/@][^/]*)(/.*)?$`)

// Parse parses a token file entry. Anything that is not a well-formed npm: or
// jsr: specifier is a local path.
func Parse(spec string) Specifier {
	m := packagePattern.FindStringSubmatch(spec)
	if m == nil {
		return Specifier{Kind: KindLocal, File: spec, Raw: spec}
	}

	kind := KindNPM
	if m[1] == "jsr" {
		kind = KindJSR
	}
	return Specifier{
		Kind:    kind,
		Package: m[2],
		File:    strings.TrimPrefix(m[3], "/"),
		Raw:     spec,
	}
}

// IsPackage reports whether spec is an npm: or jsr: specifier.
func IsPackage(spec string) bool {
	return Parse(spec).Kind != KindLocal
}

// CDNURL returns the unpkg.com URL of a package specifier. It returns false
// for local paths and for specifiers that name no file.
func (s Specifier) CDNURL() (string, bool) {
	if s.Kind == KindLocal || s.File == "" {
		return "", false
	}
	pkg := s.Package
	if s.Kind == KindJSR {
		pkg = "@jsr/" + jsrCompatName(pkg)
	}
	return "https://unpkg.com/" + pkg + "/" + s.File, true
}

// jsrCompatName is the npm compatibility name of a jsr package:
// "@scope/pkg" becomes "scope__pkg".
func jsrCompatName(pkg string) string {
	if scoped, ok := strings.CutPrefix(pkg, "@"); ok {
		return strings.Replace(scoped, "/", "__", 1)
	}
	return pkg
}
