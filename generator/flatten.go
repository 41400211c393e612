/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generator

import (
	"bennypowers.dev/mond/formatter/css"
	"bennypowers.dev/mond/internal/logger"
	"bennypowers.dev/mond/resolver"
	"bennypowers.dev/mond/token"
)

// Flattener writes theme-independent tokens into the light collection only.
// Those values are declared once at the document root and inherited by the
// dark block.
type Flattener struct {
	// Resolver resolves entries that alias other tokens.
	Resolver *resolver.Resolver

	// Prefix is the CSS variable prefix.
	Prefix string

	// Sink is the light collection.
	Sink *css.Collection

	// Report records skipped entries. May be nil.
	Report *Report
}

// FlattenScale emits one variable per entry of a scale category,
// e.g. spacing.4 -> --mond-spacing-4.
func (f *Flattener) FlattenScale(scale token.Scale) {
	for _, key := range scale.Keys() {
		f.emit(token.JoinPath(scale.Name, key), scale.Values[key])
	}
}

// FlattenBrandColors emits one variable per family and shade of the raw
// palette, e.g. color.blue.500 -> --mond-color-blue-500.
func (f *Flattener) FlattenBrandColors(colors token.BrandColors) {
	for _, family := range colors.Families() {
		for _, shade := range colors.Shades(family) {
			f.emit(token.JoinPath(token.BrandColorNamespace, family, shade), colors[family][shade])
		}
	}
}

func (f *Flattener) emit(path, raw string) {
	value, err := f.Resolver.ResolveValue(path, raw, token.Light)
	if err != nil {
		logger.Warn("skipping %s: %v", path, err)
		if f.Report != nil {
			f.Report.skip(path, token.Light, err, false)
		}
		return
	}
	f.Sink.Set(token.CSSVariableName(f.Prefix, path), value)
}
