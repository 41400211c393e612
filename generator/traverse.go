/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generator

import (
	"slices"

	"bennypowers.dev/mond/formatter/css"
	"bennypowers.dev/mond/internal/logger"
	"bennypowers.dev/mond/resolver"
	"bennypowers.dev/mond/token"
)

// Pass writes one theme's view of the semantic tree into a collection.
type Pass struct {
	// Resolver resolves each leaf.
	Resolver *resolver.Resolver

	// Prefix is the CSS variable prefix.
	Prefix string

	// Theme is the theme being emitted. Only this theme's values are written.
	Theme token.Theme

	// Sink receives the declarations.
	Sink *css.Collection

	// Report records skipped leaves. May be nil.
	Report *Report
}

// Traverse walks node in key order, resolving every leaf for the pass theme.
//
// Variant leaves that fail to resolve are logged and skipped. Plain leaves
// are resolved the same way in every pass; their failures are skipped
// without a warning. Traversal never stops early.
func (p *Pass) Traverse(node *token.Group, prefix []string) {
	if node == nil {
		return
	}

	for _, key := range node.Keys() {
		path := append(slices.Clone(prefix), key)

		switch child := node.Children[key].(type) {
		case *token.Group:
			p.Traverse(child, path)

		case *token.Variant:
			p.emit(path, false)

		case *token.Literal:
			p.emit(path, true)
		}
	}
}

func (p *Pass) emit(path []string, silent bool) {
	dotPath := token.JoinPath(path...)

	value, err := p.Resolver.Resolve(dotPath, p.Theme)
	if err != nil {
		if !silent {
			logger.Warn("skipping %s for %s theme: %v", dotPath, p.Theme, err)
		}
		if p.Report != nil {
			p.Report.skip(dotPath, p.Theme, err, silent)
		}
		return
	}

	p.Sink.Set(token.CSSVariableName(p.Prefix, dotPath), value)
}
