/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generator

import (
	"slices"

	"bennypowers.dev/mond/token"
)

// Skip records a token that was left out of the output.
type Skip struct {
	// Path is the token path that failed.
	Path string

	// Theme is the pass the failure happened in.
	Theme token.Theme

	// Err is the resolution error.
	Err error

	// Silent is true for plain leaves, whose failures are not logged.
	Silent bool
}

// Report collects what a generation run left out.
type Report struct {
	Skipped []Skip
}

func (r *Report) skip(path string, theme token.Theme, err error, silent bool) {
	r.Skipped = append(r.Skipped, Skip{Path: path, Theme: theme, Err: err, Silent: silent})
}

// Warnings returns the skipped entries that were logged.
func (r *Report) Warnings() []Skip {
	var warnings []Skip
	for _, s := range r.Skipped {
		if !s.Silent {
			warnings = append(warnings, s)
		}
	}
	return warnings
}

// SkippedPaths returns the distinct skipped paths in lexicographic order.
func (r *Report) SkippedPaths() []string {
	paths := make([]string, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		paths = append(paths, s.Path)
	}
	slices.Sort(paths)
	return slices.Compact(paths)
}
