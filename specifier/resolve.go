/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	mondfs "bennypowers.dev/mond/fs"
)

// ErrNotInstalled is returned when no node_modules directory holds the file.
var ErrNotInstalled = errors.New("package not installed")

// Resolve returns the filesystem path of a package specifier, walking up from
// rootDir through each node_modules directory. Local paths are returned
// unchanged.
func Resolve(filesystem mondfs.FileSystem, rootDir, spec string) (string, error) {
	parsed := Parse(spec)
	if parsed.Kind == KindLocal {
		return spec, nil
	}

	pkg := parsed.Package
	if parsed.Kind == KindJSR {
		pkg = filepath.Join("@jsr", jsrCompatName(pkg))
	}

	dir := rootDir
	if !filepath.IsAbs(dir) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path %s: %w", dir, err)
		}
		dir = abs
	}

	for {
		base := filepath.Join(dir, "node_modules")
		candidate := filepath.Join(base, pkg, parsed.File)
		if !isInside(candidate, base) {
			return "", fmt.Errorf("path traversal in specifier: %s", spec)
		}
		if filesystem.Exists(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: %s (looked in node_modules from %s)", ErrNotInstalled, parsed.Package, rootDir)
}

func isInside(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
