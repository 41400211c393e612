/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser loads token stores from JSON, JSONC, and YAML files.
//
// A token file has up to three kinds of top-level keys:
//
//	$description: Acme tokens
//	color:            # brand palette, family -> shade -> value
//	  blue: {500: "#3b82f6"}
//	semantic:         # themed tree
//	  text:
//	    primary: {light: "#0f172a", dark: "#f1f5f9"}
//	spacing:          # any other flat map is a scale
//	  4: 1rem
package parser

import (
	"fmt"

	"bennypowers.dev/mond/fs"
	"bennypowers.dev/mond/token"
)

// DescriptionKey holds a human-readable description at the file root or on a group.
const DescriptionKey = "$description"

// Parse decodes token data and classifies it into a store.
func Parse(data []byte) (*token.Store, error) {
	raw, err := decode(data)
	if err != nil {
		return nil, err
	}
	return buildStore(raw)
}

// ParseFile reads and parses a token file.
func ParseFile(filesystem fs.FileSystem, path string) (*token.Store, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return store, nil
}
