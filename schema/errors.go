/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema holds the sentinel errors shared by the token store, the
// resolver, and the tooling built on them.
package schema

import "errors"

// Sentinel errors for token store operations.
var (
	// ErrInvalidToken indicates a token definition does not have a usable shape.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnknownTheme indicates a theme name other than light or dark.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrUnresolvedReference indicates a token path does not exist in the store.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrCircularReference indicates a circular reference was detected.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrMissingTheme indicates a theme-variant token has no value for the requested theme.
	ErrMissingTheme = errors.New("theme variant missing value")

	// ErrNotTerminal indicates a path resolved to a group, or to a value that
	// still carries reference syntax.
	ErrNotTerminal = errors.New("token is not a terminal value")

	// ErrEmptyValue indicates a token whose value is empty.
	ErrEmptyValue = errors.New("token value is empty")

	// ErrNoStore indicates generation was attempted without a semantic tree.
	ErrNoStore = errors.New("token store has no semantic tree")
)
