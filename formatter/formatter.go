/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the output formats and common utilities for
// rendering generated token collections.
package formatter

import (
	"fmt"
	"strings"
	"time"
)

// Format represents an output format for generated variables.
type Format string

const (
	// FormatCSS outputs a stylesheet with light and dark rule blocks (default).
	FormatCSS Format = "css"

	// FormatJSON outputs both collections as flat key-value JSON.
	FormatJSON Format = "json"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{string(FormatCSS), string(FormatJSON)}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "css", "":
		return FormatCSS, nil
	case "json", "flat", "flat-json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// CommentStyle describes how a header comment is delimited.
type CommentStyle struct {
	// Open starts a block comment. Empty for line comments.
	Open string

	// LinePrefix is written before every line of text.
	LinePrefix string

	// Close ends a block comment. Empty for line comments.
	Close string
}

var (
	// CStyleComments renders /* ... */ block comments, as used by CSS.
	CStyleComments = CommentStyle{Open: "/*", LinePrefix: " * ", Close: " */"}

	// LineComments renders // line comments.
	LineComments = CommentStyle{LinePrefix: "// "}
)

// FormatHeader renders text as a comment followed by a blank line.
// Trailing newlines in text are ignored; empty text yields an empty string.
func FormatHeader(text string, style CommentStyle) string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return ""
	}

	var sb strings.Builder
	if style.Open != "" {
		sb.WriteString(style.Open)
		sb.WriteString("\n")
	}
	for line := range strings.SplitSeq(text, "\n") {
		sb.WriteString(strings.TrimRight(style.LinePrefix+line, " "))
		sb.WriteString("\n")
	}
	if style.Close != "" {
		sb.WriteString(style.Close)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// GeneratedNotice returns the header text stamped on generated files.
func GeneratedNotice(tool string, at time.Time) string {
	return fmt.Sprintf("Auto-generated by %s. Do not edit by hand.\nGenerated: %s",
		tool, at.UTC().Format(time.RFC3339))
}
