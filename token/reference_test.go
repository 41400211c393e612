/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"bennypowers.dev/mond/token"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"{color.blue.500}", "color.blue.500", true},
		{"  {color.blue.500} ", "color.blue.500", true},
		{"{ text.primary }", "text.primary", true},
		{"#3b82f6", "", false},
		{"0 1px 2px {color.slate.900}", "", false},
		{"{a}{b}", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := token.ParseRef(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseRef(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtractRefs(t *testing.T) {
	refs := token.ExtractRefs("0 1px 2px {color.black}, 0 0 0 1px { border.default }")
	want := []string{"color.black", "border.default"}
	if !slices.Equal(refs, want) {
		t.Errorf("ExtractRefs() = %v, want %v", refs, want)
	}

	if refs := token.ExtractRefs("1rem"); len(refs) != 0 {
		t.Errorf("expected no refs, got %v", refs)
	}
}

func TestReplaceRefs(t *testing.T) {
	got, err := token.ReplaceRefs("0 1px 2px {color.black}", func(path string) (string, error) {
		return strings.ToUpper(path), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0 1px 2px COLOR.BLACK" {
		t.Errorf("ReplaceRefs() = %q", got)
	}

	boom := errors.New("boom")
	_, err = token.ReplaceRefs("{a} {b}", func(path string) (string, error) {
		if path == "b" {
			return "", boom
		}
		return "x", nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected callback error, got %v", err)
	}
}

func TestHasReferenceSyntax(t *testing.T) {
	if !token.HasReferenceSyntax("{color.blue.500}") {
		t.Error("expected reference syntax")
	}
	if token.HasReferenceSyntax("rgba(15, 23, 42, 0.08)") {
		t.Error("expected plain CSS value")
	}
}
