/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"bennypowers.dev/mond/render"
)

func testRows() []render.Row {
	return []render.Row{
		{Name: "--mond-color-blue-500", Group: "color", Light: "#3b82f6"},
		{Name: "--mond-spacing-4", Group: "spacing", Light: "1rem"},
		{Name: "--mond-text-muted", Group: "text", Light: "#64748b", Dark: "#94a3b8"},
		{Name: "--mond-text-primary", Group: "text", Light: "#0f172a", Dark: "#f1f5f9"},
	}
}

func TestFilterRows(t *testing.T) {
	rows := testRows()

	t.Run("no filters", func(t *testing.T) {
		result, err := filterRows(rows, "", "")
		if err != nil {
			t.Fatal(err)
		}
		if len(result) != 4 {
			t.Errorf("expected 4 rows, got %d", len(result))
		}
	})

	t.Run("filter by group", func(t *testing.T) {
		result, _ := filterRows(rows, "", "text")
		if len(result) != 2 {
			t.Errorf("expected 2 text rows, got %d", len(result))
		}
		for _, r := range result {
			if r.Group != "text" {
				t.Errorf("expected group text, got %s", r.Group)
			}
		}
	})

	t.Run("filter by theme", func(t *testing.T) {
		result, _ := filterRows(rows, "dark", "")
		if len(result) != 2 {
			t.Errorf("expected 2 dark rows, got %d", len(result))
		}
		for _, r := range result {
			if r.Light != "" {
				t.Errorf("expected light column cleared for %s", r.Name)
			}
		}
	})

	t.Run("combined filters", func(t *testing.T) {
		result, _ := filterRows(rows, "light", "spacing")
		if len(result) != 1 || result[0].Name != "--mond-spacing-4" {
			t.Errorf("unexpected rows %+v", result)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		result, _ := filterRows(rows, "dark", "spacing")
		if len(result) != 0 {
			t.Errorf("expected 0 rows, got %d", len(result))
		}
	})

	t.Run("unknown theme", func(t *testing.T) {
		if _, err := filterRows(rows, "sepia", ""); err == nil {
			t.Error("expected error for unknown theme")
		}
	})
}

func TestWriteRows(t *testing.T) {
	rows := testRows()

	t.Run("names", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeRows(&buf, rows, "names", false); err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 4 || lines[0] != "--mond-color-blue-500" {
			t.Errorf("unexpected names output:\n%s", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeRows(&buf, rows, "json", false); err != nil {
			t.Fatal(err)
		}
		var decoded []render.Row
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatal(err)
		}
		if len(decoded) != 4 || decoded[3].Dark != "#f1f5f9" {
			t.Errorf("unexpected json output: %+v", decoded)
		}
	})

	t.Run("empty json is an array", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeRows(&buf, nil, "json", false); err != nil {
			t.Fatal(err)
		}
		if strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("expected [], got %q", buf.String())
		}
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeRows(&buf, rows, "markdown", false); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "## Text {#text}") {
			t.Errorf("expected text heading, got:\n%s", buf.String())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if err := writeRows(&bytes.Buffer{}, rows, "xml", false); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
