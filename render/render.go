/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/mond/formatter/css"
	"bennypowers.dev/mond/token"
)

// Row holds the light and dark values of one CSS variable.
type Row struct {
	Name  string `json:"name"`            // CSS variable name with prefix
	Group string `json:"group"`           // first name segment after the prefix
	Light string `json:"light,omitempty"` // value in the root/light block
	Dark  string `json:"dark,omitempty"`  // value in the dark block
}

// Themed reports whether the variable is redeclared in the dark block.
func (r Row) Themed() bool {
	return r.Dark != ""
}

// Rows joins the light and dark collections by name, sorted by name.
// Groups are the first name segment after the prefix, or the longest of
// known whose hyphenated form starts the name, for groups such as
// "font-size" that contain a hyphen themselves.
func Rows(prefix string, light, dark *css.Collection, known ...string) []Row {
	names := append(light.Names(), dark.Names()...)
	slices.Sort(names)
	names = slices.Compact(names)

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		l, _ := light.Get(name)
		d, _ := dark.Get(name)
		rows = append(rows, Row{Name: name, Group: groupOf(prefix, name, known), Light: l, Dark: d})
	}
	return rows
}

func groupOf(prefix, name string, known []string) string {
	rest := strings.TrimPrefix(name, "--")
	if prefix != "" {
		rest = strings.TrimPrefix(rest, prefix+"-")
	}

	best := ""
	for _, k := range known {
		k = strings.ReplaceAll(k, ".", "-")
		if len(k) > len(best) && strings.HasPrefix(rest, k+"-") {
			best = k
		}
	}
	if best != "" {
		return best
	}

	group, _, _ := strings.Cut(rest, "-")
	return group
}

// Filter keeps rows whose group equals group, or all rows when group is empty.
func Filter(rows []Row, group string) []Row {
	if group == "" {
		return rows
	}
	return slices.DeleteFunc(slices.Clone(rows), func(r Row) bool { return r.Group != group })
}

// ForTheme keeps the rows declared in the block of theme and clears the
// other theme's column.
func ForTheme(rows []Row, theme token.Theme) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if theme == token.Dark {
			if r.Dark == "" {
				continue
			}
			r.Light = ""
		} else {
			if r.Light == "" {
				continue
			}
			r.Dark = ""
		}
		out = append(out, r)
	}
	return out
}

// ColorSwatch returns a 24-bit ANSI color block for a CSS color, or "" if
// value is not a color.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as aligned columns: name, light value, dark value.
func Table(w io.Writer, rows []Row, swatches bool) error {
	if len(rows) == 0 {
		return nil
	}

	nameW, lightW := 4, 5
	for _, r := range rows {
		nameW = max(nameW, len(r.Name))
		lightW = max(lightW, len(r.Light))
	}

	cell := func(value string) string {
		if swatches && value != "" {
			return ColorSwatch(value) + value
		}
		return value
	}

	for _, r := range rows {
		light := cell(r.Light)
		// swatch escapes take no columns on screen
		pad := lightW + len(light) - len(r.Light)
		line := fmt.Sprintf("%-*s  %-*s  %s", nameW, r.Name, pad, light, cell(r.Dark))
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders one table per group, each under a title-cased heading.
func Markdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	var groups []string
	byGroup := make(map[string][]Row)
	for _, r := range rows {
		if _, ok := byGroup[r.Group]; !ok {
			groups = append(groups, r.Group)
		}
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}
	slices.Sort(groups)

	var sb strings.Builder
	for i, group := range groups {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## %s {#%s}\n\n", toTitleCase(group), slugify(group))
		renderMarkdownTable(&sb, byGroup[group])
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func renderMarkdownTable(sb *strings.Builder, rows []Row) {
	nameW, lightW, darkW := 4, 5, 4
	for _, r := range rows {
		nameW = max(nameW, len(r.Name)+2)
		lightW = max(lightW, len(r.Light))
		darkW = max(darkW, len(r.Dark))
	}

	fmt.Fprintf(sb, "| %-*s | %-*s | %-*s |\n", nameW, "Name", lightW, "Light", darkW, "Dark")
	fmt.Fprintf(sb, "|-%s-|-%s-|-%s-|\n",
		strings.Repeat("-", nameW), strings.Repeat("-", lightW), strings.Repeat("-", darkW))
	for _, r := range rows {
		fmt.Fprintf(sb, "| %-*s | %-*s | %-*s |\n", nameW, "`"+r.Name+"`", lightW, r.Light, darkW, r.Dark)
	}
}

// Names renders just the variable names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Font Size" -> "font-size"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a group name to a heading, e.g. "font" -> "Font".
func toTitleCase(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
}
