/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tokens defines the Mond design system's token store.
package tokens

import "bennypowers.dev/mond/token"

// Scale category names.
const (
	Spacing       = "spacing"
	Radii         = "radii"
	Shadows       = "shadows"
	FontFamily    = "font-family"
	FontSize      = "font-size"
	FontWeight    = "font-weight"
	LineHeight    = "line-height"
	LetterSpacing = "letter-spacing"
)

// ScaleNames returns the scale categories in declaration order.
func ScaleNames() []string {
	return []string{Spacing, Radii, Shadows, FontFamily, FontSize, FontWeight, LineHeight, LetterSpacing}
}

// Mond returns a fresh copy of the Mond token store.
func Mond() *token.Store {
	return &token.Store{
		Description: "Mond design tokens",
		BrandColors: brandColors(),
		Scales:      scales(),
		Semantic:    semantic(),
	}
}

func brandColors() token.BrandColors {
	return token.BrandColors{
		"slate": {
			"50": "#f8fafc", "100": "#f1f5f9", "200": "#e2e8f0", "300": "#cbd5e1", "400": "#94a3b8",
			"500": "#64748b", "600": "#475569", "700": "#334155", "800": "#1e293b", "900": "#0f172a",
			"950": "#020617",
		},
		"blue": {
			"50": "#eff6ff", "100": "#dbeafe", "200": "#bfdbfe", "300": "#93c5fd", "400": "#60a5fa",
			"500": "#3b82f6", "600": "#2563eb", "700": "#1d4ed8", "800": "#1e40af", "900": "#1e3a8a",
		},
		"green": {
			"50": "#f0fdf4", "100": "#dcfce7", "200": "#bbf7d0", "300": "#86efac", "400": "#4ade80",
			"500": "#22c55e", "600": "#16a34a", "700": "#15803d", "800": "#166534", "900": "#14532d",
		},
		"red": {
			"50": "#fef2f2", "100": "#fee2e2", "200": "#fecaca", "300": "#fca5a5", "400": "#f87171",
			"500": "#ef4444", "600": "#dc2626", "700": "#b91c1c", "800": "#991b1b", "900": "#7f1d1d",
		},
		"amber": {
			"50": "#fffbeb", "100": "#fef3c7", "200": "#fde68a", "300": "#fcd34d", "400": "#fbbf24",
			"500": "#f59e0b", "600": "#d97706", "700": "#b45309", "800": "#92400e", "900": "#78350f",
		},
	}
}

func scales() []token.Scale {
	return []token.Scale{
		{Name: Spacing, Values: map[string]string{
			"0": "0", "px": "1px", "1": "0.25rem", "2": "0.5rem", "3": "0.75rem", "4": "1rem",
			"5": "1.25rem", "6": "1.5rem", "8": "2rem", "10": "2.5rem", "12": "3rem", "16": "4rem",
			"20": "5rem", "24": "6rem",
		}},
		{Name: Radii, Values: map[string]string{
			"none": "0", "sm": "0.125rem", "md": "0.375rem", "lg": "0.5rem", "xl": "0.75rem",
			"2xl": "1rem", "full": "9999px",
		}},
		{Name: Shadows, Values: map[string]string{
			"none": "none",
			"sm":   "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
			"md":   "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.1)",
			"lg":   "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -4px rgba(0, 0, 0, 0.1)",
			"xl":   "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 8px 10px -6px rgba(0, 0, 0, 0.1)",
		}},
		{Name: FontFamily, Values: map[string]string{
			"sans": `Inter, system-ui, -apple-system, "Segoe UI", sans-serif`,
			"mono": `"JetBrains Mono", ui-monospace, monospace`,
		}},
		{Name: FontSize, Values: map[string]string{
			"xs": "0.75rem", "sm": "0.875rem", "md": "1rem", "lg": "1.125rem", "xl": "1.25rem",
			"2xl": "1.5rem", "3xl": "1.875rem", "4xl": "2.25rem",
		}},
		{Name: FontWeight, Values: map[string]string{
			"regular": "400", "medium": "500", "semibold": "600", "bold": "700",
		}},
		{Name: LineHeight, Values: map[string]string{
			"tight": "1.25", "normal": "1.5", "relaxed": "1.75",
		}},
		{Name: LetterSpacing, Values: map[string]string{
			"tight": "-0.025em", "normal": "0", "wide": "0.025em",
		}},
	}
}

// feedback builds the background/foreground/border trio for a status color.
func feedback(family, darkBackground string) *token.Group {
	ref := func(shade string) string { return "{color." + family + "." + shade + "}" }
	return token.NewGroup(family).
		Set("background", token.NewVariant(ref("50"), darkBackground)).
		Set("foreground", token.NewVariant(ref("700"), ref("300"))).
		Set("border", token.NewVariant(ref("200"), ref("800")))
}

func semantic() *token.Group {
	return token.NewGroup("").
		Set("text", token.NewGroup("text").
			Set("primary", token.NewVariant("#0f172a", "#f1f5f9")).
			Set("secondary", token.NewVariant("{color.slate.600}", "{color.slate.300}")).
			Set("muted", token.NewVariant("{color.slate.500}", "{color.slate.400}")).
			Set("disabled", token.NewVariant("{color.slate.400}", "{color.slate.600}")).
			Set("inverse", token.NewVariant("#ffffff", "{color.slate.900}")).
			Set("link", token.NewVariant("{color.blue.600}", "{color.blue.400}"))).
		Set("background", token.NewGroup("background").
			Set("canvas", token.NewVariant("#ffffff", "{color.slate.950}")).
			Set("surface", token.NewVariant("{color.slate.50}", "{color.slate.900}")).
			Set("raised", token.NewVariant("#ffffff", "{color.slate.800}")).
			Set("sunken", token.NewVariant("{color.slate.100}", "#000000")).
			Set("overlay", token.NewVariant("rgba(15, 23, 42, 0.5)", "rgba(2, 6, 23, 0.7)")).
			Set("transparent", token.NewLiteral("transparent"))).
		Set("border", token.NewGroup("border").
			Set("default", token.NewVariant("{color.slate.200}", "{color.slate.700}")).
			Set("strong", token.NewVariant("{color.slate.300}", "{color.slate.600}")).
			Set("subtle", token.NewVariant("{color.slate.100}", "{color.slate.800}")).
			Set("focus", token.NewVariant("{color.blue.500}", "{color.blue.400}")).
			Set("width", token.NewGroup("width").
				Set("default", token.NewLiteral("1px")).
				Set("strong", token.NewLiteral("2px")))).
		Set("brand", token.NewGroup("brand").
			Set("interactive", token.NewGroup("interactive").
				Set("background", token.NewVariant("{color.blue.600}", "{color.blue.500}")).
				Set("hover", token.NewVariant("{color.blue.700}", "{color.blue.400}")).
				Set("active", token.NewVariant("{color.blue.800}", "{color.blue.300}")).
				Set("foreground", token.NewVariant("#ffffff", "{color.slate.950}"))).
			Set("subtle", token.NewVariant("{color.blue.50}", "rgba(59, 130, 246, 0.15)"))).
		Set("feedback", token.NewGroup("feedback").
			Set("success", feedback("green", "rgba(34, 197, 94, 0.15)")).
			Set("danger", feedback("red", "rgba(239, 68, 68, 0.15)")).
			Set("warning", feedback("amber", "rgba(245, 158, 11, 0.15)")).
			Set("info", feedback("blue", "rgba(59, 130, 246, 0.15)"))).
		Set("focus", token.NewGroup("focus").
			Set("ring", token.NewGroup("ring").
				Set("color", token.NewVariant("rgba(59, 130, 246, 0.5)", "rgba(96, 165, 250, 0.6)")).
				Set("width", token.NewLiteral("2px")).
				Set("offset", token.NewLiteral("2px")).
				Set("shadow", token.NewLiteral("0 0 0 {focus.ring.width} {focus.ring.color}"))))
}
