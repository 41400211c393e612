/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/mond/token"
)

// IndistinctDistance is the CIEDE2000 distance, on go-colorful's 0..1 Lab
// scale, below which two colors look the same.
const IndistinctDistance = 0.01

// alphaTolerance is the largest alpha difference treated as equal.
const alphaTolerance = 0.01

func (v *validation) checkBrandColors() {
	colors := v.store.BrandColors
	for _, family := range colors.Families() {
		for _, shade := range colors.Shades(family) {
			raw := colors[family][shade]
			if token.IsRef(raw) {
				continue
			}
			if _, err := csscolorparser.Parse(raw); err != nil {
				v.add(Issue{
					Severity: SeverityWarning,
					Path:     token.JoinPath(token.BrandColorNamespace, family, shade),
					Message:  fmt.Sprintf("brand value %q is not a CSS color", raw),
				})
			}
		}
	}
}

func (v *validation) checkContrast(leaves []leaf) {
	for _, l := range leaves {
		if l.kind != leafSemantic || l.node.Kind() != token.KindVariant {
			continue
		}

		light, err := v.resolver.Resolve(l.path, token.Light)
		if err != nil {
			continue
		}
		dark, err := v.resolver.Resolve(l.path, token.Dark)
		if err != nil {
			continue
		}

		distance, ok := ColorDistance(light, dark)
		if ok && distance < IndistinctDistance {
			v.add(Issue{
				Severity:   SeverityWarning,
				Path:       l.path,
				Message:    fmt.Sprintf("light %s and dark %s look the same", light, dark),
				Suggestion: "use a plain value if the token does not change with the theme",
			})
		}
	}
}

// ColorDistance returns the CIEDE2000 distance between two CSS colors.
// It reports false if either value is not a color or their alpha differs.
func ColorDistance(a, b string) (float64, bool) {
	ca, err := csscolorparser.Parse(a)
	if err != nil {
		return 0, false
	}
	cb, err := csscolorparser.Parse(b)
	if err != nil {
		return 0, false
	}
	if math.Abs(ca.A-cb.A) > alphaTolerance {
		return 0, false
	}

	fa := colorful.Color{R: ca.R, G: ca.G, B: ca.B}
	fb := colorful.Color{R: cb.R, G: cb.G, B: cb.B}
	return fa.DistanceCIEDE2000(fb), true
}
