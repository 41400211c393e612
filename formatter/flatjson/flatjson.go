/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting for generated variables.
package flatjson

import (
	"encoding/json"

	"bennypowers.dev/mond/formatter/css"
	"bennypowers.dev/mond/token"
)

// Format renders the light and dark collections as
// {"light": {name: value}, "dark": {name: value}}.
// encoding/json sorts map keys, so output order is stable.
func Format(light, dark *css.Collection) ([]byte, error) {
	result := map[token.Theme]map[string]string{
		token.Light: light.Map(),
		token.Dark:  dark.Map(),
	}
	return json.MarshalIndent(result, "", "  ")
}
