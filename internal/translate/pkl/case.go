// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pkl

import (
	"strings"
	"unicode"
)

// ToPascalCase converts a name to the leading-capital form used for Pkl
// classes, modules and typealiases. Word boundaries are `_` and `-`.
// Already-pascal input is a fixed point.
func ToPascalCase(name string) string {
	if name == "" {
		return ""
	}

	var sb strings.Builder
	capitalizeNext := true
	for _, r := range name {
		switch {
		case r == '_' || r == '-':
			capitalizeNext = true
		case capitalizeNext:
			sb.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ToCamelCase converts a name to the leading-lowercase form used for Pkl
// properties. Word boundaries are `_` and `-`.
func ToCamelCase(name string) string {
	if name == "" {
		return ""
	}

	var sb strings.Builder
	capitalizeNext := false
	first := true
	for _, r := range name {
		switch {
		case r == '_' || r == '-':
			capitalizeNext = true
		case capitalizeNext:
			sb.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
			first = false
		case first:
			sb.WriteRune(unicode.ToLower(r))
			first = false
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
