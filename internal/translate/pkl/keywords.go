// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pkl

// pklKeywords are reserved words that must be backtick-escaped when used as
// identifiers. Taken from the Pkl language reference.
var pklKeywords = map[string]struct{}{
	"abstract": {}, "amends": {}, "as": {}, "case": {}, "class": {},
	"const": {}, "default": {}, "delete": {}, "else": {}, "extends": {},
	"external": {}, "false": {}, "fixed": {}, "for": {}, "function": {},
	"hidden": {}, "if": {}, "import": {}, "import*": {}, "in": {},
	"is": {}, "let": {}, "local": {}, "module": {}, "new": {},
	"nothing": {}, "null": {}, "open": {}, "out": {}, "outer": {},
	"override": {}, "overrides": {}, "protected": {}, "read": {},
	"read*": {}, "record": {}, "super": {}, "switch": {}, "this": {},
	"throw": {}, "trace": {}, "true": {}, "typealias": {}, "unknown": {},
	"vararg": {}, "when": {},
}

// escapeName backtick-escapes Pkl keywords so they can be used as identifiers.
func escapeName(name string) string {
	if _, ok := pklKeywords[name]; ok {
		return "`" + name + "`"
	}
	return name
}
