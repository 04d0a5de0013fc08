// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema defines the named-type graph consumed by translators.
package schema

// Schema describes a single type in the graph.
type Schema struct {
	Name        string // type name, if the type is named
	Description string // doc comment, if any
	Deprecated  string // deprecation message; empty means not deprecated
	Nullable    bool
	Optional    bool
	Type        Type
}

// Field is a single property within a Struct.
// Fields are exclusively owned by their parent StructType.
type Field struct {
	Name       string
	Schema     *Schema
	Comment    string        // field doc comment; falls back to Schema.Description
	Default    *LiteralValue // explicit declared default
	Optional   *bool         // nil when the source carried no optionality info
	Hidden     bool
	Deprecated string
}

// Doc returns the field comment, falling back to the schema description.
func (f *Field) Doc() string {
	if f.Comment != "" {
		return f.Comment
	}
	if f.Schema != nil {
		return f.Schema.Description
	}
	return ""
}
