// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"fmt"
	"strconv"
)

// Type is the closed set of type kinds a Schema can describe.
// Translators dispatch exhaustively on the concrete variant.
type Type interface {
	isType()
}

// NullType is the null/nothing type.
type NullType struct{}

// UnknownType is a type the introspector could not determine.
type UnknownType struct{}

// BooleanType is a boolean scalar.
type BooleanType struct {
	Default *bool
}

// IntegerType is an integer scalar with optional bounds and enumeration.
type IntegerType struct {
	Minimum          *int64
	Maximum          *int64
	ExclusiveMinimum *int64
	ExclusiveMaximum *int64
	MultipleOf       *int64
	EnumValues       []int64
	Default          *int64
}

// FloatType is a floating-point scalar with optional bounds and enumeration.
type FloatType struct {
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64
	EnumValues       []float64
	Default          *float64
}

// StringType is a string scalar with optional length bounds, pattern and format.
type StringType struct {
	MinLength  *int
	MaxLength  *int
	Pattern    string
	Format     string // e.g. "email", "uuid", "duration", "data-size"
	Unit       string // unit hint for duration/data-size formats, e.g. "ms", "mb"
	EnumValues []string
	Default    *string
}

// LiteralType is a single literal value used as a type.
type LiteralType struct {
	Value LiteralValue
}

// ArrayType is an ordered collection of one element type.
type ArrayType struct {
	Items      *Schema
	MinLength  *int
	MaxLength  *int
	Unique     bool
	HasDefault bool // the source declared a default (rendered as an empty collection)
}

// ObjectType is a keyed collection.
type ObjectType struct {
	Key        *Schema
	Value      *Schema
	MinLength  *int
	MaxLength  *int
	Required   []string // keys that must be present
	HasDefault bool
}

// TupleType is a fixed-arity ordered collection.
type TupleType struct {
	Items []*Schema
}

// StructType is a named record with ordered fields.
type StructType struct {
	Fields  []*Field
	Partial bool
}

// Field returns the field with the given name, or nil.
func (s *StructType) Field(name string) *Field {
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// EnumType is a closed set of literal values.
type EnumType struct {
	Name     string
	Values   []LiteralValue
	Variants map[string]*Field // optional named variants
	Default  *LiteralValue
}

// UnionType is an ordered set of alternative types.
type UnionType struct {
	Variants []*Schema
}

// ReferenceType names another type in the graph instead of inlining it.
type ReferenceType struct {
	Name string
}

func (NullType) isType() {}
func (UnknownType) isType() {}
func (*BooleanType) isType() {}
func (*IntegerType) isType() {}
func (*FloatType) isType() {}
func (*StringType) isType() {}
func (*LiteralType) isType() {}
func (*ArrayType) isType() {}
func (*ObjectType) isType() {}
func (*TupleType) isType() {}
func (*StructType) isType() {}
func (*EnumType) isType() {}
func (*UnionType) isType() {}
func (*ReferenceType) isType() {}

// LiteralKind discriminates LiteralValue.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralBool
)

// LiteralValue is a tagged scalar literal.
type LiteralValue struct {
	Kind  LiteralKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// StringValue returns a string literal.
func StringValue(s string) LiteralValue { return LiteralValue{Kind: LiteralString, Str: s} }

// IntValue returns an integer literal.
func IntValue(i int64) LiteralValue { return LiteralValue{Kind: LiteralInt, Int: i} }

// FloatValue returns a float literal.
func FloatValue(f float64) LiteralValue { return LiteralValue{Kind: LiteralFloat, Float: f} }

// BoolValue returns a boolean literal.
func BoolValue(b bool) LiteralValue { return LiteralValue{Kind: LiteralBool, Bool: b} }

// Equal reports whether two literals have the same kind and value.
func (v LiteralValue) Equal(o LiteralValue) bool {
	return v == o
}

// String renders the literal in source form: strings quoted, others bare.
func (v LiteralValue) String() string {
	switch v.Kind {
	case LiteralString:
		return strconv.Quote(v.Str)
	case LiteralInt:
		return strconv.FormatInt(v.Int, 10)
	case LiteralFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case LiteralBool:
		return strconv.FormatBool(v.Bool)
	default:
		return fmt.Sprintf("<invalid literal kind %d>", v.Kind)
	}
}
