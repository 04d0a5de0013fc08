// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pkl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dacolabs/pklgen/internal/schema"
)

func intPtr(v int64) *int64       { return &v }
func floatPtr(v float64) *float64 { return &v }
func lenPtr(v int) *int           { return &v }

func TestConstraintFor_Integer(t *testing.T) {
	tests := []struct {
		name string
		typ  *schema.IntegerType
		want string
	}{
		{
			name: "both inclusive bounds collapse to isBetween",
			typ:  &schema.IntegerType{Minimum: intPtr(1), Maximum: intPtr(10)},
			want: "(isBetween(1, 10))",
		},
		{
			name: "minimum only",
			typ:  &schema.IntegerType{Minimum: intPtr(0)},
			want: "(this >= 0)",
		},
		{
			name: "maximum only",
			typ:  &schema.IntegerType{Maximum: intPtr(100)},
			want: "(this <= 100)",
		},
		{
			name: "exclusive bounds stay strict",
			typ:  &schema.IntegerType{ExclusiveMinimum: intPtr(0), ExclusiveMaximum: intPtr(10)},
			want: "(this > 0 && this < 10)",
		},
		{
			name: "multiple of",
			typ:  &schema.IntegerType{MultipleOf: intPtr(4)},
			want: "(this % 4 == 0)",
		},
		{
			name: "no bounds",
			typ:  &schema.IntegerType{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &schema.Schema{Type: tt.typ}
			assert.Equal(t, tt.want, constraintFor(s, false))
		})
	}
}

func TestConstraintFor_BoundsInType(t *testing.T) {
	// Bounds already carried by a sized integer type are not repeated; other
	// clauses still apply.
	s := &schema.Schema{Type: &schema.IntegerType{
		Minimum: intPtr(0), Maximum: intPtr(255), MultipleOf: intPtr(5),
	}}
	assert.Equal(t, "(this % 5 == 0)", constraintFor(s, true))

	s = &schema.Schema{Type: &schema.IntegerType{Minimum: intPtr(0), Maximum: intPtr(255)}}
	assert.Equal(t, "", constraintFor(s, true))
}

func TestConstraintFor_Float(t *testing.T) {
	s := &schema.Schema{Type: &schema.FloatType{Minimum: floatPtr(0.5), Maximum: floatPtr(1.5)}}
	assert.Equal(t, "(isBetween(0.5, 1.5))", constraintFor(s, false))
}

func TestConstraintFor_String(t *testing.T) {
	tests := []struct {
		name string
		typ  *schema.StringType
		want string
	}{
		{
			name: "length range",
			typ:  &schema.StringType{MinLength: lenPtr(1), MaxLength: lenPtr(64)},
			want: "(this.length.isBetween(1, 64))",
		},
		{
			name: "min length 1 alone means not blank",
			typ:  &schema.StringType{MinLength: lenPtr(1)},
			want: "(!isBlank)",
		},
		{
			name: "min length above 1",
			typ:  &schema.StringType{MinLength: lenPtr(3)},
			want: "(this.length >= 3)",
		},
		{
			name: "pattern",
			typ:  &schema.StringType{Pattern: "^[a-z]+$"},
			want: `(matches(Regex(#"^[a-z]+$"#)))`,
		},
		{
			name: "pattern containing the custom delimiter widens it",
			typ:  &schema.StringType{Pattern: `^"#[0-9a-f]{6}"$`},
			want: `(matches(Regex(##"^"#[0-9a-f]{6}"$"##)))`,
		},
		{
			name: "email format",
			typ:  &schema.StringType{Format: "email"},
			want: `(contains("@"))`,
		},
		{
			name: "url format",
			typ:  &schema.StringType{Format: "url"},
			want: `(startsWith("http"))`,
		},
		{
			name: "unrecognized format",
			typ:  &schema.StringType{Format: "hostname"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &schema.Schema{Type: tt.typ}
			assert.Equal(t, tt.want, constraintFor(s, false))
		})
	}
}

func TestConstraintFor_Array(t *testing.T) {
	tests := []struct {
		name     string
		typ      *schema.ArrayType
		optional bool
		want     string
	}{
		{
			name: "length bounds and distinct",
			typ:  &schema.ArrayType{MinLength: lenPtr(2), Unique: true},
			want: "(this.length >= 2 && this.isDistinct)",
		},
		{
			name: "exactly one collapses to single",
			typ:  &schema.ArrayType{MinLength: lenPtr(1), MaxLength: lenPtr(1)},
			want: "(this.single)",
		},
		{
			name: "at most one on required collapses to single",
			typ:  &schema.ArrayType{MaxLength: lenPtr(1)},
			want: "(this.single)",
		},
		{
			name:     "at most one on optional collapses to singleOrNull",
			typ:      &schema.ArrayType{MaxLength: lenPtr(1)},
			optional: true,
			want:     "(this.singleOrNull)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &schema.Schema{Type: tt.typ, Optional: tt.optional}
			assert.Equal(t, tt.want, constraintFor(s, false))
		})
	}
}

func TestConstraintFor_Object(t *testing.T) {
	s := &schema.Schema{Type: &schema.ObjectType{
		MinLength: lenPtr(1),
		Required:  []string{"host", "port"},
	}}
	assert.Equal(t,
		`(this.length >= 1 && List("host", "port").every((k) -> this.containsKey(k)))`,
		constraintFor(s, false))
}

func TestConstraintFor_SingleGroup(t *testing.T) {
	// Multiple clauses join inside one parenthesized group.
	s := &schema.Schema{Type: &schema.StringType{
		MinLength: lenPtr(1), MaxLength: lenPtr(32), Format: "email",
	}}
	assert.Equal(t, `(this.length.isBetween(1, 32) && contains("@"))`, constraintFor(s, false))
}
