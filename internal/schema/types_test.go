// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteralValue_String(t *testing.T) {
	tests := []struct {
		name string
		v    LiteralValue
		want string
	}{
		{"string is quoted", StringValue("info"), `"info"`},
		{"string with quotes escaped", StringValue(`say "hi"`), `"say \"hi\""`},
		{"int", IntValue(42), "42"},
		{"negative int", IntValue(-7), "-7"},
		{"float", FloatValue(0.5), "0.5"},
		{"whole float", FloatValue(3), "3"},
		{"bool", BoolValue(true), "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestLiteralValue_Equal(t *testing.T) {
	assert.True(t, StringValue("a").Equal(StringValue("a")))
	assert.False(t, StringValue("a").Equal(StringValue("b")))
	assert.False(t, IntValue(1).Equal(FloatValue(1)))
	assert.True(t, BoolValue(false).Equal(BoolValue(false)))
}

func TestStructType_Field(t *testing.T) {
	st := &StructType{Fields: []*Field{
		{Name: "host"},
		{Name: "port"},
	}}

	f := st.Field("port")
	assert.NotNil(t, f)
	assert.Equal(t, "port", f.Name)
	assert.Nil(t, st.Field("missing"))
}

// TestType_AllVariantsKnown enumerates every Type variant through an
// exhaustive switch, so adding a variant without updating consumers fails
// here first.
func TestType_AllVariantsKnown(t *testing.T) {
	variants := []Type{
		NullType{},
		UnknownType{},
		&BooleanType{},
		&IntegerType{},
		&FloatType{},
		&StringType{},
		&LiteralType{},
		&ArrayType{},
		&ObjectType{},
		&TupleType{},
		&StructType{},
		&EnumType{},
		&UnionType{},
		&ReferenceType{},
	}

	for _, v := range variants {
		switch v.(type) {
		case NullType, UnknownType, *BooleanType, *IntegerType, *FloatType,
			*StringType, *LiteralType, *ArrayType, *ObjectType, *TupleType,
			*StructType, *EnumType, *UnionType, *ReferenceType:
		default:
			t.Fatalf("unhandled type variant %T", v)
		}
	}
}

func TestField_Doc(t *testing.T) {
	f := &Field{Comment: "own comment", Schema: &Schema{Description: "schema doc"}}
	assert.Equal(t, "own comment", f.Doc())

	f = &Field{Schema: &Schema{Description: "schema doc"}}
	assert.Equal(t, "schema doc", f.Doc())

	assert.Empty(t, (&Field{}).Doc())
}
