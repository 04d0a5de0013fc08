// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dacolabs/pklgen/internal/schema"
)

// Build converts a parsed JSON Schema document into the named-type graph.
// The root schema becomes the first entry under rootName, $defs become named
// types, and inline nested objects are extracted as named types after them.
func Build(rootName string, doc *Document) (*schema.TypeMap, error) {
	if rootName == "" {
		rootName = doc.Schema.Title
	}
	if rootName == "" {
		rootName = "Config"
	}

	// $defs in sorted order for deterministic output
	defNames := make([]string, 0, len(doc.Schema.Defs))
	for name := range doc.Schema.Defs {
		defNames = append(defNames, name)
	}
	sort.Strings(defNames)

	b := &builder{
		doc:      doc,
		types:    schema.NewTypeMap(),
		reserved: map[string]bool{rootName: true},
	}
	for _, name := range defNames {
		b.reserved[toPascalCase(name)] = true
	}

	root, err := b.convert(doc.Schema, "", "")
	if err != nil {
		return nil, err
	}
	root.Name = rootName

	out := schema.NewTypeMap()
	out.Set(rootName, root)

	for _, name := range defNames {
		def, err := b.convert(doc.Schema.Defs[name], "$defs."+name, "")
		if err != nil {
			return nil, err
		}
		typeName := toPascalCase(name)
		def.Name = typeName
		out.Set(typeName, def)
	}

	// Inline objects extracted during conversion
	for name, s := range b.types.All() {
		if !out.Has(name) {
			out.Set(name, s)
		}
	}

	return out, nil
}

// builder holds mutable state during conversion.
type builder struct {
	doc      *Document
	types    *schema.TypeMap // inline objects extracted as named types
	reserved map[string]bool // names taken by the root and $defs
}

// convert maps a single JSON Schema node to a graph schema. path mirrors the
// raw document structure for key-order lookups; hint names inline objects
// extracted from properties (empty for root and $defs nodes).
func (b *builder) convert(s *jsonschema.Schema, path, hint string) (*schema.Schema, error) {
	if s == nil {
		return &schema.Schema{Type: schema.UnknownType{}}, nil
	}

	out := &schema.Schema{Description: s.Description}
	if s.Deprecated {
		out.Deprecated = "deprecated"
	}

	if s.Ref != "" {
		out.Type = &schema.ReferenceType{Name: toPascalCase(refDefName(s.Ref))}
		return out, nil
	}

	typ, nullable := singleType(s)
	out.Nullable = nullable

	if s.Const != nil {
		lit, err := literalOf(*s.Const)
		if err != nil {
			return nil, fmt.Errorf("unsupported const for %q: %w", path, err)
		}
		out.Type = &schema.LiteralType{Value: lit}
		return out, nil
	}

	if variants := unionVariants(s); len(variants) > 0 {
		us := make([]*schema.Schema, 0, len(variants))
		for i, v := range variants {
			vs, err := b.convert(v, fmt.Sprintf("%s.%d", path, i), hint)
			if err != nil {
				return nil, err
			}
			us = append(us, vs)
		}
		out.Type = &schema.UnionType{Variants: us}
		return out, nil
	}

	if len(s.Enum) > 0 {
		t, err := enumType(s)
		if err != nil {
			return nil, fmt.Errorf("unsupported enum for %q: %w", path, err)
		}
		out.Type = t
		return out, nil
	}

	switch typ {
	case "null":
		out.Type = schema.NullType{}
	case "boolean":
		out.Type = &schema.BooleanType{Default: boolDefault(s.Default)}
	case "integer":
		out.Type = &schema.IntegerType{
			Minimum:          intBound(s.Minimum),
			Maximum:          intBound(s.Maximum),
			ExclusiveMinimum: intBound(s.ExclusiveMinimum),
			ExclusiveMaximum: intBound(s.ExclusiveMaximum),
			MultipleOf:       intBound(s.MultipleOf),
		}
	case "number":
		out.Type = &schema.FloatType{
			Minimum:          s.Minimum,
			Maximum:          s.Maximum,
			ExclusiveMinimum: s.ExclusiveMinimum,
			ExclusiveMaximum: s.ExclusiveMaximum,
			MultipleOf:       s.MultipleOf,
		}
	case "string":
		out.Type = &schema.StringType{
			MinLength: s.MinLength,
			MaxLength: s.MaxLength,
			Pattern:   s.Pattern,
			Format:    s.Format,
		}
	case "array":
		t, err := b.convertArray(s, path, hint)
		if err != nil {
			return nil, err
		}
		out.Type = t
	case "object", "":
		t, err := b.convertObject(s, path, hint)
		if err != nil {
			return nil, err
		}
		out.Type = t
	default:
		out.Type = schema.UnknownType{}
	}
	return out, nil
}

func (b *builder) convertArray(s *jsonschema.Schema, path, hint string) (schema.Type, error) {
	if len(s.PrefixItems) > 0 {
		items := make([]*schema.Schema, 0, len(s.PrefixItems))
		for i, it := range s.PrefixItems {
			conv, err := b.convert(it, fmt.Sprintf("%s.prefixItems.%d", path, i), hint)
			if err != nil {
				return nil, err
			}
			items = append(items, conv)
		}
		return &schema.TupleType{Items: items}, nil
	}

	items, err := b.convert(s.Items, path+".items", hint)
	if err != nil {
		return nil, err
	}
	return &schema.ArrayType{
		Items:      items,
		MinLength:  s.MinItems,
		MaxLength:  s.MaxItems,
		Unique:     s.UniqueItems,
		HasDefault: len(s.Default) > 0,
	}, nil
}

func (b *builder) convertObject(s *jsonschema.Schema, path, hint string) (schema.Type, error) {
	if len(s.Properties) > 0 {
		st, err := b.convertStruct(s, path)
		if err != nil {
			return nil, err
		}
		// Inline nested objects become named types, referenced where they
		// appeared.
		if hint != "" {
			name := b.extract(hint, &schema.Schema{
				Name:        toPascalCase(hint),
				Description: s.Description,
				Type:        st,
			})
			return &schema.ReferenceType{Name: name}, nil
		}
		return st, nil
	}

	if s.AdditionalProperties != nil {
		value, err := b.convert(s.AdditionalProperties, path+".additionalProperties", "")
		if err != nil {
			return nil, err
		}
		return &schema.ObjectType{
			Key:        &schema.Schema{Type: &schema.StringType{}},
			Value:      value,
			Required:   s.Required,
			HasDefault: len(s.Default) > 0,
		}, nil
	}

	if s.Type == "" {
		return schema.UnknownType{}, nil
	}
	// Free-form object
	return &schema.ObjectType{
		Key:        &schema.Schema{Type: &schema.StringType{}},
		Value:      &schema.Schema{Type: schema.UnknownType{}},
		Required:   s.Required,
		HasDefault: len(s.Default) > 0,
	}, nil
}

func (b *builder) convertStruct(s *jsonschema.Schema, path string) (*schema.StructType, error) {
	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}

	names := b.orderedKeys(s, path)
	fields := make([]*schema.Field, 0, len(names))
	for _, name := range names {
		ps := s.Properties[name]

		propPath := "properties." + name
		if path != "" {
			propPath = path + "." + propPath
		}

		fs, err := b.convert(ps, propPath, name)
		if err != nil {
			return nil, err
		}

		optional := !required[name]
		f := &schema.Field{
			Name:     name,
			Schema:   fs,
			Optional: &optional,
		}
		if ps != nil {
			f.Deprecated = fs.Deprecated
			if lit := literalFromRaw(ps.Default); lit != nil {
				f.Default = lit
			}
		}
		fields = append(fields, f)
	}

	return &schema.StructType{
		Fields:  fields,
		Partial: s.AdditionalProperties == nil || !isFalseSchema(s.AdditionalProperties),
	}, nil
}

// extract registers an inline object under a unique name and returns it.
func (b *builder) extract(hint string, s *schema.Schema) string {
	name := toPascalCase(hint)
	if name == "" {
		name = "Inline"
	}
	candidate := name
	for i := 2; b.types.Has(candidate) || b.reserved[candidate]; i++ {
		candidate = fmt.Sprintf("%s%d", name, i)
	}
	s.Name = candidate
	b.types.Set(candidate, s)
	return candidate
}

// orderedKeys returns property names in their original document order,
// falling back to sorted order when no ordering was recorded.
func (b *builder) orderedKeys(s *jsonschema.Schema, path string) []string {
	orderPath := "properties"
	if path != "" {
		orderPath = path + ".properties"
	}

	order, ok := b.doc.KeyOrder[orderPath]
	if !ok {
		keys := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			keys = append(keys, name)
		}
		sort.Strings(keys)
		return keys
	}

	seen := make(map[string]bool, len(s.Properties))
	result := make([]string, 0, len(s.Properties))
	for _, key := range order {
		if _, exists := s.Properties[key]; exists {
			result = append(result, key)
			seen[key] = true
		}
	}
	missing := make([]string, 0)
	for key := range s.Properties {
		if !seen[key] {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return append(result, missing...)
}

// singleType reduces Type/Types to one effective type name plus nullability.
func singleType(s *jsonschema.Schema) (string, bool) {
	if s.Type != "" {
		return s.Type, false
	}
	var typ string
	nullable := false
	for _, t := range s.Types {
		if t == "null" {
			nullable = true
			continue
		}
		typ = t
	}
	return typ, nullable
}

// unionVariants returns the alternative schemas of an anyOf/oneOf node.
func unionVariants(s *jsonschema.Schema) []*jsonschema.Schema {
	if len(s.AnyOf) > 0 {
		return s.AnyOf
	}
	return s.OneOf
}

// enumType maps a homogeneous enum onto the matching scalar type and a mixed
// enum onto a union of literals.
func enumType(s *jsonschema.Schema) (schema.Type, error) {
	strs := make([]string, 0, len(s.Enum))
	ints := make([]int64, 0, len(s.Enum))
	floats := make([]float64, 0, len(s.Enum))

	for _, v := range s.Enum {
		switch t := v.(type) {
		case string:
			strs = append(strs, t)
		case float64:
			floats = append(floats, t)
			if t == math.Trunc(t) {
				ints = append(ints, int64(t))
			}
		case json.Number:
			f, err := t.Float64()
			if err != nil {
				return nil, err
			}
			floats = append(floats, f)
			if i, err := t.Int64(); err == nil {
				ints = append(ints, i)
			}
		}
	}

	n := len(s.Enum)
	switch {
	case len(strs) == n:
		return &schema.StringType{
			EnumValues: strs,
			Format:     s.Format,
			Pattern:    s.Pattern,
		}, nil
	case len(ints) == n:
		return &schema.IntegerType{EnumValues: ints}, nil
	case len(floats) == n:
		return &schema.FloatType{EnumValues: floats}, nil
	}

	variants := make([]*schema.Schema, 0, n)
	for _, v := range s.Enum {
		lit, err := literalOf(v)
		if err != nil {
			return nil, err
		}
		variants = append(variants, &schema.Schema{Type: &schema.LiteralType{Value: lit}})
	}
	return &schema.UnionType{Variants: variants}, nil
}

// literalOf converts a decoded JSON value to a literal.
func literalOf(v any) (schema.LiteralValue, error) {
	switch t := v.(type) {
	case string:
		return schema.StringValue(t), nil
	case bool:
		return schema.BoolValue(t), nil
	case float64:
		if t == math.Trunc(t) {
			return schema.IntValue(int64(t)), nil
		}
		return schema.FloatValue(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return schema.IntValue(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return schema.LiteralValue{}, err
		}
		return schema.FloatValue(f), nil
	default:
		return schema.LiteralValue{}, fmt.Errorf("non-scalar value %v", v)
	}
}

// literalFromRaw decodes a raw JSON default into a literal; nil when absent
// or non-scalar.
func literalFromRaw(raw json.RawMessage) *schema.LiteralValue {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	lit, err := literalOf(v)
	if err != nil {
		return nil
	}
	return &lit
}

func boolDefault(raw json.RawMessage) *bool {
	lit := literalFromRaw(raw)
	if lit == nil || lit.Kind != schema.LiteralBool {
		return nil
	}
	b := lit.Bool
	return &b
}

// intBound narrows a float bound to int64 when it is whole.
func intBound(v *float64) *int64 {
	if v == nil || *v != math.Trunc(*v) {
		return nil
	}
	i := int64(*v)
	return &i
}

// isFalseSchema reports whether a schema rejects everything, i.e. `false` or
// `{"not": {}}`.
func isFalseSchema(s *jsonschema.Schema) bool {
	return s != nil && s.Not != nil && isEmptySchema(s.Not)
}

func isEmptySchema(s *jsonschema.Schema) bool {
	return s != nil && s.Type == "" && len(s.Types) == 0 && len(s.Properties) == 0 &&
		s.Items == nil && s.Ref == "" && len(s.Enum) == 0 && s.Const == nil
}

// refDefName extracts the definition name from a $ref string.
// Supports $defs, definitions, and components/schemas (OpenAPI) formats.
func refDefName(ref string) string {
	path := strings.TrimPrefix(ref, "#/")

	switch {
	case strings.HasPrefix(path, "$defs/"):
		return strings.TrimPrefix(path, "$defs/")
	case strings.HasPrefix(path, "definitions/"):
		return strings.TrimPrefix(path, "definitions/")
	case strings.HasPrefix(path, "components/schemas/"):
		return strings.TrimPrefix(path, "components/schemas/")
	}
	return ref
}

// toPascalCase converts a snake_case or kebab-case name to PascalCase.
func toPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var sb strings.Builder
	for _, part := range parts {
		if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return sb.String()
}
