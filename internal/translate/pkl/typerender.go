// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pkl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dacolabs/pklgen/internal/schema"
)

// maxRenderDepth bounds type recursion. Direct cycles are already broken by
// rendering references by name, so only indirect cycles can reach this.
const maxRenderDepth = 32

// namedIntRanges maps exact [min, max] bounds to Pkl's sized integer types.
// When a range matches, the bounds are carried by the type itself and no
// bound constraint is emitted.
var namedIntRanges = []struct {
	min, max int64
	name     string
}{
	{0, 255, "UInt8"},
	{0, 65535, "UInt16"},
	{0, 4294967295, "UInt32"},
	{-128, 127, "Int8"},
	{-32768, 32767, "Int16"},
	{-2147483648, 2147483647, "Int32"},
}

// renderState is the working set of one render pass. It is created empty at
// the start of a Render call, owned exclusively by that call, and discarded
// at the end.
type renderState struct {
	opts    Options
	types   *schema.TypeMap
	aliases *aliasTable
	// aliasDecls holds decorated declarations (docs, deprecation) for
	// aliases that come from named top-level types, keyed by final alias
	// name. Hoisted anonymous aliases render bare.
	aliasDecls map[string]string
	refs       map[string]struct{}
	docs       *docResolver
	depth      int
	diags      []Diagnostic
}

func newRenderState(opts Options, types *schema.TypeMap) *renderState {
	return &renderState{
		opts:       opts,
		types:      types,
		aliases:    newAliasTable(),
		aliasDecls: make(map[string]string),
		refs:       make(map[string]struct{}),
		docs:       &docResolver{types: types},
	}
}

// aliasTable accumulates typealiases synthesized during a render pass,
// deduplicated by name and content.
type aliasTable struct {
	names []string
	body  map[string]string
}

func newAliasTable() *aliasTable {
	return &aliasTable{body: make(map[string]string)}
}

// add registers an alias and returns the name to use. An existing alias with
// the same content is reused; a name collision with different content gets a
// numeric suffix.
func (t *aliasTable) add(name, body string) string {
	existing, ok := t.body[name]
	if ok && existing == body {
		return name
	}
	if ok {
		base := name
		for i := 2; ; i++ {
			name = fmt.Sprintf("%s%d", base, i)
			existing, ok = t.body[name]
			if !ok {
				break
			}
			if existing == body {
				return name
			}
		}
	}
	t.names = append(t.names, name)
	t.body[name] = body
	return name
}

func (t *aliasTable) len() int { return len(t.names) }

// renderType maps a schema node to Pkl type syntax, appending the node's
// constraint suffix when constraints are enabled and the nullable suffix
// when the node admits null.
func (r *renderState) renderType(s *schema.Schema) (string, error) {
	typ, err := r.renderTypeExpr(s)
	if err != nil {
		return "", err
	}
	if s != nil && s.Nullable && !strings.HasSuffix(typ, "?") {
		if strings.ContainsRune(typ, '|') {
			typ = "(" + typ + ")"
		}
		typ += "?"
	}
	return typ, nil
}

func (r *renderState) renderTypeExpr(s *schema.Schema) (string, error) {
	r.depth++
	defer func() { r.depth-- }()
	if r.depth > maxRenderDepth {
		return "", &CycleError{TypeName: r.docs.current, Depth: maxRenderDepth}
	}

	if s == nil || s.Type == nil {
		return r.opts.typeName("unknown"), nil
	}

	base := ""
	boundsInType := false

	switch t := s.Type.(type) {
	case schema.NullType:
		base = r.opts.typeName("nothing")
	case schema.UnknownType:
		base = r.opts.typeName("unknown")
	case *schema.BooleanType:
		base = r.opts.typeName("Boolean")
	case *schema.IntegerType:
		if len(t.EnumValues) > 0 {
			parts := make([]string, len(t.EnumValues))
			for i, v := range t.EnumValues {
				parts[i] = strconv.FormatInt(v, 10)
			}
			return r.aliases.add(fmt.Sprintf("IntegerEnum%d", r.aliases.len()), strings.Join(parts, "|")), nil
		}
		base = r.opts.typeName("Int")
		if t.Minimum != nil && t.Maximum != nil {
			for _, nr := range namedIntRanges {
				if *t.Minimum == nr.min && *t.Maximum == nr.max {
					base = nr.name
					boundsInType = true
					break
				}
			}
		}
	case *schema.FloatType:
		if len(t.EnumValues) > 0 {
			parts := make([]string, len(t.EnumValues))
			for i, v := range t.EnumValues {
				parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			return r.aliases.add(fmt.Sprintf("FloatEnum%d", r.aliases.len()), strings.Join(parts, "|")), nil
		}
		base = r.opts.typeName("Number")
	case *schema.StringType:
		if len(t.EnumValues) > 0 {
			parts := make([]string, len(t.EnumValues))
			for i, v := range t.EnumValues {
				parts[i] = strconv.Quote(v)
			}
			return r.aliases.add(fmt.Sprintf("StringEnum%d", r.aliases.len()), strings.Join(parts, "|")), nil
		}
		base = r.stringTypeName(t)
	case *schema.LiteralType:
		base = t.Value.String()
	case *schema.ArrayType:
		item, err := r.renderType(t.Items)
		if err != nil {
			return "", err
		}
		base = "Listing<" + item + ">"
	case *schema.ObjectType:
		key, err := r.renderType(t.Key)
		if err != nil {
			return "", err
		}
		value, err := r.renderType(t.Value)
		if err != nil {
			return "", err
		}
		base = "Mapping<" + key + ", " + value + ">"
	case *schema.TupleType:
		var err error
		base, err = r.renderTuple(t)
		if err != nil {
			return "", err
		}
	case *schema.StructType:
		var err error
		base, err = r.renderInlineStruct(t)
		if err != nil {
			return "", err
		}
	case *schema.EnumType:
		return r.renderEnum(t)
	case *schema.UnionType:
		return r.renderUnion(t)
	case *schema.ReferenceType:
		r.refs[t.Name] = struct{}{}
		base = ToPascalCase(t.Name)
	default:
		base = r.opts.typeName("unknown")
	}

	if r.opts.IncludeConstraints {
		base += constraintFor(s, boundsInType)
	}
	return base, nil
}

// stringTypeName picks the Pkl type for a string node, promoting duration and
// data-size formats to their first-class Pkl types.
func (r *renderState) stringTypeName(t *schema.StringType) string {
	switch strings.ToLower(t.Format) {
	case "duration":
		if t.Unit != "" {
			return fmt.Sprintf("Duration<%s>", strings.ToLower(t.Unit))
		}
		return "Duration"
	case "data-size", "datasize":
		if t.Unit != "" {
			return fmt.Sprintf("DataSize<%s>", strings.ToLower(t.Unit))
		}
		return "DataSize"
	default:
		return r.opts.typeName("String")
	}
}

// renderTuple maps tuples onto Pair (arity 2) or Listing (arity 1). Pkl has
// no native tuple beyond Pair, so other arities are unsupported.
func (r *renderState) renderTuple(t *schema.TupleType) (string, error) {
	switch len(t.Items) {
	case 1:
		item, err := r.renderType(t.Items[0])
		if err != nil {
			return "", err
		}
		return "Listing<" + item + ">", nil
	case 2:
		first, err := r.renderType(t.Items[0])
		if err != nil {
			return "", err
		}
		second, err := r.renderType(t.Items[1])
		if err != nil {
			return "", err
		}
		return "Pair<" + first + ", " + second + ">", nil
	default:
		return "", &UnsupportedShapeError{
			TypeName: r.docs.current,
			Shape:    "tuple",
			Detail:   fmt.Sprintf("arity %d has no Pkl equivalent (use Pair for 2 items)", len(t.Items)),
		}
	}
}

// renderInlineStruct renders an anonymous struct appearing as a field type.
// Top-level structs are rendered as classes, not here.
func (r *renderState) renderInlineStruct(t *schema.StructType) (string, error) {
	var fields []string
	for _, f := range t.Fields {
		if f.Hidden {
			continue
		}
		typ, err := r.renderType(f.Schema)
		if err != nil {
			return "", err
		}
		name := escapeName(ToCamelCase(f.Name))
		if r.fieldOptional(f) && !strings.HasSuffix(typ, "?") {
			typ += "?"
		}
		fields = append(fields, name+": "+typ)
	}
	return "{" + strings.Join(fields, ", ") + "}", nil
}

// enumBody renders an enum as a literal union, marking the declared default
// with Pkl's preferred-value star.
func enumBody(t *schema.EnumType) string {
	parts := make([]string, len(t.Values))
	for i, v := range t.Values {
		parts[i] = v.String()
	}
	if t.Default != nil {
		for i, v := range t.Values {
			if v.Equal(*t.Default) {
				parts[i] = "*" + parts[i]
				break
			}
		}
	}
	return strings.Join(parts, "|")
}

// renderEnum renders an enum inline or hoists it into a typealias depending
// on the enum-translation option.
func (r *renderState) renderEnum(t *schema.EnumType) (string, error) {
	body := enumBody(t)
	if r.opts.EnumTranslation == EnumLiteralUnion {
		return body, nil
	}

	name := ToPascalCase(t.Name)
	if name == "" {
		name = fmt.Sprintf("EnumType%d", r.aliases.len())
	}
	return r.aliases.add(name, body), nil
}

// renderUnion renders a union, collapsing the T|Null idiom into Pkl's
// optional suffix and hoisting wide unions into a typealias.
func (r *renderState) renderUnion(t *schema.UnionType) (string, error) {
	var nonNull []*schema.Schema
	hasNull := false
	for _, v := range t.Variants {
		if v == nil {
			continue
		}
		if _, isNull := v.Type.(schema.NullType); isNull {
			hasNull = true
			continue
		}
		nonNull = append(nonNull, v)
	}

	if len(nonNull) == 0 {
		return r.opts.typeName("nothing"), nil
	}

	rendered := make([]string, 0, len(nonNull))
	marked := false
	for _, v := range nonNull {
		typ, err := r.renderType(v)
		if err != nil {
			return "", err
		}
		if !marked && variantHasDefault(v) {
			typ = "*" + typ
			marked = true
		}
		rendered = append(rendered, typ)
	}

	if len(nonNull) == 1 && hasNull {
		typ := rendered[0]
		if !strings.HasSuffix(typ, "?") {
			typ += "?"
		}
		return typ, nil
	}

	union := strings.Join(rendered, "|")
	if len(t.Variants) > 3 {
		name := r.aliases.add(fmt.Sprintf("UnionType%d", r.aliases.len()), union)
		if hasNull {
			return name + "?", nil
		}
		return name, nil
	}
	if hasNull {
		return "(" + union + ")?", nil
	}
	return union, nil
}

// variantHasDefault reports whether a union variant declares a default,
// which selects it as the union's starred default type.
func variantHasDefault(s *schema.Schema) bool {
	switch t := s.Type.(type) {
	case *schema.BooleanType:
		return t.Default != nil
	case *schema.IntegerType:
		return t.Default != nil
	case *schema.FloatType:
		return t.Default != nil
	case *schema.StringType:
		return t.Default != nil
	case *schema.ArrayType:
		return t.HasDefault
	case *schema.ObjectType:
		return t.HasDefault
	case *schema.EnumType:
		return t.Default != nil
	default:
		return false
	}
}

// fieldOptional resolves a field's effective optionality, falling back to the
// unknown-optionality default when the source carried no information.
func (r *renderState) fieldOptional(f *schema.Field) bool {
	if f.Optional != nil {
		return *f.Optional
	}
	if f.Schema != nil && f.Schema.Optional {
		return true
	}
	return r.opts.UnknownOptionality == OptionalUnknown
}
