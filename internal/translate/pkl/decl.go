// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pkl

import (
	"strconv"
	"strings"

	"github.com/dacolabs/pklgen/internal/schema"
)

// docComment formats text as a Pkl doc comment, one `///` line per input line.
func docComment(text, indent string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			lines[i] = indent + "///"
		} else {
			lines[i] = indent + "/// " + line
		}
	}
	return strings.Join(lines, "\n")
}

// blockComment formats text as a Pkl block comment.
func blockComment(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return "/* " + lines[0] + " */"
	}
	for i, line := range lines {
		lines[i] = " * " + strings.TrimSpace(line)
	}
	return "/*\n" + strings.Join(lines, "\n") + "\n */"
}

// deprecationAnnotation renders an @Deprecated marker. Messages following the
// "since <version>" convention get a structured since field.
func deprecationAnnotation(msg, indent string) string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return ""
	}

	var parts []string
	if rest, ok := strings.CutPrefix(msg, "since "); ok {
		if version := strings.Fields(rest); len(version) > 0 {
			parts = append(parts, "since = "+strconv.Quote(strings.Trim(version[0], "vV")))
		}
	}
	parts = append(parts, "message = "+strconv.Quote(msg))

	return indent + "@Deprecated { " + strings.Join(parts, "; ") + " }"
}

// fieldDoc assembles a field's resolved doc comment, appending example
// literals when examples are enabled.
func (r *renderState) fieldDoc(f *schema.Field) string {
	if !r.opts.IncludeDocs {
		return ""
	}
	text := r.docs.resolve(f.Doc())

	if r.opts.IncludeExamples && f.Schema != nil {
		if examples := examplesFor(f.Schema); len(examples) > 0 {
			var sb strings.Builder
			sb.WriteString(text)
			if text != "" {
				sb.WriteString("\n\n")
			}
			sb.WriteString("Examples:")
			for _, ex := range examples {
				sb.WriteString("\n- `" + ex + "`")
			}
			text = sb.String()
		}
	}
	return text
}

// renderField renders one property declaration, or "" when the field is
// hidden, excluded, or deprecated with deprecated output disabled.
func (r *renderState) renderField(f *schema.Field, indent string) (string, error) {
	if f.Hidden || r.isExcluded(f.Name) {
		return "", nil
	}

	deprecated := f.Deprecated
	if deprecated == "" && f.Schema != nil {
		deprecated = f.Schema.Deprecated
	}
	if deprecated != "" && !r.opts.IncludeDeprecated {
		return "", nil
	}

	var lines []string
	if deprecated != "" {
		lines = append(lines, deprecationAnnotation(deprecated, indent))
	}
	if doc := r.fieldDoc(f); doc != "" {
		lines = append(lines, docComment(doc, indent))
	}

	typ, err := r.renderType(f.Schema)
	if err != nil {
		return "", err
	}

	optional := r.fieldOptional(f)
	if optional && !strings.HasSuffix(typ, "?") {
		switch r.opts.OptionalStyle {
		case ExplicitNothing:
			typ = "(" + typ + "|" + r.opts.typeName("nothing") + ")"
		default:
			typ += "?"
		}
	}

	decl := indent + escapeName(ToCamelCase(f.Name)) + ": " + typ
	if r.opts.IncludeDefaults && f.Schema != nil {
		if d := defaultFor(f.Schema, f.Default); d != "" {
			decl += " = " + d
		}
	}
	lines = append(lines, decl)

	return strings.Join(lines, "\n"), nil
}

// renderProperties renders a struct's fields in their original order,
// separated by blank lines.
func (r *renderState) renderProperties(st *schema.StructType, indent string) (string, error) {
	var rendered []string
	for _, f := range st.Fields {
		field, err := r.renderField(f, indent)
		if err != nil {
			return "", err
		}
		if field != "" {
			rendered = append(rendered, field)
		}
	}
	return strings.Join(rendered, "\n\n"), nil
}

// renderClass renders a named struct as a class declaration.
func (r *renderState) renderClass(name string, s *schema.Schema, st *schema.StructType) (string, error) {
	r.docs.current = name
	defer func() { r.docs.current = "" }()

	var parts []string
	if r.opts.IncludeDocs && s.Description != "" {
		parts = append(parts, docComment(r.docs.resolve(s.Description), ""))
	}
	if s.Deprecated != "" {
		parts = append(parts, deprecationAnnotation(s.Deprecated, ""))
	}

	keyword := "class"
	if r.opts.OpenClasses == Open {
		keyword = "open class"
	}

	body, err := r.renderProperties(st, r.opts.Indent)
	if err != nil {
		return "", err
	}
	if body == "" {
		parts = append(parts, keyword+" "+escapeName(ToPascalCase(name))+" {}")
	} else {
		parts = append(parts, keyword+" "+escapeName(ToPascalCase(name))+" {\n"+body+"\n}")
	}

	return strings.Join(parts, "\n"), nil
}

// renderNamedAlias renders a top-level enum, union or scalar type as a
// typealias declaration. The alias is registered through the alias table so
// field-site hoists of the same type are deduplicated; the decorated
// declaration is stored on the state and emitted with the alias section.
func (r *renderState) renderNamedAlias(name string, s *schema.Schema) error {
	r.docs.current = name
	defer func() { r.docs.current = "" }()

	pascal := ToPascalCase(name)
	var body string
	switch t := s.Type.(type) {
	case *schema.EnumType:
		body = enumBody(t)
	case *schema.UnionType:
		var nonNull []string
		hasNull := false
		for _, v := range t.Variants {
			if v == nil {
				continue
			}
			if _, isNull := v.Type.(schema.NullType); isNull {
				hasNull = true
				continue
			}
			typ, err := r.renderType(v)
			if err != nil {
				return err
			}
			nonNull = append(nonNull, typ)
		}
		body = strings.Join(nonNull, "|")
		if hasNull && len(nonNull) == 1 {
			body = nonNull[0] + "?"
		} else if hasNull {
			body = "(" + body + ")?"
		}
	default:
		var err error
		body, err = r.renderType(s)
		if err != nil {
			return err
		}
	}

	pascal = r.aliases.add(pascal, body)

	var parts []string
	if r.opts.IncludeDocs && s.Description != "" {
		parts = append(parts, docComment(r.docs.resolve(s.Description), ""))
	}
	if s.Deprecated != "" {
		parts = append(parts, deprecationAnnotation(s.Deprecated, ""))
	}
	parts = append(parts, "typealias "+pascal+" = "+body)
	r.aliasDecls[pascal] = strings.Join(parts, "\n")
	return nil
}

func (r *renderState) isExcluded(name string) bool {
	for _, ex := range r.opts.ExcludeProperties {
		if ex == name {
			return true
		}
	}
	return false
}
