// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pkl

import (
	"regexp"
	"strings"

	"github.com/dacolabs/pklgen/internal/schema"
)

// unknownTypeName stands in for Self when no type is being rendered.
const unknownTypeName = "UnknownType"

// Doc-reference notations, most specific first. The simple-reference pattern
// captures a trailing `(` or `[` so the replacement can skip matches that are
// really the text half of a link; Go's regexp has no lookahead.
var (
	backtickRefRe  = regexp.MustCompile("\\[`([^`\\]]+)`\\]")
	simpleRefRe    = regexp.MustCompile("\\[([^\\[\\]`()]+)\\]([(\\[])?")
	linkBacktickRe = regexp.MustCompile("\\[([^\\]]+)\\]\\(`([^`)]+)`\\)")
	linkRe         = regexp.MustCompile("\\[([^\\]]+)\\]\\(([^)`]+)\\)")
	refStyleRe     = regexp.MustCompile(`\[([^\]]+)\]\[([^\]]+)\]`)
	refDefRe       = regexp.MustCompile(`(?m)^[ \t]*\[[^\]]+\]:[ \t]*\S.*$`)
)

// parsedReference is a doc reference split into its path components.
// raw keeps the reference text exactly as written, before Self substitution.
type parsedReference struct {
	raw  string
	root string
	path []string
}

// resolvedKind tags the outcome of a reference lookup.
type resolvedKind int

const (
	resolvedType resolvedKind = iota
	resolvedProperty
	resolvedParent
	unresolved
)

type resolvedReference struct {
	kind resolvedKind
	// typeName is the declaration-cased target type (resolvedType,
	// resolvedProperty, resolvedParent).
	typeName string
	// propertyName is the property-cased member (resolvedProperty).
	propertyName string
	// originalText is the unmodified reference path (resolvedParent,
	// unresolved).
	originalText string
}

// docResolver rewrites doc-comment cross-references into Pkl documentation
// links against a fixed type graph. current names the type being rendered,
// for Self resolution.
type docResolver struct {
	types   *schema.TypeMap
	current string
}

// resolve rewrites every reference notation in text. It is idempotent:
// running it on its own output yields the same text.
func (r *docResolver) resolve(text string) string {
	if text == "" || !strings.Contains(text, "[") {
		return text
	}

	// [X]: target definition lines are never rendered; they must go before
	// the reference passes rewrite their left-hand side.
	text = strings.TrimSpace(refDefRe.ReplaceAllString(text, ""))

	// [`X`]
	out := backtickRefRe.ReplaceAllStringFunc(text, func(m string) string {
		ref := backtickRefRe.FindStringSubmatch(m)[1]
		return r.link(r.lookup(r.parse(ref)), "")
	})

	// [X] not followed by ( or [
	out = simpleRefRe.ReplaceAllStringFunc(out, func(m string) string {
		groups := simpleRefRe.FindStringSubmatch(m)
		if groups[2] != "" {
			return m // the text half of a link form; later passes handle it
		}
		return r.link(r.lookup(r.parse(groups[1])), "")
	})

	// [text](`X`)
	out = linkBacktickRe.ReplaceAllStringFunc(out, func(m string) string {
		groups := linkBacktickRe.FindStringSubmatch(m)
		return r.link(r.lookup(r.parse(groups[2])), groups[1])
	})

	// [text](X)
	out = linkRe.ReplaceAllStringFunc(out, func(m string) string {
		groups := linkRe.FindStringSubmatch(m)
		if strings.Contains(groups[2], "://") {
			return m // a real hyperlink, not a type reference
		}
		return r.link(r.lookup(r.parse(groups[2])), groups[1])
	})

	// [text][X]
	out = refStyleRe.ReplaceAllStringFunc(out, func(m string) string {
		groups := refStyleRe.FindStringSubmatch(m)
		return r.link(r.lookup(r.parse(groups[2])), groups[1])
	})

	return out
}

// parse splits a reference like "Count::Two" into root and member path.
// "Self"/"self" resolves to the type currently being rendered. A dotted path
// with no "::" separator is accepted too, so already-rendered links
// (Type.property) re-resolve to themselves.
func (r *docResolver) parse(ref string) parsedReference {
	parts := strings.Split(ref, "::")
	if len(parts) == 1 && strings.Contains(ref, ".") {
		parts = strings.SplitN(ref, ".", 2)
	}

	root := parts[0]
	if root == "Self" || root == "self" {
		root = r.current
		if root == "" {
			root = unknownTypeName
		}
	}

	return parsedReference{raw: ref, root: root, path: parts[1:]}
}

// lookup resolves a parsed reference against the graph, falling back
// progressively: full path, then the root type alone, then unresolved.
func (r *docResolver) lookup(ref parsedReference) resolvedReference {
	original := ref.raw

	if len(ref.path) == 0 {
		if name, ok := r.lookupType(ref.root); ok {
			return resolvedReference{kind: resolvedType, typeName: ToPascalCase(name)}
		}
		return resolvedReference{kind: unresolved, originalText: original}
	}

	if name, target, ok := r.lookupProperty(ref.root, ref.path); ok {
		return resolvedReference{
			kind:         resolvedProperty,
			typeName:     ToPascalCase(name),
			propertyName: target,
			originalText: original,
		}
	}

	// Member lookup failed (or the root is an enum): fall back to the root
	// type, keeping the original path as display text.
	if name, ok := r.lookupType(ref.root); ok {
		return resolvedReference{
			kind:         resolvedParent,
			typeName:     ToPascalCase(name),
			originalText: original,
		}
	}

	return resolvedReference{kind: unresolved, originalText: original}
}

// lookupType finds a graph entry by exact name or by its declaration-cased
// form, so rendered links remain resolvable.
func (r *docResolver) lookupType(name string) (string, bool) {
	if r.types == nil {
		return "", false
	}
	if r.types.Has(name) {
		return name, true
	}
	for _, n := range r.types.Names() {
		if ToPascalCase(n) == name {
			return n, true
		}
	}
	return "", false
}

// lookupProperty resolves a single-level member path within a struct.
// Deeper paths are not resolved and fall back to the parent type.
func (r *docResolver) lookupProperty(root string, path []string) (typeName, propertyName string, ok bool) {
	if len(path) != 1 {
		return "", "", false
	}
	name, found := r.lookupType(root)
	if !found {
		return "", "", false
	}
	s, _ := r.types.Get(name)
	if s == nil {
		return "", "", false
	}
	st, isStruct := s.Type.(*schema.StructType)
	if !isStruct {
		return "", "", false
	}
	for _, f := range st.Fields {
		if f.Name == path[0] || ToCamelCase(f.Name) == path[0] {
			return name, ToCamelCase(f.Name), true
		}
	}
	return "", "", false
}

// link renders a resolved reference as a Pkl documentation link. Unresolved
// references degrade to plain text.
func (r *docResolver) link(res resolvedReference, display string) string {
	switch res.kind {
	case resolvedType:
		if display == "" {
			display = res.typeName
		}
		return "[" + display + "](" + res.typeName + ")"
	case resolvedProperty:
		target := res.typeName + "." + res.propertyName
		if display == "" {
			display = res.originalText
		}
		return "[" + display + "](" + target + ")"
	case resolvedParent:
		if display == "" {
			display = res.originalText
		}
		return "[" + display + "](" + res.typeName + ")"
	default:
		if display == "" {
			display = res.originalText
		}
		return display
	}
}
