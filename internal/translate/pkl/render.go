// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package pkl renders a schema graph as Pkl source text.
package pkl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dacolabs/pklgen/internal/schema"
)

// Renderer renders schema graphs as Pkl modules. A Renderer is stateless and
// safe for concurrent use; each Render call owns its own pass state.
type Renderer struct {
	opts Options
}

// New returns a Renderer with the given options.
func New(opts Options) *Renderer {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	return &Renderer{opts: opts}
}

// Result is the outcome of one render pass.
type Result struct {
	// Output is the complete Pkl module text.
	Output string
	// Diagnostics records declarations that were replaced by fallbacks and
	// references that could not be resolved.
	Diagnostics []Diagnostic
}

// Render produces a Pkl module for the given type graph. Malformed
// declarations degrade to fallbacks recorded as diagnostics; only
// cross-cutting problems return an error.
func (r *Renderer) Render(types *schema.TypeMap) (*Result, error) {
	if types == nil {
		types = schema.NewTypeMap()
	}
	// Excluded names disappear before rendering begins, both from the output
	// and as doc-reference resolution targets.
	working := types.Without(r.opts.ExcludeProperties...)
	st := newRenderState(r.opts, working)

	// The root type is the first graph entry; ModuleName only renames the
	// module declaration.
	rootName := ""
	if working.Len() > 0 {
		rootName = working.Names()[0]
	}
	displayName := r.opts.ModuleName
	if displayName == "" {
		displayName = rootName
	}
	if displayName == "" {
		displayName = "Config"
	}

	rootProps := st.renderRoot(rootName, working)
	classes := st.renderClasses(rootName, working)

	var parts []string

	if len(r.opts.Headers) > 0 {
		parts = append(parts, blockComment(strings.Join(r.opts.Headers, "\n")))
	}

	if r.opts.IncludeDocs {
		if root, ok := working.Get(rootName); ok && root.Description != "" {
			st.docs.current = rootName
			parts = append(parts, docComment(st.docs.resolve(root.Description), ""))
			st.docs.current = ""
		}
	}

	moduleLine := "module " + escapeName(ToPascalCase(displayName))
	if r.opts.OpenModule == Open {
		moduleLine = "open " + moduleLine
	}
	if r.opts.ExtendFrom != "" {
		moduleLine += "\n\nextends \"" + r.opts.ExtendFrom + "\""
	}
	parts = append(parts, moduleLine)

	if imports := importBlock(r.opts.Imports); imports != "" {
		parts = append(parts, imports)
	}

	if aliases := st.aliasSection(); aliases != "" {
		parts = append(parts, aliases)
	}

	if rootProps != "" {
		parts = append(parts, rootProps)
	}

	parts = append(parts, classes...)

	for _, footer := range r.opts.Footers {
		if footer = strings.TrimSpace(footer); footer != "" {
			parts = append(parts, footer)
		}
	}

	st.reportDanglingRefs()

	return &Result{
		Output:      strings.Join(parts, "\n\n") + "\n",
		Diagnostics: st.diags,
	}, nil
}

// renderRoot renders the root declaration's own properties. When the root is
// translated as a class (or is not a struct), the module body holds either
// nothing or a single value property.
func (st *renderState) renderRoot(rootName string, types *schema.TypeMap) string {
	root, ok := types.Get(rootName)
	if !ok || root == nil {
		return ""
	}

	st.docs.current = rootName
	defer func() { st.docs.current = "" }()

	structType, isStruct := root.Type.(*schema.StructType)
	if !isStruct || st.opts.RootTranslation == RootClass {
		if isStruct {
			return "" // the root struct renders with the other classes
		}
		typ, err := st.renderType(root)
		if err != nil {
			st.fail(rootName, err)
			return ""
		}
		return "value: " + typ
	}

	props, err := st.renderProperties(structType, "")
	if err != nil {
		st.fail(rootName, err)
		return ""
	}
	return props
}

// renderClasses renders every non-root named type: structs as classes,
// everything else as typealiases. A declaration that fails renders as an
// unknown-typed fallback and is recorded as a diagnostic.
func (st *renderState) renderClasses(rootName string, types *schema.TypeMap) []string {
	var out []string
	for name, s := range types.All() {
		if s == nil {
			continue
		}
		if name == rootName {
			structType, isStruct := s.Type.(*schema.StructType)
			if !isStruct || st.opts.RootTranslation != RootClass {
				continue
			}
			decl, err := st.renderClass(name, s, structType)
			if err != nil {
				st.fail(name, err)
				out = append(out, fallbackDecl(name))
				continue
			}
			out = append(out, decl)
			continue
		}

		if s.Deprecated != "" && !st.opts.IncludeDeprecated {
			continue
		}

		switch t := s.Type.(type) {
		case *schema.StructType:
			decl, err := st.renderClass(name, s, t)
			if err != nil {
				st.fail(name, err)
				out = append(out, fallbackDecl(name))
				continue
			}
			out = append(out, decl)
		default:
			if err := st.renderNamedAlias(name, s); err != nil {
				st.fail(name, err)
				out = append(out, fallbackDecl(name))
			}
		}
	}
	return out
}

// aliasSection emits the typealiases synthesized during the pass, in the
// order they were registered. Aliases originating from named types carry
// their documentation; hoisted anonymous aliases render bare.
func (st *renderState) aliasSection() string {
	if st.aliases.len() == 0 {
		return ""
	}
	var decls []string
	for _, name := range st.aliases.names {
		if decl, ok := st.aliasDecls[name]; ok {
			decls = append(decls, decl)
			continue
		}
		decls = append(decls, "typealias "+name+" = "+st.aliases.body[name])
	}
	return strings.Join(decls, "\n\n")
}

// fail records a declaration-level failure; the declaration degrades to a
// fallback instead of aborting its siblings.
func (st *renderState) fail(name string, err error) {
	st.diags = append(st.diags, Diagnostic{
		Severity: SeverityError,
		TypeName: name,
		Message:  err.Error(),
	})
}

// reportDanglingRefs warns about references that name no graph entry. They
// render best-effort as type names, which may not exist in the output.
func (st *renderState) reportDanglingRefs() {
	var dangling []string
	for name := range st.refs {
		if !st.types.Has(name) {
			dangling = append(dangling, name)
		}
	}
	sort.Strings(dangling)
	for _, name := range dangling {
		st.diags = append(st.diags, Diagnostic{
			Severity: SeverityWarning,
			TypeName: name,
			Message:  fmt.Sprintf("reference %q does not name a known type", name),
		})
	}
}

// fallbackDecl replaces a declaration that could not be rendered without
// aborting its siblings.
func fallbackDecl(name string) string {
	return "typealias " + ToPascalCase(name) + " = unknown"
}

// importBlock formats import statements, accepting both bare URIs and
// already-formatted import lines.
func importBlock(imports []string) string {
	if len(imports) == 0 {
		return ""
	}
	lines := make([]string, 0, len(imports))
	for _, imp := range imports {
		imp = strings.TrimSpace(imp)
		if imp == "" {
			continue
		}
		if strings.HasPrefix(imp, "import ") && strings.ContainsAny(imp, `"'`) {
			lines = append(lines, imp)
			continue
		}
		imp = strings.NewReplacer(`"`, "", "'", "").Replace(imp)
		lines = append(lines, `import "`+imp+`"`)
	}
	return strings.Join(lines, "\n")
}
