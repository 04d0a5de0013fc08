// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pkl

import "strings"

// EnumTranslation selects how enum types are rendered.
type EnumTranslation int

const (
	// EnumTypeAlias hoists each enum into a named typealias (idiomatic Pkl).
	EnumTypeAlias EnumTranslation = iota
	// EnumLiteralUnion renders the literal union inline at each use site.
	EnumLiteralUnion
)

// ParseEnumTranslation parses an enum-translation mode string.
func ParseEnumTranslation(s string) (EnumTranslation, error) {
	switch strings.ToLower(s) {
	case "typealias", "alias", "":
		return EnumTypeAlias, nil
	case "literal-union", "literal_union", "union":
		return EnumLiteralUnion, nil
	}
	return 0, &InvalidOptionError{Option: "enum-translation", Value: s, Allowed: []string{"typealias", "literal-union"}}
}

// Openness selects whether classes and the module are declared open.
type Openness int

const (
	Open Openness = iota
	Closed
)

// ParseOpenness parses an openness mode string.
func ParseOpenness(s string) (Openness, error) {
	switch strings.ToLower(s) {
	case "open", "":
		return Open, nil
	case "closed", "no":
		return Closed, nil
	}
	return 0, &InvalidOptionError{Option: "openness", Value: s, Allowed: []string{"open", "closed"}}
}

// RootTranslation selects how the root type is declared.
type RootTranslation int

const (
	// RootModule renders the root struct as a module with top-level properties.
	RootModule RootTranslation = iota
	// RootClass renders the root struct as a class like every other struct.
	RootClass
)

// ParseRootTranslation parses a config-root translation mode string.
func ParseRootTranslation(s string) (RootTranslation, error) {
	switch strings.ToLower(s) {
	case "module", "":
		return RootModule, nil
	case "class":
		return RootClass, nil
	}
	return 0, &InvalidOptionError{Option: "root-translation", Value: s, Allowed: []string{"module", "class"}}
}

// OptionalStyle selects how optional properties are annotated.
type OptionalStyle int

const (
	// OptionalSuffix renders optional properties as `name: Type?`.
	OptionalSuffix OptionalStyle = iota
	// ExplicitNothing renders optional properties as `name: (Type|nothing)`.
	ExplicitNothing
)

// ParseOptionalStyle parses an optional-annotation style string.
func ParseOptionalStyle(s string) (OptionalStyle, error) {
	switch strings.ToLower(s) {
	case "optional", "suffix", "":
		return OptionalSuffix, nil
	case "explicit-nothing", "explicit_nothing", "nothing":
		return ExplicitNothing, nil
	}
	return 0, &InvalidOptionError{Option: "optional-style", Value: s, Allowed: []string{"optional", "explicit-nothing"}}
}

// UnknownOptionality selects how fields without optionality info are treated.
type UnknownOptionality int

const (
	RequireUnknown UnknownOptionality = iota
	OptionalUnknown
)

// ParseUnknownOptionality parses an unknown-optionality default string.
func ParseUnknownOptionality(s string) (UnknownOptionality, error) {
	switch strings.ToLower(s) {
	case "required", "require", "":
		return RequireUnknown, nil
	case "optional":
		return OptionalUnknown, nil
	}
	return 0, &InvalidOptionError{Option: "unknown-optionality", Value: s, Allowed: []string{"required", "optional"}}
}

// Options configures a render pass. A value is immutable once a pass starts.
type Options struct {
	// ModuleName overrides the root type name for the module declaration.
	ModuleName string
	// Indent is the indentation unit. Defaults to two spaces.
	Indent string

	IncludeDocs        bool
	IncludeConstraints bool
	IncludeDefaults    bool
	IncludeExamples    bool
	IncludeDeprecated  bool

	EnumTranslation    EnumTranslation
	OpenModule         Openness
	OpenClasses        Openness
	RootTranslation    RootTranslation
	OptionalStyle      OptionalStyle
	UnknownOptionality UnknownOptionality

	// ExtendFrom is an optional module URI the generated module extends.
	ExtendFrom string
	// Headers are leading comment blocks (without comment syntax).
	Headers []string
	// Footers are trailing text blocks appended verbatim.
	Footers []string
	// Imports are module URIs emitted as import statements.
	Imports []string
	// ExcludeProperties names types and properties omitted from the output
	// and from doc-reference resolution.
	ExcludeProperties []string

	// TypeNames overrides the default Pkl name for a scalar kind. Keys are
	// the default names: "Boolean", "Int", "Number", "String", "Any",
	// "nothing", "unknown".
	TypeNames map[string]string
}

// DefaultOptions returns the option set used when the caller supplies nothing.
func DefaultOptions() Options {
	return Options{
		Indent:             "  ",
		IncludeDocs:        true,
		IncludeConstraints: true,
		IncludeDefaults:    true,
		IncludeExamples:    false,
		IncludeDeprecated:  false,
		EnumTranslation:    EnumTypeAlias,
		OpenModule:         Open,
		OpenClasses:        Open,
		RootTranslation:    RootModule,
		OptionalStyle:      OptionalSuffix,
		UnknownOptionality: RequireUnknown,
	}
}

// typeName returns the configured override for a default scalar name.
func (o *Options) typeName(def string) string {
	if o.TypeNames != nil {
		if override, ok := o.TypeNames[def]; ok && override != "" {
			return override
		}
	}
	return def
}
