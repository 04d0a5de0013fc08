// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate provides schema translation utilities.
package translate

import (
	"fmt"
	"sort"

	"github.com/dacolabs/pklgen/internal/schema"
)

// Request is the complete input passed to a translator.
type Request struct {
	// ModuleName names the output module; defaults to the root type name.
	ModuleName string
	// Types is the schema graph. It is read-only during translation and may
	// be shared across concurrent translations.
	Types *schema.TypeMap
	// Options carries translator-specific render options.
	Options any
}

// Output is a translator's result.
type Output struct {
	// Data is the generated source text.
	Data []byte
	// Warnings are non-fatal problems found during translation.
	Warnings []string
}

// Translator defines the interface all format translators must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "pkl")
	Name() string

	// Translate converts a schema graph to the target format.
	Translate(req Request) (*Output, error)

	// FileExtension returns the appropriate file extension (e.g., ".pkl")
	FileExtension() string
}

var translators = make(map[string]Translator)

// Register adds a translator to the registry.
func Register(t Translator) {
	translators[t.Name()] = t
}

// Get retrieves a translator by name.
func Get(name string) (Translator, error) {
	t, ok := translators[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func Available() []string {
	names := make([]string, 0, len(translators))
	for name := range translators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
