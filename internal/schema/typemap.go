// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import "iter"

// TypeMap is an ordered mapping from type name to Schema.
// Names are unique; insertion order is preserved. References elsewhere in the
// graph may name entries that do not exist — consumers must tolerate that.
type TypeMap struct {
	names []string
	index map[string]*Schema
}

// NewTypeMap returns an empty TypeMap.
func NewTypeMap() *TypeMap {
	return &TypeMap{index: make(map[string]*Schema)}
}

// Set inserts or replaces an entry. Insertion order is kept on replace.
func (m *TypeMap) Set(name string, s *Schema) {
	if _, ok := m.index[name]; !ok {
		m.names = append(m.names, name)
	}
	m.index[name] = s
}

// Get returns the schema for name.
func (m *TypeMap) Get(name string) (*Schema, bool) {
	s, ok := m.index[name]
	return s, ok
}

// Has reports whether name is present.
func (m *TypeMap) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Len returns the number of entries.
func (m *TypeMap) Len() int {
	return len(m.names)
}

// Names returns the type names in insertion order.
func (m *TypeMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// All iterates entries in insertion order.
func (m *TypeMap) All() iter.Seq2[string, *Schema] {
	return func(yield func(string, *Schema) bool) {
		for _, name := range m.names {
			if !yield(name, m.index[name]) {
				return
			}
		}
	}
}

// Without returns a copy of the map with the given names removed.
// The underlying schemas are shared, not cloned.
func (m *TypeMap) Without(names ...string) *TypeMap {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	out := NewTypeMap()
	for _, name := range m.names {
		if _, skip := drop[name]; skip {
			continue
		}
		out.Set(name, m.index[name])
	}
	return out
}
