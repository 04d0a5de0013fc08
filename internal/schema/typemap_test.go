// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeMap_InsertionOrder(t *testing.T) {
	m := NewTypeMap()
	m.Set("config", &Schema{Name: "config"})
	m.Set("address", &Schema{Name: "address"})
	m.Set("port", &Schema{Name: "port"})

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"config", "address", "port"}, m.Names())
}

func TestTypeMap_SetReplaceKeepsOrder(t *testing.T) {
	m := NewTypeMap()
	m.Set("a", &Schema{Name: "a"})
	m.Set("b", &Schema{Name: "b"})
	m.Set("a", &Schema{Name: "a", Description: "replaced"})

	assert.Equal(t, []string{"a", "b"}, m.Names())
	s, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "replaced", s.Description)
}

func TestTypeMap_GetAndHas(t *testing.T) {
	m := NewTypeMap()
	m.Set("config", &Schema{Name: "config"})

	assert.True(t, m.Has("config"))
	assert.False(t, m.Has("missing"))

	s, ok := m.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, s)
}

func TestTypeMap_All(t *testing.T) {
	m := NewTypeMap()
	m.Set("a", &Schema{Name: "a"})
	m.Set("b", &Schema{Name: "b"})

	var names []string
	for name, s := range m.All() {
		names = append(names, name)
		require.NotNil(t, s)
	}
	assert.Equal(t, []string{"a", "b"}, names)

	// Early break stops iteration.
	count := 0
	for range m.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestTypeMap_Without(t *testing.T) {
	m := NewTypeMap()
	m.Set("a", &Schema{Name: "a"})
	m.Set("b", &Schema{Name: "b"})
	m.Set("c", &Schema{Name: "c"})

	out := m.Without("b", "missing")
	assert.Equal(t, []string{"a", "c"}, out.Names())

	// The source map is untouched.
	assert.Equal(t, []string{"a", "b", "c"}, m.Names())

	// Schemas are shared, not cloned.
	orig, _ := m.Get("a")
	kept, _ := out.Get("a")
	assert.Same(t, orig, kept)
}
