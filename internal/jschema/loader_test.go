// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_JSON(t *testing.T) {
	fsys := fstest.MapFS{
		"schema.json": {Data: []byte(`{
			"type": "object",
			"properties": {
				"zeta": {"type": "string"},
				"alpha": {"type": "integer"}
			}
		}`)},
	}

	doc, err := NewLoader(fsys).LoadFile("schema.json")
	require.NoError(t, err)
	assert.Equal(t, "object", doc.Schema.Type)
	assert.Len(t, doc.Schema.Properties, 2)
	// Document order survives even though the schema stores a map.
	assert.Equal(t, []string{"zeta", "alpha"}, doc.KeyOrder["properties"])
}

func TestLoadFile_YAML(t *testing.T) {
	fsys := fstest.MapFS{
		"schema.yaml": {Data: []byte(`
type: object
properties:
  zeta:
    type: string
  alpha:
    type: integer
`)},
	}

	doc, err := NewLoader(fsys).LoadFile("schema.yaml")
	require.NoError(t, err)
	assert.Equal(t, "object", doc.Schema.Type)
	assert.Equal(t, []string{"zeta", "alpha"}, doc.KeyOrder["properties"])
}

func TestLoadFile_UnsupportedFormat(t *testing.T) {
	fsys := fstest.MapFS{
		"schema.toml": {Data: []byte("type = 'object'")},
	}

	_, err := NewLoader(fsys).LoadFile("schema.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format not supported")
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := NewLoader(fstest.MapFS{}).LoadFile("missing.json")
	assert.Error(t, err)
}

func TestLoadFile_MalformedJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"schema.json": {Data: []byte(`{"type": `)},
	}
	_, err := NewLoader(fsys).LoadFile("schema.json")
	assert.Error(t, err)
}

func TestResolveRefs(t *testing.T) {
	fsys := fstest.MapFS{
		"schema.json": {Data: []byte(`{
			"type": "object",
			"properties": {
				"address": {"$ref": "defs/address.json"},
				"name": {"$ref": "#/$defs/name"}
			},
			"$defs": {
				"name": {"type": "string"}
			}
		}`)},
		"defs/address.json": {Data: []byte(`{
			"type": "object",
			"properties": {
				"country": {"$ref": "country.json"}
			}
		}`)},
		"defs/country.json": {Data: []byte(`{"type": "string"}`)},
	}

	loader := NewLoader(fsys)
	doc, err := loader.LoadFile("schema.json")
	require.NoError(t, err)
	require.NoError(t, loader.ResolveRefs(doc, "."))

	// The external ref is replaced by the loaded schema, transitively.
	address := doc.Schema.Properties["address"]
	require.NotNil(t, address)
	assert.Empty(t, address.Ref)
	assert.Equal(t, "object", address.Type)
	country := address.Properties["country"]
	require.NotNil(t, country)
	assert.Equal(t, "string", country.Type)

	// Internal refs stay untouched.
	assert.Equal(t, "#/$defs/name", doc.Schema.Properties["name"].Ref)
}

func TestResolveRefs_CircularFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": {Data: []byte(`{
			"type": "object",
			"properties": {"b": {"$ref": "b.json"}}
		}`)},
		"b.json": {Data: []byte(`{
			"type": "object",
			"properties": {"a": {"$ref": "a.json"}}
		}`)},
	}

	loader := NewLoader(fsys)
	doc, err := loader.LoadFile("a.json")
	require.NoError(t, err)

	err = loader.ResolveRefs(doc, ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular schema reference")
}

func TestResolveRefs_MissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		"schema.json": {Data: []byte(`{
			"type": "object",
			"properties": {"x": {"$ref": "missing.json"}}
		}`)},
	}

	loader := NewLoader(fsys)
	doc, err := loader.LoadFile("schema.json")
	require.NoError(t, err)
	assert.Error(t, loader.ResolveRefs(doc, "."))
}
