// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFileRef(t *testing.T) {
	assert.True(t, IsFileRef("address.json"))
	assert.True(t, IsFileRef("defs/address.json"))
	assert.False(t, IsFileRef("#/$defs/address"))
	assert.False(t, IsFileRef(""))
}

func TestExtractKeyOrder(t *testing.T) {
	raw := []byte(`{
		"type": "object",
		"properties": {
			"zeta": {"type": "string"},
			"alpha": {
				"type": "object",
				"properties": {
					"b": {"type": "string"},
					"a": {"type": "string"}
				}
			}
		},
		"$defs": {
			"address": {
				"type": "object",
				"properties": {
					"street": {"type": "string"},
					"city": {"type": "string"}
				}
			}
		}
	}`)

	order := ExtractKeyOrder(raw)
	assert.Equal(t, []string{"zeta", "alpha"}, order["properties"])
	assert.Equal(t, []string{"b", "a"}, order["properties.alpha.properties"])
	assert.Equal(t, []string{"street", "city"}, order["$defs.address.properties"])
}

func TestExtractKeyOrder_MalformedInput(t *testing.T) {
	assert.Empty(t, ExtractKeyOrder([]byte(`{"properties": `)))
	assert.Empty(t, ExtractKeyOrder([]byte(`"just a string"`)))
}

func TestExtractKeyOrderFromYAML(t *testing.T) {
	raw := []byte(`
type: object
properties:
  zeta:
    type: string
  alpha:
    type: object
    properties:
      b:
        type: string
      a:
        type: string
`)

	order, err := ExtractKeyOrderFromYAML(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha"}, order["properties"])
	assert.Equal(t, []string{"b", "a"}, order["properties.alpha.properties"])
}

func TestExtractKeyOrderFromYAML_Invalid(t *testing.T) {
	_, err := ExtractKeyOrderFromYAML([]byte("a: [unclosed"))
	assert.Error(t, err)
}
