// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema provides JSON Schema loading, parsing, and conversion
// into the named-type graph.
package jschema

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// IsFileRef returns true if ref is an external file reference.
// File refs do not start with "#/".
func IsFileRef(ref string) bool {
	return ref != "" && !strings.HasPrefix(ref, "#/")
}

// ExtractKeyOrder parses raw JSON and extracts the order of keys for all "properties" objects.
// Returns a map from JSON path (e.g., "properties", "$defs.address.properties") to ordered keys.
func ExtractKeyOrder(rawJSON []byte) map[string][]string {
	result := make(map[string][]string)

	var extract func(dec *json.Decoder, path string)
	extract = func(dec *json.Decoder, path string) {
		token, err := dec.Token()
		if err != nil {
			return
		}
		t, ok := token.(json.Delim)
		if !ok {
			return
		}
		if t == '{' {
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return
				}
				key, ok := keyToken.(string)
				if !ok {
					continue
				}
				keys = append(keys, key)

				newPath := key
				if path != "" {
					newPath = path + "." + key
				}
				extract(dec, newPath)
			}
			// Consume the closing brace
			_, _ = dec.Token()

			if strings.HasSuffix(path, "properties") || path == "properties" {
				result[path] = keys
			}
		} else if t == '[' {
			for dec.More() {
				extract(dec, path)
			}
			// Consume the closing bracket
			_, _ = dec.Token()
		}
	}

	dec := json.NewDecoder(strings.NewReader(string(rawJSON)))
	extract(dec, "")

	return result
}

// ExtractKeyOrderFromYAML walks a YAML document and extracts the order of
// keys for all "properties" mappings, using the same path convention as
// ExtractKeyOrder.
func ExtractKeyOrderFromYAML(data []byte) (map[string][]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	result := make(map[string][]string)

	var walk func(n *yaml.Node, path string)
	walk = func(n *yaml.Node, path string) {
		switch n.Kind {
		case yaml.DocumentNode:
			for _, c := range n.Content {
				walk(c, path)
			}
		case yaml.MappingNode:
			var keys []string
			for i := 0; i+1 < len(n.Content); i += 2 {
				key := n.Content[i].Value
				keys = append(keys, key)

				newPath := key
				if path != "" {
					newPath = path + "." + key
				}
				walk(n.Content[i+1], newPath)
			}
			if strings.HasSuffix(path, "properties") || path == "properties" {
				result[path] = keys
			}
		case yaml.SequenceNode:
			for _, c := range n.Content {
				walk(c, path)
			}
		}
	}
	walk(&root, "")

	return result, nil
}
