// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// Document is a parsed schema plus the property ordering recovered from the
// raw bytes. jsonschema.Schema keeps properties in a map, so ordering must
// travel alongside it.
type Document struct {
	Schema   *jsonschema.Schema
	KeyOrder map[string][]string
}

func parseDocument(data []byte, filePath string) (*Document, error) {
	var s jsonschema.Schema

	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		jsonData, err := json.Marshal(normalizeYAML(raw))
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(jsonData, &s); err != nil {
			return nil, err
		}
		keyOrder, err := ExtractKeyOrderFromYAML(data)
		if err != nil {
			return nil, err
		}
		return &Document{Schema: &s, KeyOrder: keyOrder}, nil
	case strings.HasSuffix(filePath, ".json"):
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return &Document{Schema: &s, KeyOrder: ExtractKeyOrder(data)}, nil
	default:
		return nil, fmt.Errorf("format not supported")
	}
}

// normalizeYAML converts YAML-decoded values into JSON-compatible ones,
// mapping non-string keys to strings.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}

// Loader loads schemas from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema file.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return parseDocument(data, filePath)
}

// ResolveRefs resolves all external file $refs in the document tree in-place.
// It recursively loads referenced schemas and replaces the ref with the loaded
// content. Internal refs (starting with #/) are left unchanged. Property
// ordering inside externally loaded schemas falls back to sorted order.
// Reference cycles between files are reported as an error.
func (l *Loader) ResolveRefs(doc *Document, basePath string) error {
	return l.resolveRefs(doc, basePath, map[string]bool{})
}

// active holds the file paths currently being resolved on this branch, so a
// chain of files that loops back on itself fails instead of recursing forever.
func (l *Loader) resolveRefs(doc *Document, basePath string, active map[string]bool) error {
	for s := range Traverse(doc.Schema, nil) {
		if !IsFileRef(s.Ref) {
			continue
		}
		refPath := path.Join(basePath, s.Ref)
		if active[refPath] {
			return fmt.Errorf("circular schema reference: %s", refPath)
		}
		loaded, err := l.LoadFile(refPath)
		if err != nil {
			return err
		}
		active[refPath] = true
		if err := l.resolveRefs(loaded, path.Dir(refPath), active); err != nil {
			return err
		}
		delete(active, refPath)
		*s = *loaded.Schema
	}
	return nil
}
