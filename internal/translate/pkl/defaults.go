// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pkl

import (
	"strconv"
	"strings"

	"github.com/dacolabs/pklgen/internal/schema"
)

// maxExamples caps how many example literals a single node contributes to its
// documentation.
const maxExamples = 3

// defaultFor derives the literal used for a `= value` suffix, or "" when the
// node carries no default. Precedence: first enumeration value, then an
// explicit numeric bound, then the declared default, then an empty-collection
// literal for arrays and objects.
func defaultFor(s *schema.Schema, declared *schema.LiteralValue) string {
	switch t := s.Type.(type) {
	case *schema.BooleanType:
		if declared != nil {
			return declared.String()
		}
		if t.Default != nil {
			return strconv.FormatBool(*t.Default)
		}
	case *schema.IntegerType:
		if len(t.EnumValues) > 0 {
			return strconv.FormatInt(t.EnumValues[0], 10)
		}
		if v := intStr(t.Minimum); v != "" {
			return v
		}
		if v := intStr(t.Maximum); v != "" {
			return v
		}
		if declared != nil {
			return declared.String()
		}
		if t.Default != nil {
			return strconv.FormatInt(*t.Default, 10)
		}
	case *schema.FloatType:
		if len(t.EnumValues) > 0 {
			return strconv.FormatFloat(t.EnumValues[0], 'g', -1, 64)
		}
		if v := floatStr(t.Minimum); v != "" {
			return v
		}
		if v := floatStr(t.Maximum); v != "" {
			return v
		}
		if declared != nil {
			return declared.String()
		}
		if t.Default != nil {
			return strconv.FormatFloat(*t.Default, 'g', -1, 64)
		}
	case *schema.StringType:
		if len(t.EnumValues) > 0 {
			return strconv.Quote(t.EnumValues[0])
		}
		if declared != nil {
			return declared.String()
		}
		if t.Default != nil {
			return strconv.Quote(*t.Default)
		}
	case *schema.ArrayType:
		if declared != nil || t.HasDefault {
			return "new Listing {}"
		}
	case *schema.ObjectType:
		if declared != nil || t.HasDefault {
			return "new Mapping {}"
		}
	case *schema.EnumType:
		if t.Default != nil {
			return t.Default.String()
		}
		if declared != nil {
			return declared.String()
		}
	}
	return ""
}

// formatExamples maps recognized string formats to a realistic sample value.
var formatExamples = map[string]string{
	"email":     `"user@example.com"`,
	"uri":       `"https://example.com"`,
	"url":       `"https://example.com"`,
	"uuid":      `"123e4567-e89b-12d3-a456-426614174000"`,
	"ipv4":      `"192.168.1.1"`,
	"hostname":  `"host.example.com"`,
	"date":      `"2024-01-15"`,
	"date-time": `"2024-01-15T09:30:00Z"`,
	"duration":  "5.min",
	"data-size": "512.mb",
	"datasize":  "512.mb",
}

// examplesFor returns up to maxExamples illustrative literals for a node,
// used in generated documentation.
func examplesFor(s *schema.Schema) []string {
	var out []string

	switch t := s.Type.(type) {
	case *schema.StringType:
		if len(t.EnumValues) > 0 {
			for _, v := range t.EnumValues {
				out = append(out, strconv.Quote(v))
			}
			break
		}
		if t.Format != "" {
			if ex, ok := formatExamples[strings.ToLower(t.Format)]; ok {
				out = append(out, ex)
			}
		}
	case *schema.IntegerType:
		if len(t.EnumValues) > 0 {
			for _, v := range t.EnumValues {
				out = append(out, strconv.FormatInt(v, 10))
			}
			break
		}
		if t.Minimum != nil {
			out = append(out, strconv.FormatInt(*t.Minimum, 10))
		}
		if t.Maximum != nil {
			out = append(out, strconv.FormatInt(*t.Maximum, 10))
		}
	case *schema.FloatType:
		if len(t.EnumValues) > 0 {
			for _, v := range t.EnumValues {
				out = append(out, strconv.FormatFloat(v, 'g', -1, 64))
			}
			break
		}
		if t.Minimum != nil {
			out = append(out, strconv.FormatFloat(*t.Minimum, 'g', -1, 64))
		}
		if t.Maximum != nil {
			out = append(out, strconv.FormatFloat(*t.Maximum, 'g', -1, 64))
		}
	case *schema.EnumType:
		for _, v := range t.Values {
			out = append(out, v.String())
		}
	}

	if len(out) > maxExamples {
		out = out[:maxExamples]
	}
	return out
}
