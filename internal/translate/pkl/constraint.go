// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pkl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dacolabs/pklgen/internal/schema"
)

// formatConstraints maps recognized string formats to Pkl boolean expressions.
// These are heuristics: cheap checks the Pkl evaluator can run inline.
var formatConstraints = map[string]string{
	"email": `contains("@")`,
	"uri":   `startsWith("http")`,
	"url":   `startsWith("http")`,
	"uuid":  `matches(Regex(#"^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$"#))`,
	"ipv4":  `matches(Regex(#"^((25[0-5]|(2[0-4]|1\d|[1-9]|)\d)\.?\b){4}$"#))`,
}

// constraintFor synthesizes the constraint suffix for a node: a single
// parenthesized group of ANDed clauses, or "" when none apply.
// boundsInType suppresses inclusive numeric bound clauses when the bounds are
// already expressed through the type choice (e.g. UInt8).
func constraintFor(s *schema.Schema, boundsInType bool) string {
	var clauses []string

	switch t := s.Type.(type) {
	case *schema.IntegerType:
		clauses = numberClauses(
			intStr(t.Minimum), intStr(t.Maximum),
			intStr(t.ExclusiveMinimum), intStr(t.ExclusiveMaximum),
			intStr(t.MultipleOf), boundsInType)
	case *schema.FloatType:
		clauses = numberClauses(
			floatStr(t.Minimum), floatStr(t.Maximum),
			floatStr(t.ExclusiveMinimum), floatStr(t.ExclusiveMaximum),
			floatStr(t.MultipleOf), boundsInType)
	case *schema.StringType:
		clauses = stringClauses(t)
	case *schema.ArrayType:
		clauses = collectionClauses(t.MinLength, t.MaxLength)
		if t.Unique {
			clauses = append(clauses, "this.isDistinct")
		}
		clauses = collapseSingle(clauses, t.MinLength, t.MaxLength, s.Optional)
	case *schema.ObjectType:
		clauses = collectionClauses(t.MinLength, t.MaxLength)
		if len(t.Required) > 0 {
			quoted := make([]string, len(t.Required))
			for i, k := range t.Required {
				quoted[i] = strconv.Quote(k)
			}
			clauses = append(clauses,
				fmt.Sprintf("List(%s).every((k) -> this.containsKey(k))", strings.Join(quoted, ", ")))
		}
	default:
		return ""
	}

	if len(clauses) == 0 {
		return ""
	}
	return "(" + strings.Join(clauses, " && ") + ")"
}

// numberClauses builds clauses for numeric bounds. Inclusive bounds collapse
// into one isBetween clause when both are present; exclusive bounds always
// emit strict inequalities.
func numberClauses(min, max, exMin, exMax, multipleOf string, boundsInType bool) []string {
	var clauses []string

	if !boundsInType {
		switch {
		case min != "" && max != "":
			clauses = append(clauses, fmt.Sprintf("isBetween(%s, %s)", min, max))
		case min != "":
			clauses = append(clauses, "this >= "+min)
		case max != "":
			clauses = append(clauses, "this <= "+max)
		}
	}

	if exMin != "" {
		clauses = append(clauses, "this > "+exMin)
	}
	if exMax != "" {
		clauses = append(clauses, "this < "+exMax)
	}
	if multipleOf != "" {
		clauses = append(clauses, fmt.Sprintf("this %% %s == 0", multipleOf))
	}
	return clauses
}

func stringClauses(t *schema.StringType) []string {
	var clauses []string

	switch {
	case t.MinLength != nil && t.MaxLength != nil:
		clauses = append(clauses, fmt.Sprintf("this.length.isBetween(%d, %d)", *t.MinLength, *t.MaxLength))
	case t.MinLength != nil && *t.MinLength > 1:
		clauses = append(clauses, fmt.Sprintf("this.length >= %d", *t.MinLength))
	case t.MaxLength != nil:
		clauses = append(clauses, fmt.Sprintf("this.length <= %d", *t.MaxLength))
	}

	if t.Pattern != "" {
		clauses = append(clauses, "matches(Regex("+regexLiteral(t.Pattern)+"))")
	}

	if t.Format != "" {
		if c, ok := formatConstraints[strings.ToLower(t.Format)]; ok {
			clauses = append(clauses, c)
		}
	}

	// A bare minLength of 1 means "not empty"; skip it when a length clause
	// already subsumes it.
	if t.MinLength != nil && *t.MinLength == 1 && !anyContains(clauses, "length") {
		clauses = append(clauses, "!isBlank")
	}

	return clauses
}

func collectionClauses(minLen, maxLen *int) []string {
	var clauses []string
	switch {
	case minLen != nil && maxLen != nil:
		clauses = append(clauses, fmt.Sprintf("this.length.isBetween(%d, %d)", *minLen, *maxLen))
	case minLen != nil:
		clauses = append(clauses, fmt.Sprintf("this.length >= %d", *minLen))
	case maxLen != nil:
		clauses = append(clauses, fmt.Sprintf("this.length <= %d", *maxLen))
	}
	return clauses
}

// collapseSingle rewrites exact-one and at-most-one length bounds into Pkl's
// single / singleOrNull idioms.
func collapseSingle(clauses []string, minLen, maxLen *int, optional bool) []string {
	if minLen != nil && maxLen != nil && *minLen == 1 && *maxLen == 1 {
		return []string{"this.single"}
	}
	if maxLen != nil && *maxLen == 1 && minLen == nil {
		kept := clauses[:0]
		for _, c := range clauses {
			if !strings.Contains(c, "length") {
				kept = append(kept, c)
			}
		}
		if optional {
			return append(kept, "this.singleOrNull")
		}
		return append(kept, "this.single")
	}
	return clauses
}

// regexLiteral wraps a pattern in a custom-delimiter string literal, widening
// the delimiter until the closing sequence cannot occur inside the pattern.
func regexLiteral(pattern string) string {
	hashes := "#"
	for strings.Contains(pattern, `"`+hashes) {
		hashes += "#"
	}
	return hashes + `"` + pattern + `"` + hashes
}

func anyContains(clauses []string, sub string) bool {
	for _, c := range clauses {
		if strings.Contains(c, sub) {
			return true
		}
	}
	return false
}

func intStr(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func floatStr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
