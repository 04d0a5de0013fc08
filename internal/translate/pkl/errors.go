// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pkl

import (
	"fmt"
	"strings"
)

// InvalidOptionError reports an unrecognized option value.
// It is returned at configuration-parse time, before any rendering begins.
type InvalidOptionError struct {
	Option  string
	Value   string
	Allowed []string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid value %q for option %s (allowed: %s)",
		e.Value, e.Option, strings.Join(e.Allowed, ", "))
}

// UnsupportedShapeError reports a schema shape Pkl has no syntax for,
// such as a tuple with more than two items. It is fatal to the single
// declaration being rendered, not to the whole render.
type UnsupportedShapeError struct {
	TypeName string // top-level declaration being rendered, if known
	Shape    string
	Detail   string
}

func (e *UnsupportedShapeError) Error() string {
	msg := fmt.Sprintf("unsupported shape %s: %s", e.Shape, e.Detail)
	if e.TypeName != "" {
		msg = fmt.Sprintf("%s (while rendering %s)", msg, e.TypeName)
	}
	return msg
}

// CycleError reports that the recursion bound was exceeded, which points at
// an indirect reference cycle the by-name lookup could not break.
type CycleError struct {
	TypeName string
	Depth    int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("type nesting exceeds depth %d while rendering %s; the graph likely contains an indirect reference cycle",
		e.Depth, e.TypeName)
}

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic records a recoverable problem found during a render pass.
// Declarations that fail to render are replaced by a fallback and reported
// here instead of aborting the run.
type Diagnostic struct {
	Severity Severity
	TypeName string
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.TypeName, d.Message)
}
