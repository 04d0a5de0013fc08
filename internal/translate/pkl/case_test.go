// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pkl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"retry_count", "RetryCount"},
		{"log-level", "LogLevel"},
		{"name", "Name"},
		{"RetryCount", "RetryCount"},
		{"a_b_c", "ABC"},
		{"", ""},
		{"_leading", "Leading"},
		{"trailing_", "Trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.in))
		})
	}
}

func TestToPascalCase_FixedPoint(t *testing.T) {
	inputs := []string{"retry_count", "log-level", "Already", "mixedCase_name"}
	for _, in := range inputs {
		once := ToPascalCase(in)
		assert.Equal(t, once, ToPascalCase(once), "input %q", in)
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"retry_count", "retryCount"},
		{"log-level", "logLevel"},
		{"RetryCount", "retryCount"},
		{"name", "name"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCamelCase(tt.in))
		})
	}
}

func TestToCamelCase_FixedPoint(t *testing.T) {
	inputs := []string{"retry_count", "logLevel", "name"}
	for _, in := range inputs {
		once := ToCamelCase(in)
		assert.Equal(t, once, ToCamelCase(once), "input %q", in)
	}
}

func TestEscapeName(t *testing.T) {
	assert.Equal(t, "`default`", escapeName("default"))
	assert.Equal(t, "`class`", escapeName("class"))
	assert.Equal(t, "`open`", escapeName("open"))
	assert.Equal(t, "port", escapeName("port"))
}
