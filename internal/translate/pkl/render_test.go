// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pkl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/pklgen/internal/schema"
)

func appConfigGraph() *schema.TypeMap {
	types := schema.NewTypeMap()
	types.Set("app_config", &schema.Schema{
		Name:        "app_config",
		Description: "Application configuration.",
		Type: &schema.StructType{Fields: []*schema.Field{
			{Name: "name", Schema: &schema.Schema{Type: &schema.StringType{}}},
			{
				Name:     "log_level",
				Schema:   &schema.Schema{Type: &schema.ReferenceType{Name: "log_level"}},
				Optional: boolPtr(true),
			},
			{Name: "server", Schema: &schema.Schema{Type: &schema.ReferenceType{Name: "server"}}},
		}},
	})
	types.Set("log_level", &schema.Schema{
		Name: "log_level",
		Type: &schema.EnumType{Name: "log_level", Values: []schema.LiteralValue{
			schema.StringValue("debug"), schema.StringValue("info"),
		}},
	})
	types.Set("server", &schema.Schema{
		Name: "server",
		Type: &schema.StructType{Fields: []*schema.Field{
			{Name: "port", Schema: &schema.Schema{Type: &schema.IntegerType{}}},
		}},
	})
	return types
}

func TestRender_Module(t *testing.T) {
	res, err := New(DefaultOptions()).Render(appConfigGraph())
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)

	want := `/// Application configuration.

open module AppConfig

typealias LogLevel = "debug"|"info"

name: String

logLevel: LogLevel?

server: Server

open class Server {
  port: Int
}
`
	assert.Equal(t, want, res.Output)
}

func TestRender_ModuleNameOverride(t *testing.T) {
	opts := DefaultOptions()
	opts.ModuleName = "my_app"

	res, err := New(opts).Render(appConfigGraph())
	require.NoError(t, err)
	assert.Contains(t, res.Output, "open module MyApp")
	assert.NotContains(t, res.Output, "AppConfig")
	// The override renames the module declaration only.
	assert.Contains(t, res.Output, "open class Server {")
}

func TestRender_ClosedModule(t *testing.T) {
	opts := DefaultOptions()
	opts.OpenModule = Closed

	res, err := New(opts).Render(appConfigGraph())
	require.NoError(t, err)
	assert.Contains(t, res.Output, "\n\nmodule AppConfig\n\n")
	assert.NotContains(t, res.Output, "open module")
}

func TestRender_RootAsClass(t *testing.T) {
	opts := DefaultOptions()
	opts.RootTranslation = RootClass

	res, err := New(opts).Render(appConfigGraph())
	require.NoError(t, err)
	assert.Contains(t, res.Output, "open module AppConfig")
	assert.Contains(t, res.Output, "open class AppConfig {")
	assert.NotContains(t, res.Output, "\n\nname: String\n\n")
}

func TestRender_NonStructRoot(t *testing.T) {
	types := schema.NewTypeMap()
	types.Set("port", &schema.Schema{Name: "port", Type: &schema.IntegerType{}})

	res, err := New(DefaultOptions()).Render(types)
	require.NoError(t, err)
	assert.Contains(t, res.Output, "open module Port")
	assert.Contains(t, res.Output, "value: Int")
}

func TestRender_EmptyGraph(t *testing.T) {
	res, err := New(DefaultOptions()).Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "open module Config\n", res.Output)
}

func TestRender_HeadersImportsFooters(t *testing.T) {
	opts := DefaultOptions()
	opts.Headers = []string{"Generated. Do not edit."}
	opts.Imports = []string{"pkl:json", `import "pkl:math"`}
	opts.Footers = []string{"// end of module"}
	opts.ExtendFrom = "package://example.com/base@1.0.0#/Base.pkl"

	res, err := New(opts).Render(appConfigGraph())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Output, "/* Generated. Do not edit. */\n\n"))
	assert.Contains(t, res.Output, "extends \"package://example.com/base@1.0.0#/Base.pkl\"")
	assert.Contains(t, res.Output, "import \"pkl:json\"\nimport \"pkl:math\"")
	assert.True(t, strings.HasSuffix(res.Output, "// end of module\n"))
}

func TestRender_ExcludeProperties(t *testing.T) {
	opts := DefaultOptions()
	opts.ExcludeProperties = []string{"server"}

	res, err := New(opts).Render(appConfigGraph())
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)
	assert.NotContains(t, res.Output, "Server")
	assert.NotContains(t, res.Output, "server:")
}

func TestRender_FallbackDeclaration(t *testing.T) {
	str := &schema.Schema{Type: &schema.StringType{}}
	types := appConfigGraph()
	types.Set("window", &schema.Schema{
		Name: "window",
		Type: &schema.TupleType{Items: []*schema.Schema{str, str, str}},
	})

	res, err := New(DefaultOptions()).Render(types)
	require.NoError(t, err)
	assert.Contains(t, res.Output, "typealias Window = unknown")

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, SeverityError, res.Diagnostics[0].Severity)
	assert.Equal(t, "window", res.Diagnostics[0].TypeName)
	assert.Contains(t, res.Diagnostics[0].Message, "unsupported shape tuple")
}

func TestRender_DanglingReference(t *testing.T) {
	types := appConfigGraph()
	root, _ := types.Get("app_config")
	st := root.Type.(*schema.StructType)
	st.Fields = append(st.Fields, &schema.Field{
		Name:   "extra",
		Schema: &schema.Schema{Type: &schema.ReferenceType{Name: "missing"}},
	})

	res, err := New(DefaultOptions()).Render(types)
	require.NoError(t, err)
	assert.Contains(t, res.Output, "extra: Missing")

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, SeverityWarning, res.Diagnostics[0].Severity)
	assert.Equal(t, "missing", res.Diagnostics[0].TypeName)
}

func TestRender_DeprecatedType(t *testing.T) {
	types := appConfigGraph()
	types.Set("old_server", &schema.Schema{
		Name:       "old_server",
		Deprecated: "use server",
		Type:       &schema.StructType{},
	})

	res, err := New(DefaultOptions()).Render(types)
	require.NoError(t, err)
	assert.NotContains(t, res.Output, "OldServer")

	opts := DefaultOptions()
	opts.IncludeDeprecated = true
	res, err = New(opts).Render(types)
	require.NoError(t, err)
	assert.Contains(t, res.Output, "@Deprecated { message = \"use server\" }\nopen class OldServer {}")
}

func TestRender_DocReferencesResolved(t *testing.T) {
	types := appConfigGraph()
	root, _ := types.Get("app_config")
	st := root.Type.(*schema.StructType)
	st.Fields[0].Comment = "Shown next to [`Self::log_level`]."

	res, err := New(DefaultOptions()).Render(types)
	require.NoError(t, err)
	assert.Contains(t, res.Output, "/// Shown next to [Self::log_level](AppConfig.logLevel).")
}

func TestRender_ConcurrentUse(t *testing.T) {
	r := New(DefaultOptions())

	done := make(chan *Result, 4)
	for i := 0; i < 4; i++ {
		go func() {
			res, err := r.Render(appConfigGraph())
			assert.NoError(t, err)
			done <- res
		}()
	}

	first := <-done
	for i := 0; i < 3; i++ {
		assert.Equal(t, first.Output, (<-done).Output)
	}
}
