// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/pklgen/internal/config"
	"github.com/dacolabs/pklgen/internal/jschema"
	"github.com/dacolabs/pklgen/internal/prompts"
	"github.com/dacolabs/pklgen/internal/schema"
	"github.com/dacolabs/pklgen/internal/translate"
	"github.com/dacolabs/pklgen/internal/translate/pkl"
)

type generateOptions struct {
	schema     string
	output     string
	configPath string
	format     string
	force      bool

	moduleName string
	indent     string
	enums      string
	openness   string
	root       string
	optionals  string
	unknown    string
	extendFrom string

	noComments    bool
	noConstraints bool
	noDefaults    bool
	deprecated    bool
	examples      bool

	headers   []string
	footers   []string
	imports   []string
	exclude   []string
	typeNames map[string]string

	nonInteractive bool
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a configuration module from a JSON Schema",
		Long: fmt.Sprintf(`Generate a configuration module from a JSON Schema file.

Settings are read from pklgen.yaml when present; flags take precedence.

Available formats: %s`, strings.Join(translate.Available(), ", ")),
		Example: `  # Interactive mode
  pklgen generate

  # Generate to stdout
  pklgen generate --schema schema.json

  # Generate a closed module with literal-union enums
  pklgen generate -s schema.yaml -o Config.pkl --openness closed --enums literal-union

  # Amend a parent module
  pklgen generate -s schema.json --extend-from "package://example.com/base@1.0.0#/Base.pkl"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Input schema file (.json, .yaml or .yml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: pklgen.yaml if present)")
	cmd.Flags().StringVar(&opts.format, "format", "pkl", fmt.Sprintf("Output format (%s)", strings.Join(translate.Available(), ", ")))
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite the output file if it exists")

	cmd.Flags().StringVar(&opts.moduleName, "module-name", "", "Module name (default: derived from the schema)")
	cmd.Flags().StringVar(&opts.indent, "indent", "", "Indentation unit (default: two spaces)")
	cmd.Flags().StringVar(&opts.enums, "enums", "", "Enum translation: typealias or literal-union")
	cmd.Flags().StringVar(&opts.openness, "openness", "", "Module and class openness: open or closed")
	cmd.Flags().StringVar(&opts.root, "root", "", "Root translation: module or class")
	cmd.Flags().StringVar(&opts.optionals, "optionals", "", "Optional property style: optional or explicit-nothing")
	cmd.Flags().StringVar(&opts.unknown, "unknown", "", "Fields without optionality info: required or optional")
	cmd.Flags().StringVar(&opts.extendFrom, "extend-from", "", "Module URI the generated module extends")

	cmd.Flags().BoolVar(&opts.noComments, "no-comments", false, "Omit doc comments")
	cmd.Flags().BoolVar(&opts.noConstraints, "no-constraints", false, "Omit type constraints")
	cmd.Flags().BoolVar(&opts.noDefaults, "no-defaults", false, "Omit default values")
	cmd.Flags().BoolVar(&opts.deprecated, "deprecated", false, "Include deprecated properties")
	cmd.Flags().BoolVar(&opts.examples, "examples", false, "Include format examples in doc comments")

	cmd.Flags().StringArrayVar(&opts.headers, "header", nil, "Leading comment block (repeatable)")
	cmd.Flags().StringArrayVar(&opts.footers, "footer", nil, "Trailing text block (repeatable)")
	cmd.Flags().StringArrayVar(&opts.imports, "import", nil, "Module URI to import (repeatable)")
	cmd.Flags().StringArrayVar(&opts.exclude, "exclude", nil, "Type or property to omit (repeatable)")
	cmd.Flags().StringToStringVar(&opts.typeNames, "type-name", nil, "Scalar type name override, e.g. Int=Integer (repeatable)")

	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --schema)")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	if opts.schema == "" {
		opts.schema = cfg.Schema
	}
	if opts.output == "" && !cmd.Flags().Changed("output") {
		opts.output = cfg.Output
	}

	if opts.schema == "" {
		if opts.nonInteractive {
			return errors.New("non-interactive mode requires --schema")
		}
		if err := prompts.RunGenerateForm(&opts.schema, &opts.format, &opts.output, translate.Available()); err != nil {
			return err
		}
	}

	renderOpts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, opts, &renderOpts); err != nil {
		return err
	}

	types, err := loadTypes(opts.schema, renderOpts.ModuleName)
	if err != nil {
		return err
	}

	translator, err := translate.Get(opts.format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			opts.format, strings.Join(translate.Available(), ", "))
	}

	out, err := translator.Translate(translate.Request{
		Types:   types,
		Options: renderOpts,
	})
	if err != nil {
		return err
	}

	prompts.PrintWarnings(out.Warnings)

	if opts.output == "" {
		fmt.Print(string(out.Data))
		return nil
	}

	if _, err := os.Stat(opts.output); err == nil && !opts.force {
		return fmt.Errorf("output file %s already exists (use --force to overwrite)", opts.output)
	}
	if err := os.WriteFile(opts.output, out.Data, 0o600); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Schema", Value: opts.schema},
		{Label: "Output", Value: opts.output},
	}, "Generation completed")
	return nil
}

// loadConfig reads the config file. An explicit path must exist; the default
// pklgen.yaml is optional.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		path = config.DefaultFileName
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &config.Config{Version: config.CurrentConfigVersion}, nil
		}
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyFlags overrides config-file settings with values set on the command line.
func applyFlags(cmd *cobra.Command, opts *generateOptions, renderOpts *pkl.Options) error {
	flags := cmd.Flags()

	if flags.Changed("module-name") {
		renderOpts.ModuleName = opts.moduleName
	}
	if flags.Changed("indent") {
		renderOpts.Indent = opts.indent
	}
	if flags.Changed("extend-from") {
		renderOpts.ExtendFrom = opts.extendFrom
	}

	if flags.Changed("no-comments") {
		renderOpts.IncludeDocs = !opts.noComments
	}
	if flags.Changed("no-constraints") {
		renderOpts.IncludeConstraints = !opts.noConstraints
	}
	if flags.Changed("no-defaults") {
		renderOpts.IncludeDefaults = !opts.noDefaults
	}
	if flags.Changed("deprecated") {
		renderOpts.IncludeDeprecated = opts.deprecated
	}
	if flags.Changed("examples") {
		renderOpts.IncludeExamples = opts.examples
	}

	if flags.Changed("header") {
		renderOpts.Headers = opts.headers
	}
	if flags.Changed("footer") {
		renderOpts.Footers = opts.footers
	}
	if flags.Changed("import") {
		renderOpts.Imports = opts.imports
	}
	if flags.Changed("exclude") {
		renderOpts.ExcludeProperties = opts.exclude
	}
	if flags.Changed("type-name") {
		renderOpts.TypeNames = opts.typeNames
	}

	var err error
	if flags.Changed("enums") {
		if renderOpts.EnumTranslation, err = pkl.ParseEnumTranslation(opts.enums); err != nil {
			return err
		}
	}
	if flags.Changed("openness") {
		open, err := pkl.ParseOpenness(opts.openness)
		if err != nil {
			return err
		}
		renderOpts.OpenModule = open
		renderOpts.OpenClasses = open
	}
	if flags.Changed("root") {
		if renderOpts.RootTranslation, err = pkl.ParseRootTranslation(opts.root); err != nil {
			return err
		}
	}
	if flags.Changed("optionals") {
		if renderOpts.OptionalStyle, err = pkl.ParseOptionalStyle(opts.optionals); err != nil {
			return err
		}
	}
	if flags.Changed("unknown") {
		if renderOpts.UnknownOptionality, err = pkl.ParseUnknownOptionality(opts.unknown); err != nil {
			return err
		}
	}
	return nil
}

// loadTypes reads a schema file, resolves external file refs relative to its
// directory, and builds the named-type graph.
func loadTypes(schemaPath, moduleName string) (*schema.TypeMap, error) {
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, err
	}
	dir, base := filepath.Split(abs)

	loader := jschema.NewLoader(os.DirFS(dir))
	doc, err := loader.LoadFile(base)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}
	if err := loader.ResolveRefs(doc, "."); err != nil {
		return nil, fmt.Errorf("failed to resolve schema refs: %w", err)
	}

	rootName := moduleName
	if rootName == "" {
		rootName = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return jschema.Build(rootName, doc)
}
