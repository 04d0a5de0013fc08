// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles pklgen project configuration.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/pklgen/internal/translate/pkl"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// DefaultFileName is the config file pklgen looks for in the working directory.
const DefaultFileName = "pklgen.yaml"

// Config represents the pklgen.yaml project configuration file.
// Every field mirrors a generate flag; flags take precedence when set.
type Config struct {
	Version int `yaml:"version"`

	// Schema is the default input schema path.
	Schema string `yaml:"schema,omitempty"`
	// Output is the default output file path.
	Output string `yaml:"output,omitempty"`

	ModuleName string `yaml:"moduleName,omitempty"`
	Indent     string `yaml:"indent,omitempty"`

	Enums      string `yaml:"enums,omitempty"`      // "typealias" or "literal-union"
	Openness   string `yaml:"openness,omitempty"`   // "open" or "closed"
	Root       string `yaml:"root,omitempty"`       // "module" or "class"
	Optionals  string `yaml:"optionals,omitempty"`  // "suffix" or "nothing"
	Unknown    string `yaml:"unknown,omitempty"`    // "required" or "optional"
	ExtendFrom string `yaml:"extendFrom,omitempty"` // amended module URI

	NoComments    bool `yaml:"noComments,omitempty"`
	NoConstraints bool `yaml:"noConstraints,omitempty"`
	NoDefaults    bool `yaml:"noDefaults,omitempty"`
	Deprecated    bool `yaml:"deprecated,omitempty"`
	Examples      bool `yaml:"examples,omitempty"`

	Headers           []string          `yaml:"headers,omitempty"`
	Footers           []string          `yaml:"footers,omitempty"`
	Imports           []string          `yaml:"imports,omitempty"`
	ExcludeProperties []string          `yaml:"excludeProperties,omitempty"`
	TypeNames         map[string]string `yaml:"typeNames,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	_, err := c.RenderOptions()
	return err
}

// RenderOptions converts the file settings into render options. Unset enum
// fields keep their defaults; invalid values fail here rather than at render
// time.
func (c *Config) RenderOptions() (pkl.Options, error) {
	opts := pkl.DefaultOptions()

	opts.ModuleName = c.ModuleName
	if c.Indent != "" {
		opts.Indent = c.Indent
	}
	opts.ExtendFrom = c.ExtendFrom

	opts.IncludeDocs = !c.NoComments
	opts.IncludeConstraints = !c.NoConstraints
	opts.IncludeDefaults = !c.NoDefaults
	opts.IncludeDeprecated = c.Deprecated
	opts.IncludeExamples = c.Examples

	opts.Headers = c.Headers
	opts.Footers = c.Footers
	opts.Imports = c.Imports
	opts.ExcludeProperties = c.ExcludeProperties
	opts.TypeNames = c.TypeNames

	var err error
	if c.Enums != "" {
		if opts.EnumTranslation, err = pkl.ParseEnumTranslation(c.Enums); err != nil {
			return opts, err
		}
	}
	if c.Openness != "" {
		open, err := pkl.ParseOpenness(c.Openness)
		if err != nil {
			return opts, err
		}
		opts.OpenModule = open
		opts.OpenClasses = open
	}
	if c.Root != "" {
		if opts.RootTranslation, err = pkl.ParseRootTranslation(c.Root); err != nil {
			return opts, err
		}
	}
	if c.Optionals != "" {
		if opts.OptionalStyle, err = pkl.ParseOptionalStyle(c.Optionals); err != nil {
			return opts, err
		}
	}
	if c.Unknown != "" {
		if opts.UnknownOptionality, err = pkl.ParseUnknownOptionality(c.Unknown); err != nil {
			return opts, err
		}
	}

	return opts, nil
}
