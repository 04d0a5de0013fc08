// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacolabs/pklgen/internal/config"
	"github.com/dacolabs/pklgen/internal/prompts"
)

type initOptions struct {
	schema         string
	output         string
	openness       string
	enums          string
	nonInteractive bool
}

func registerInitCmd(parent *cobra.Command) {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a pklgen project",
		Long: `Initialize a pklgen project with a pklgen.yaml configuration file.
The file records default generate settings so repeated runs need no flags.`,
		Example: `  # Interactive mode
  pklgen init

  # Non-interactive
  pklgen init --schema schema.json --output Config.pkl --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Default input schema file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Default output file")
	cmd.Flags().StringVar(&opts.openness, "openness", "open", "Module and class openness (open or closed)")
	cmd.Flags().StringVar(&opts.enums, "enums", "typealias", "Enum translation (typealias or literal-union)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	parent.AddCommand(cmd)
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, config.DefaultFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("pklgen.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.schema, &opts.output, &opts.openness, &opts.enums); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:  config.CurrentConfigVersion,
		Schema:   opts.schema,
		Output:   opts.output,
		Openness: opts.openness,
		Enums:    opts.enums,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: config.DefaultFileName},
	}, "Initialization completed")
	return nil
}
