// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pklgen",
		Short:         "Generate Pkl configuration modules from JSON Schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	registerInitCmd(rootCmd)
	registerGenerateCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
