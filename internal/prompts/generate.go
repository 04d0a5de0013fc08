// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// RunGenerateForm prompts for any generate inputs not supplied via flags.
// Already-filled values are kept and their prompts skipped.
func RunGenerateForm(schemaPath, format, output *string, formats []string) error {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}

	toStdout := *output == ""

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema file").
				Placeholder("e.g., schema.json").
				Validate(schemaFileValidator).
				Value(schemaPath),
		).WithHideFunc(func() bool { return *schemaPath != "" }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Options(options...).
				Value(format),
		).WithHideFunc(func() bool { return *format != "" || len(formats) == 1 }),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Write to stdout?").
				Affirmative("Yes").
				Negative("No, write a file").
				Value(&toStdout),
		).WithHideFunc(func() bool { return *output != "" }),
		huh.NewGroup(
			huh.NewInput().
				Title("Output file").
				Placeholder("e.g., Config.pkl").
				Validate(requiredValidator("output file")).
				Value(output),
		).WithHideFunc(func() bool { return toStdout || *output != "" }),
	).WithTheme(Theme()).Run()
}

func schemaFileValidator(s string) error {
	if s == "" {
		return errors.New("schema file is required")
	}
	if !strings.HasSuffix(s, ".json") && !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		return errors.New("must be a .json, .yaml or .yml file")
	}
	if _, err := os.Stat(s); err != nil {
		return fmt.Errorf("cannot read %s", s)
	}
	return nil
}
