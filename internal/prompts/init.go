// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(schema, output, openness, enums *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default schema file").
				Placeholder("e.g., schema.json").
				Value(schema),
			huh.NewInput().
				Title("Default output file (empty for stdout)").
				Placeholder("e.g., Config.pkl").
				Value(output),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Module and class openness").
				Options(
					huh.NewOption("Open (amendable downstream)", "open"),
					huh.NewOption("Closed", "closed"),
				).
				Value(openness),
			huh.NewSelect[string]().
				Title("Enum translation").
				Options(
					huh.NewOption("Named typealias (recommended)", "typealias"),
					huh.NewOption("Inline literal union", "literal-union"),
				).
				Value(enums),
		),
	).WithTheme(Theme()).Run()
}
