// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pkl

import (
	"github.com/dacolabs/pklgen/internal/translate"
)

func init() {
	// Auto-register on import
	translate.Register(&Translator{})
}

// Translator adapts the Pkl renderer to the translate registry.
type Translator struct{}

// Name returns the translator's identifier.
func (t *Translator) Name() string {
	return "pkl"
}

// FileExtension returns the file extension for Pkl modules.
func (t *Translator) FileExtension() string {
	return ".pkl"
}

// Translate renders a schema graph as a Pkl module. Request.Options may
// carry a pkl.Options; anything else falls back to defaults.
func (t *Translator) Translate(req translate.Request) (*translate.Output, error) {
	opts, ok := req.Options.(Options)
	if !ok {
		opts = DefaultOptions()
	}
	if req.ModuleName != "" {
		opts.ModuleName = req.ModuleName
	}

	res, err := New(opts).Render(req.Types)
	if err != nil {
		return nil, err
	}

	warnings := make([]string, 0, len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		warnings = append(warnings, d.String())
	}
	return &translate.Output{Data: []byte(res.Output), Warnings: warnings}, nil
}
