// envparse.go - environment-variable tokenizing frontend.
// SPDX-License-Identifier: GPL-3.0-or-later

package envparse

import (
	"fmt"

	"github.com/kballard/go-shellquote"

	"github.com/go-advopt/advopt/pkg/argparse"
	"github.com/go-advopt/advopt/pkg/catalog"
	"github.com/go-advopt/advopt/pkg/valuestore"
)

// placeholderProgramName heads the synthesized argv handed to argparse;
// argparse discards argv[0] immediately, but [scanner.Scanner.Scan]
// requires it to be present.
const placeholderProgramName = "environment"

// Parse tokenizes envValue using shell word-splitting rules (honoring
// single quotes, double quotes, and backslash escapes), then drains the
// resulting tokens into store via cat with [catalog.SourceEnvironment].
//
// An empty envValue parses to no tokens at all and returns nil.
func Parse(cat *catalog.Catalog, store *valuestore.Store, envValue string) error {
	fields, err := shellquote.Split(envValue)
	if err != nil {
		return &ErrMalformedValue{Value: envValue, Reason: err.Error()}
	}

	argv := make([]string, 0, len(fields)+1)
	argv = append(argv, placeholderProgramName)
	argv = append(argv, fields...)

	p := argparse.NewParser(cat, store)
	return p.Parse(argv, catalog.SourceEnvironment)
}

// ErrMalformedValue is raised when the environment variable's contents
// cannot be tokenized as shell words (e.g. an unterminated quote).
type ErrMalformedValue struct {
	Value  string
	Reason string
}

func (e *ErrMalformedValue) Error() string {
	return fmt.Sprintf("environment variable value %q is not well formed: %s", e.Value, e.Reason)
}
