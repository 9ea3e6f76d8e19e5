// errors.go - diagnostics raised while applying one configuration file.
// SPDX-License-Identifier: GPL-3.0-or-later

package configfile

import (
	"fmt"
	"strings"
)

// ErrOptionNotDefined is raised when a configuration file sets a key
// with no corresponding catalog entry.
type ErrOptionNotDefined struct {
	Name   string
	Source string
}

func (e *ErrOptionNotDefined) Error() string {
	return fmt.Sprintf("%s: option %q is not defined.", e.Source, e.Name)
}

// ErrSourceNotAllowed is raised when a defined option does not permit
// the ConfigurationFile source.
type ErrSourceNotAllowed struct {
	Name   string
	Source string
}

func (e *ErrSourceNotAllowed) Error() string {
	return fmt.Sprintf("%s: option %q is not supported in a configuration file.", e.Source, e.Name)
}

// ErrMissingValue is raised when a REQUIRED option appears with no
// value at all ("name" alone, no "=").
type ErrMissingValue struct {
	Name   string
	Source string
}

func (e *ErrMissingValue) Error() string {
	return fmt.Sprintf("%s: option %q must be given a value.", e.Source, e.Name)
}

// ErrInvalidBoolValue is raised when a FLAG option is given something
// other than "true"/"false".
type ErrInvalidBoolValue struct {
	Name, Value, Source string
}

func (e *ErrInvalidBoolValue) Error() string {
	return fmt.Sprintf("%s: option %q cannot be given value %q; only accepts \"true\" or \"false\".", e.Source, e.Name, e.Value)
}

// ErrValidatorRejected is raised when a value fails its option's
// validator.
type ErrValidatorRejected struct {
	Name, Value, Source string
}

func (e *ErrValidatorRejected) Error() string {
	return fmt.Sprintf("%s: input %q given to parameter %q is not considered valid.", e.Source, e.Value, e.Name)
}

// ParseErrors aggregates every diagnostic raised while applying one
// file, mirroring [pkg/argparse.ParseErrors]'s collect-then-summarize
// policy.
type ParseErrors []error

func (e ParseErrors) Error() string {
	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("%d error(s) found in your configuration files:\n%s", len(e), strings.Join(parts, "\n"))
}

// Unwrap exposes the underlying diagnostics to errors.Is/errors.As.
func (e ParseErrors) Unwrap() []error {
	return []error(e)
}
