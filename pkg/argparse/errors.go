// errors.go - diagnostics raised while draining one source.
// SPDX-License-Identifier: GPL-3.0-or-later

package argparse

import (
	"fmt"
	"strings"

	"github.com/go-advopt/advopt/pkg/catalog"
)

// ErrUnknownOption is raised by an unrecognized long or short option
// when the catalog does not allow dynamic registration for this source.
type ErrUnknownOption struct {
	Token string // e.g. "--frobnicate" or "-z"
}

func (e *ErrUnknownOption) Error() string {
	return fmt.Sprintf("option %s is not supported.", e.Token)
}

// ErrSourceNotAllowed is raised when an option is recognized but its
// Flags mask does not permit the source currently being parsed.
type ErrSourceNotAllowed struct {
	Token  string
	Source catalog.Source
}

func (e *ErrSourceNotAllowed) Error() string {
	return fmt.Sprintf("option %s is not supported in %s.", e.Token, e.Source)
}

// ErrFlagTakesNoArgument is raised when a FLAG option is given "=value"
// on the command line.
type ErrFlagTakesNoArgument struct {
	Token string
}

func (e *ErrFlagTakesNoArgument) Error() string {
	return fmt.Sprintf("option %s does not accept arguments.", e.Token)
}

// ErrFlagInvalidBoolValue is raised when a FLAG option is given a value
// other than "true"/"false" inside a configuration file.
type ErrFlagInvalidBoolValue struct {
	Token string
	Value string
}

func (e *ErrFlagInvalidBoolValue) Error() string {
	return fmt.Sprintf("option %s cannot be given value %q; only accepts \"true\" or \"false\".", e.Token, e.Value)
}

// ErrOptionExpectsArgument is raised when a REQUIRED option is followed
// by another option or by end-of-input.
type ErrOptionExpectsArgument struct {
	Token string
}

func (e *ErrOptionExpectsArgument) Error() string {
	return fmt.Sprintf("option %s expects an argument.", e.Token)
}

// ErrOptionMustHaveValue is raised by "--name=" (empty right-hand side)
// on a REQUIRED option.
type ErrOptionMustHaveValue struct {
	Token string
}

func (e *ErrOptionMustHaveValue) Error() string {
	return fmt.Sprintf("option %s must be given a value.", e.Token)
}

// ErrNoDefaultOption is raised when a positional argument, a bare "-",
// or "--" is encountered but the catalog declares no DEFAULT_OPTION.
type ErrNoDefaultOption struct {
	// Kind is one of "--", "-", or "value"; it selects the message
	// wording.
	Kind  string
	Value string
}

func (e *ErrNoDefaultOption) Error() string {
	switch e.Kind {
	case "--":
		return "no default options defined; thus -- is not accepted by this program."
	case "-":
		return "no default options defined; thus - is not accepted by this program."
	default:
		return fmt.Sprintf("no default options defined; we do not know what to do of %q; standalone parameters are not accepted by this program.", e.Value)
	}
}

// ErrSeparatorNotSupportedInEnvironment is raised when "--" appears in
// the environment-variable token stream and the default option does
// not permit environment sourcing.
type ErrSeparatorNotSupportedInEnvironment struct{}

func (e *ErrSeparatorNotSupportedInEnvironment) Error() string {
	return "option -- is not supported in the environment variable."
}

// ErrValidatorRejected is raised when a value fails its option's
// validator; the value is not recorded.
type ErrValidatorRejected struct {
	Token string
	Value string
}

func (e *ErrValidatorRejected) Error() string {
	return fmt.Sprintf("input %q given to parameter %s is not considered valid.", e.Value, e.Token)
}

// ParseErrors aggregates every diagnostic raised while draining one
// source. The source continues past each individual diagnostic; this
// is only raised once, after the source is fully drained.
type ParseErrors []error

func (e ParseErrors) Error() string {
	parts := make([]string, len(e))
	for i, err := range e {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("%d error(s) found on your command line, environment variable, or configuration file:\n%s",
		len(e), strings.Join(parts, "\n"))
}

// Unwrap exposes the underlying diagnostics to errors.Is/errors.As.
func (e ParseErrors) Unwrap() []error {
	return []error(e)
}

// ExitRequest signals that a system auto-action option (--help,
// --version, --copyright, --license, --build-date, or one of the
// introspection options) was seen. The
// caller's ErrorHandling policy decides what to do with it: print
// Output and return it (ContinueOnError), print Output and exit
// (ExitOnError), or panic (PanicOnError).
type ExitRequest struct {
	Option   *catalog.OptionInfo
	Output   string
	ExitCode int
}

func (e *ExitRequest) Error() string {
	return fmt.Sprintf("getopt: exit requested by --%s (code %d)", e.Option.Name, e.ExitCode)
}
