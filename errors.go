// errors.go - error types and the error-handling policy for [Getopt].
// SPDX-License-Identifier: GPL-3.0-or-later

package advopt

import (
	"fmt"

	"github.com/go-advopt/advopt/pkg/argparse"
)

// ExitRequest signals that a system auto-action option (--help,
// --version, --copyright, --license, --build-date, or one of the
// introspection options) was seen on the command line: the text it produces has already been written to the
// environment's stdout, and the caller should terminate with ExitCode.
type ExitRequest = argparse.ExitRequest

// ParseErrors aggregates every diagnostic raised while draining one
// source (configuration files, the environment variable, or argv): a
// source keeps going after each individual problem and only the caller
// of Parse*/New* sees one error once the source is fully drained.
type ParseErrors = argparse.ParseErrors

// ErrNotParsed is the value every query method (IsDefined, GetString,
// GetLong, Size, ...) panics with when invoked before any parse phase
// has run.
type ErrNotParsed struct {
	Method string
}

func (e *ErrNotParsed) Error() string {
	return fmt.Sprintf("advopt: %s called before parsing is complete", e.Method)
}

// ErrorHandling controls how [Getopt] reacts to a parse error or an
// [ExitRequest] raised by [New] and [NewAndParse]. Parse* methods called
// directly, such as [*Getopt.ParseArguments], return their error
// unchanged whatever the policy.
type ErrorHandling int

const (
	// ContinueOnError returns the error to the caller unchanged.
	ContinueOnError ErrorHandling = iota

	// ExitOnError calls the bound [execenv.Environ]'s Exit with
	// [ExitRequest.ExitCode] (0) or 1 (any other error), after writing
	// [ExitRequest.Output] when present.
	ExitOnError

	// PanicOnError panics with the error.
	PanicOnError
)

// handle applies h to err, returning the value [ContinueOnError] would
// return. Used by [New] and [NewAndParse] so every ErrorHandling policy
// shares one implementation.
func (g *Getopt) handle(err error) error {
	if err == nil {
		return nil
	}
	switch g.errorHandling {
	case ExitOnError:
		code := 1
		if er, ok := err.(*ExitRequest); ok {
			code = er.ExitCode
		}
		g.env.Exit(code)
		return err
	case PanicOnError:
		panic(err)
	default:
		return err
	}
}
