// execenv.go - execution environment.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package execenv abstracts the slice of the process environment the
// core actually touches: looking up HOME and the project's environment
// variable, calling Exit when a caller opts into that policy, and
// writing the text produced by an auto-action system option to its
// designated stream.
package execenv

import (
	"io"
	"os"
)

// Environ is the execution environment used by [Getopt].
type Environ interface {
	// Exit terminates the program.
	Exit(exitcode int)

	// LookupEnv returns the value of the environment variable named by key.
	LookupEnv(key string) (string, bool)

	// Stdout is the stream auto-action system options write to.
	Stdout() io.Writer

	// Stderr is the error stream; the core itself does not write to it
	// (parse-time diagnostics are returned as errors).
	Stderr() io.Writer
}

// StdlibEnviron is the default [Environ], backed by the standard
// library. The zero value is not ready to use; call [NewStdlibEnviron].
type StdlibEnviron struct {
	// OSExit is initialized with [os.Exit].
	OSExit func(exitcode int)

	// OSLookupEnv is initialized with [os.LookupEnv].
	OSLookupEnv func(key string) (string, bool)

	// OSStdout is initialized with [os.Stdout].
	OSStdout io.Writer

	// OSStderr is initialized with [os.Stderr].
	OSStderr io.Writer
}

var _ Environ = &StdlibEnviron{}

// NewStdlibEnviron creates a new [StdlibEnviron] instance.
func NewStdlibEnviron() *StdlibEnviron {
	return &StdlibEnviron{
		OSExit:      os.Exit,
		OSLookupEnv: os.LookupEnv,
		OSStdout:    os.Stdout,
		OSStderr:    os.Stderr,
	}
}

// Exit implements [Environ].
func (ee *StdlibEnviron) Exit(exitcode int) {
	ee.OSExit(exitcode)
}

// LookupEnv implements [Environ].
func (ee *StdlibEnviron) LookupEnv(key string) (string, bool) {
	return ee.OSLookupEnv(key)
}

// Stdout implements [Environ].
func (ee *StdlibEnviron) Stdout() io.Writer {
	return ee.OSStdout
}

// Stderr implements [Environ].
func (ee *StdlibEnviron) Stderr() io.Writer {
	return ee.OSStderr
}
