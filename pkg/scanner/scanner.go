// scanner.go - Command line scanner.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package scanner provides low-level tokenization of command-line arguments.

The [*Scanner.Scan] method breaks command-line arguments into [Token]
based on configurable option prefixes and separators, allowing higher-level parsers
to implement custom parsing logic on top of the tokenized stream.

# Token Types

[*Scanner.Scan] produces these token types:

 1. [ProgramNameToken]: The program name (argv[0])

 2. [OptionToken]: Options started with any configured prefix (e.g., -v, --verbose)

 3. [SeparatorToken]: Special separators (e.g., -- to stop parsing)

 4. [ArgumentToken]: Everything else (positional arguments)

# Option Prefixes

The [*Scanner] is configured with the option prefixes to use when tokenizing
command-line arguments. Prefixes are sorted by length (longest first) to ensure
correct tokenization when prefixes overlap (e.g., "-" and "--").

# Separators

The [*Scanner] can be configured to recognize and emit as a token the separator
to stop parsing options and treat all remaining arguments as positional.
However, note that it is not the [*Scanner] job to interpret semantics and
subsequent tokens will still be tokenized as options. This rule should instead
be implemented by higher-level parsers.

# Example

Given the "--" and "-" option prefixes and the "--" separator, the
following command line:

	command --verbose -- othercommand -v --trace file.txt

produces the following tokens:

 1. [ProgramNameToken] command
 2. [OptionToken] verbose
 3. [SeparatorToken] --
 4. [ArgumentToken] othercommand
 5. [OptionToken] v
 6. [OptionToken] trace
 7. [ArgumentToken] file.txt
*/
package scanner

import (
	"errors"
	"sort"
	"strings"
)

// Scanner is a command line scanner.
//
// We check for separators first. Then for option prefixes
// sorted by length (longest first).
type Scanner struct {
	// Prefixes contains the prefixes delimiting options.
	Prefixes []string

	// Separators contains the separators between option arguments.
	Separators []string
}

// Token is a token lexed by [*Scanner.Scan].
type Token interface {
	// String returns the string representation of the token.
	String() string

	// Index returns the token's position in the original argv slice.
	Index() int
}

// OptionToken is a [Token] containing an option.
type OptionToken struct {
	// Idx is the position in the original command line arguments.
	Idx int

	// Prefix is the scanned prefix.
	Prefix string

	// Name is the parsed name.
	Name string
}

var _ Token = OptionToken{}

// String implements [Token].
func (tk OptionToken) String() string { return tk.Prefix + tk.Name }

// Index implements [Token].
func (tk OptionToken) Index() int { return tk.Idx }

// ArgumentToken is a [Token] containing a positional argument.
type ArgumentToken struct {
	// Idx is the position in the original command line arguments.
	Idx int

	// Value is the parsed value.
	Value string
}

var _ Token = ArgumentToken{}

// String implements [Token].
func (tk ArgumentToken) String() string { return tk.Value }

// Index implements [Token].
func (tk ArgumentToken) Index() int { return tk.Idx }

// SeparatorToken is a [Token] containing the separator between options and arguments.
type SeparatorToken struct {
	// Idx is the position in the original command line arguments.
	Idx int

	// Separator is the parsed separator.
	Separator string
}

var _ Token = SeparatorToken{}

// String implements [Token].
func (tk SeparatorToken) String() string { return tk.Separator }

// Index implements [Token].
func (tk SeparatorToken) Index() int { return tk.Idx }

// ProgramNameToken is the program name [Token].
type ProgramNameToken struct {
	// Idx is the position in the original command line arguments.
	Idx int

	// Name is the program name.
	Name string
}

var _ Token = ProgramNameToken{}

// String implements [Token].
func (tk ProgramNameToken) String() string { return tk.Name }

// Index implements [Token].
func (tk ProgramNameToken) Index() int { return tk.Idx }

// ErrMissingProgramName is returned when the program name is missing. That is when
// [*Scanner.Scan] is passed an empty slice.
var ErrMissingProgramName = errors.New("missing program name")

// Scan scans the command line arguments and returns a list of [Token] or an error.
//
// The argv MUST include the program name as the first argument.
//
// This method does not mutate [*Scanner] and is safe to call concurrently.
//
// The only possible error is [ErrMissingProgramName].
func (sx *Scanner) Scan(argv []string) ([]Token, error) {
	tokens := make([]Token, 0, len(argv))

	if len(argv) <= 0 {
		return nil, ErrMissingProgramName
	}

	tokens = append(tokens, ProgramNameToken{Idx: 0, Name: argv[0]})
	argv = argv[1:]

	prefixes := make([]string, len(sx.Prefixes))
	copy(prefixes, sx.Prefixes)

	sort.SliceStable(prefixes, func(i, j int) bool {
		if len(prefixes[i]) == len(prefixes[j]) {
			return prefixes[i] < prefixes[j]
		}
		return len(prefixes[i]) > len(prefixes[j])
	})

Loop:
	for idx, arg := range argv {
		actual := idx + 1

		for _, sep := range sx.Separators {
			if arg == sep {
				tokens = append(tokens, SeparatorToken{Idx: actual, Separator: arg})
				continue Loop
			}
		}

		for _, prefix := range prefixes {
			if prefix != "" && strings.HasPrefix(arg, prefix) {
				tokens = append(tokens, OptionToken{Idx: actual, Prefix: prefix, Name: arg[len(prefix):]})
				continue Loop
			}
		}

		tokens = append(tokens, ArgumentToken{Idx: actual, Value: arg})
	}

	return tokens, nil
}
