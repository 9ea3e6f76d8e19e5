// unquote_test.go - tests for Unquote.
// SPDX-License-Identifier: GPL-3.0-or-later

package varstring_test

import (
	"testing"

	"github.com/go-advopt/advopt/pkg/varstring"
)

func TestUnquoteDefaultPairs(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"a", "a"},
		{"ab", "ab"},
		{"''", ""},
		{"'a'", "a"},
		{"'abcd'", "abcd"},
		{`""`, ""},
		{`"a"`, "a"},
		{`"abcd"`, "abcd"},
		{`"'`, `"'`},
		{`"a'`, `"a'`},
		{`'"`, `'"`},
		{`'a"`, `'a"`},
		{`"`, `"`},
		{`'`, `'`},
	}
	for _, tc := range cases {
		if got := varstring.Unquote(tc.in); got != tc.want {
			t.Errorf("Unquote(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUnquoteCustomPairs(t *testing.T) {
	pairs := "[]<>{}"
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"a", "a"},
		{"{}", ""},
		{"{a}", "a"},
		{"[]", ""},
		{"[abcd]", "abcd"},
		{"<>", ""},
		{"<abc>", "abc"},
		{"[}", "[}"},
		{"[>", "[>"},
		{"[", "["},
		{"{", "{"},
	}
	for _, tc := range cases {
		if got := varstring.Unquote(tc.in, pairs); got != tc.want {
			t.Errorf("Unquote(%q, %q) = %q, want %q", tc.in, pairs, got, tc.want)
		}
	}
}

func TestUnquoteIdempotent(t *testing.T) {
	inputs := []string{"", "a", "'a'", `"a"`, "'", `"a'`}
	for _, s := range inputs {
		once := varstring.Unquote(s)
		twice := varstring.Unquote(once)
		if once != twice {
			t.Errorf("Unquote not idempotent for %q: once=%q twice=%q", s, once, twice)
		}
	}
}
