// regexp.go - the "regexp" (alias "regex") validator: full-string,
// always-anchored regular expression matching with an optional
// "/pattern/flags" literal shorthand.
// SPDX-License-Identifier: GPL-3.0-or-later

package validator

import (
	"regexp"
	"strings"
)

type regexValidator struct {
	re *regexp.Regexp
}

func (v *regexValidator) Name() string { return "regexp" }

func (v *regexValidator) Validate(value string) bool {
	return v.re.MatchString(value)
}

// newRegexpFactory returns the Factory for "regexp"/"regex". It accepts
// at most one argument. A "/pattern/flags" literal has its body and
// flags split out; only the "i" (case-insensitive) flag is supported,
// any other flag character is dropped and reported via diag. A missing
// closing "/" is likewise reported, and the body is taken to be
// everything after the opening "/". An argument not starting with "/"
// is used verbatim as the pattern, case-sensitive. The match is always
// anchored to the whole value.
func newRegexpFactory(diag func(string)) Factory {
	return func(args []string) (Validator, error) {
		if len(args) > 1 {
			return nil, &ErrTooManyValidatorArgs{Name: "regexp", Count: len(args)}
		}
		var raw string
		if len(args) == 1 {
			raw = args[0]
		}
		body, flags := parseRegexLiteral(raw, diag)
		pattern := "^(?:" + body + ")$"
		if strings.Contains(flags, "i") {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		return &regexValidator{re: re}, nil
	}
}

// parseRegexLiteral splits raw into a pattern body and a flag string.
// Inputs not starting with "/" are returned unchanged with no flags.
func parseRegexLiteral(raw string, diag func(string)) (body, flags string) {
	if raw == "" || raw[0] != '/' {
		return raw, ""
	}
	last := strings.LastIndexByte(raw, '/')
	if last <= 0 {
		report(diag, "regexp: literal %q is missing a closing '/'", raw)
		return raw[1:], ""
	}
	body = raw[1:last]
	rawFlags := raw[last+1:]
	var kept strings.Builder
	for _, r := range rawFlags {
		if r == 'i' {
			kept.WriteRune(r)
			continue
		}
		report(diag, "regexp: unsupported flag %q in %q ignored", string(r), raw)
	}
	return body, kept.String()
}
