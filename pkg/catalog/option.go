// option.go - the OptionInfo descriptor and name-validation helpers.
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import (
	"strings"

	"github.com/go-advopt/advopt/pkg/assert"
	"github.com/go-advopt/advopt/pkg/validator"
)

// DefaultOptionName is the reserved name marking the option that absorbs
// positional arguments.
const DefaultOptionName = "--"

// OptionInfo is the immutable-after-linking descriptor of one recognized
// option.
type OptionInfo struct {
	// Name is the option's long name. It may contain at most one "::",
	// splitting it into a section and a leaf (more separators are
	// permitted only when the catalog allows multiple namespaces). The
	// exact value DefaultOptionName marks the default (positional)
	// option.
	Name string

	// ShortName is the option's single-rune short form, or 0 if none.
	ShortName rune

	// Flags is the OptionFlag bitmask controlling sourcing and shape.
	Flags OptionFlag

	// Default is the option's default value, used when no value has
	// been recorded; it only counts when HasDefaultValue is set.
	Default string

	// HasDefaultValue distinguishes "no default" from "default is the
	// empty string".
	HasDefaultValue bool

	// Validator checks candidate values before they are stored. May be
	// nil.
	Validator validator.Validator

	// Help is free-form usage text; the catalog only stores it.
	Help string

	// AliasTarget is the name of the option this entry forwards all
	// reads and writes to. Non-empty marks this entry as an alias: it
	// must carry no Help, Default, or Validator.
	AliasTarget string

	// resolvedAlias is filled in by LinkAliases; nil until then, even
	// for non-alias entries.
	resolvedAlias *OptionInfo

	// Separators splits one supplied value into several when Multiple
	// is set and this list is non-empty.
	Separators []string

	// EnvironmentVariableName overrides the name used to look this
	// option up from the environment-sourced argument list. Empty means
	// "use Name".
	EnvironmentVariableName string

	// Source records where the most recently stored value came from.
	Source Source
}

// IsAlias reports whether o forwards to another OptionInfo.
func (o *OptionInfo) IsAlias() bool {
	return o.AliasTarget != ""
}

// ResolvedTarget returns the OptionInfo that reads and writes against o
// should actually apply to: o itself unless o is a linked alias, in
// which case the alias's resolved target. Only one hop is followed: an
// alias whose target is itself an alias yields that second alias.
//
// Logic error: calling this before LinkAliases has run for an alias
// entry.
func (o *OptionInfo) ResolvedTarget() *OptionInfo {
	if !o.IsAlias() {
		return o
	}
	assert.True(o.resolvedAlias != nil, "catalog: alias is missing. Did you call LinkAliases()?")
	return o.resolvedAlias
}

// Section returns the leading "section" component of a "section::leaf"
// name, or "" if Name carries no "::".
func (o *OptionInfo) Section() string {
	if idx := strings.Index(o.Name, "::"); idx >= 0 {
		return o.Name[:idx]
	}
	return ""
}

const forbiddenNameChars = ";#/=:?+\\"

// ValidateName reports whether name is usable as an option name: at
// least two characters, no whitespace or control characters, no more
// "::"-separated namespace components than maxNamespaces allows, and
// each of those components free of forbidden characters. The "::"
// separator itself is not checked against forbiddenNameChars (it would
// always match, since ':' is forbidden on its own); a stray lone ':'
// still gets caught because it survives inside whichever component it
// falls in.
func ValidateName(name string, maxNamespaces int) error {
	if name == DefaultOptionName {
		return nil
	}
	if len(name) < 2 {
		return &ErrInvalidOptionName{Name: name, Reason: "must be at least two characters long"}
	}
	for _, r := range name {
		if r <= ' ' || r == 0x7f {
			return &ErrInvalidOptionName{Name: name, Reason: "must not contain whitespace or control characters"}
		}
	}
	parts := strings.Split(name, "::")
	if len(parts) > maxNamespaces {
		return &ErrInvalidOptionName{Name: name, Reason: "uses more namespaces than this catalog allows"}
	}
	for _, part := range parts {
		if part == "" || strings.ContainsAny(part, forbiddenNameChars) {
			return &ErrInvalidOptionName{Name: name, Reason: "must not contain any of \";#/=:?+\\\""}
		}
	}
	return nil
}

// NormalizeName canonicalizes long-option lookups: '_' and '-' are
// treated as interchangeable, canonical form is '-'.
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
