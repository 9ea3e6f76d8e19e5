// errors.go - error types returned while building or linking a Catalog.
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import "fmt"

// ErrInvalidOptionName is returned when an option's name fails the
// forbidden-character or length rules.
type ErrInvalidOptionName struct {
	Name   string
	Reason string
}

func (e *ErrInvalidOptionName) Error() string {
	return fmt.Sprintf("catalog: invalid option name %q: %s", e.Name, e.Reason)
}

// ErrDuplicateOptionName is returned when two options share a name.
type ErrDuplicateOptionName struct {
	Name string
}

func (e *ErrDuplicateOptionName) Error() string {
	return fmt.Sprintf("catalog: option %q is already defined", e.Name)
}

// ErrDuplicateShortName is returned when two options share a short name.
type ErrDuplicateShortName struct {
	ShortName rune
}

func (e *ErrDuplicateShortName) Error() string {
	return fmt.Sprintf("catalog: short name %q is already defined", string(e.ShortName))
}

// ErrMultipleDefaultOptions is returned when more than one option
// carries DefaultOption.
type ErrMultipleDefaultOptions struct {
	First, Second string
}

func (e *ErrMultipleDefaultOptions) Error() string {
	return fmt.Sprintf("catalog: both %q and %q are marked as the default option", e.First, e.Second)
}

// ErrFlagAndDefaultOption is returned when an option carries both Flag
// and DefaultOption.
type ErrFlagAndDefaultOption struct {
	Name string
}

func (e *ErrFlagAndDefaultOption) Error() string {
	return fmt.Sprintf("catalog: option %q cannot be both a flag and the default option", e.Name)
}

// ErrAliasWithOwnSchema is returned when an alias entry also sets Help,
// Default, or Validator.
type ErrAliasWithOwnSchema struct {
	Name string
}

func (e *ErrAliasWithOwnSchema) Error() string {
	return fmt.Sprintf("catalog: alias %q must not carry help, a default value, or a validator", e.Name)
}

// ErrUnresolvedAlias is returned by LinkAliases when an alias names a
// target that does not exist in the catalog.
type ErrUnresolvedAlias struct {
	Name, Target string
}

func (e *ErrUnresolvedAlias) Error() string {
	return fmt.Sprintf("catalog: alias %q targets unknown option %q", e.Name, e.Target)
}

// ErrUnknownOption is returned when a lookup by name or short name
// fails.
type ErrUnknownOption struct {
	Name string
}

func (e *ErrUnknownOption) Error() string {
	return fmt.Sprintf("catalog: unknown option %q", e.Name)
}

// ErrRejectedNamespace is returned when an ".ini" section name uses
// "::" but the catalog was not built with MultipleNamespaces.
type ErrRejectedNamespace struct {
	Section string
}

func (e *ErrRejectedNamespace) Error() string {
	return fmt.Sprintf("catalog: section %q uses namespaces, which this catalog does not allow", e.Section)
}
