// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package validator implements the factory registry used to validate option
values: a [Validator] exposes a name and a predicate, a [Factory] builds a
[Validator] from a list of string arguments, and a [Registry] maps
validator names to factories.

Two factories are pre-registered by [NewRegistry]: "integer" (with
optional enumeration/range restriction) and "regexp" (also reachable as
"regex", for compatibility with the combined-string grammar described
below).

# Combined string syntax

[*Registry.Parse] accepts the whole validator specification as a single
string using one of:

	name                      -- no arguments
	name(arg1, arg2, ...)     -- quoting-aware, comma-separated arguments
	/pattern/flags            -- shortcut for regexp(/pattern/flags)
*/
package validator
