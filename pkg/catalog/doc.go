// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package catalog implements the option schema: the descriptor of every
option a program recognizes, independent of any parsed value.

An [OptionInfo] describes one option: its long name, optional short
name, the sources it may be populated from, validation, and (for
aliases) the target it forwards to. A [Catalog] owns the full set of
OptionInfo entries, keyed by name and by short name, and knows how to
merge in system options (--help, --version, and friends), load
additional entries from an ".ini"-style directory, and resolve alias
links.
*/
package catalog
