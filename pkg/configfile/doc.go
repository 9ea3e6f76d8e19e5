// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package configfile loads "name = value" configuration files into a
[catalog.Catalog] and [valuestore.Store].

The file grammar follows the pack's ini-adjacent style: "#" and ";"
introduce a comment, blank lines are skipped, "[section]" headers
switch the active section (feeding a "section::name" qualified lookup),
and values may be single- or double-quoted to preserve leading or
trailing whitespace.

[CandidateFiles] implements the file-discovery algorithm: explicit
full paths, one file per configured directory, and a ".d/" overlay
directory searched next to each, read in increasing filename order so
later files win. [Apply] takes one parsed [File] and records its
values directly into the store, without going through
[pkg/argparse] (a configuration file has no "--"/"-" ambiguity to
tokenize away).
*/
package configfile
