// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package argparse drives [pkg/scanner] tokens against a [catalog.Catalog],
recording values into a [valuestore.Store]. It implements long options
(--name, --name=value), short-option grouping (-xyz, with a REQUIRED
option in the chain consuming the remainder or the next token), the "--"
separator, and routing of anything else to the catalog's DEFAULT_OPTION.

The same [Parser] drives the command line and the environment variable
by varying the [catalog.Source] tag passed to [*Parser.Parse];
[pkg/envparse] is a thin frontend that tokenizes its own input and calls
into this package. [pkg/configfile] records its values directly into
the store and does not use this package.
*/
package argparse
