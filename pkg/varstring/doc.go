// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package varstring provides the low-level string utilities shared by the
rest of advopt: quote stripping, quote-aware splitting, project-directory
interpolation, and `~` expansion.

These functions are pure: they take all their inputs as arguments (e.g.,
the home directory rather than reading $HOME directly) so that callers
control the one shared external resource (the environment) explicitly,
as documented by [github.com/go-advopt/advopt/pkg/execenv].
*/
package varstring
