// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package envparse feeds the content of one environment variable into a
// [catalog.Catalog] via [pkg/argparse]. It only tokenizes its input; the
// parsing rules themselves live in argparse, tagged with
// [catalog.SourceEnvironment].
package envparse
