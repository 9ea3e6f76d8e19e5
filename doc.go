// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package advopt implements a multi-source command-line option parsing and
configuration resolution library: a declarative catalog of recognized
options, merged under well-defined precedence from configuration files,
one environment variable, and the command line.

To use this package:

 1. Declare an [catalog.OptionEnvironment] describing your project:
    its name, its []catalog.OptionInfo descriptor array, and where its
    configuration files and option-definition directory live.

 2. Call [New] (to build the catalog without parsing) or [NewAndParse]
    (to also run the three-phase parse: configuration files, then the
    environment variable, then argv) to obtain a [*Getopt].

 3. Query values with [*Getopt.IsDefined], [*Getopt.GetString],
    [*Getopt.GetLong], [*Getopt.Size], and [*Getopt.GetDefault].

# Sources and precedence

Values may come from a configuration file, the project's environment
variable, or the command line. The command line wins over the
environment variable, which wins over configuration files, which win
over an option's declared default. [*Getopt.ParseConfigurationFiles],
[*Getopt.ParseEnvironmentVariable], and [*Getopt.ParseArguments] must be
driven in that order for this precedence to hold; [NewAndParse] does so
automatically.

# System options

When [catalog.SystemOptions] is set on the environment's Flags,
--help, --version, --copyright, --license, and --build-date (plus a few
introspection options) are auto-injected. Seeing one of these on the
command line does not return a parse error: it returns an
[*ExitRequest] carrying the exit code and the text already written to
the environment's stdout.

# Packages

The catalog, value store, validators, and the three parsing frontends
each live in their own package (pkg/catalog, pkg/valuestore,
pkg/validator, pkg/argparse, pkg/envparse, pkg/configfile, pkg/varstring,
pkg/scanner); this package only ties them together behind the public
query surface.
*/
package advopt
