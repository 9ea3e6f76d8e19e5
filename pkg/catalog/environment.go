// environment.go - OptionEnvironment: the caller-supplied bundle that
// describes a program's option configuration.
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

// EnvironmentFlag controls which system options and behaviors the
// catalog auto-injects.
type EnvironmentFlag uint32

const (
	// SystemOptions auto-injects --help, --version, --copyright,
	// --license, --build-date, --environment-variable-name,
	// --configuration-filenames, --path-to-option-definitions, and
	// (when ConfigurationFilename is non-empty) --config-dir.
	SystemOptions EnvironmentFlag = 1 << iota

	// DynamicParameters allows unknown options encountered in
	// configuration files to be registered on the fly instead of
	// rejected; unknown options from the command line or the
	// environment variable are still errors.
	DynamicParameters

	// MultipleNamespaces allows option names with more than one "::"
	// separator.
	MultipleNamespaces
)

// OptionEnvironment bundles everything describing one program's option
// configuration: its identity, its declared options, and where to find
// configuration.
type OptionEnvironment struct {
	// ProjectName identifies the program for .ini loading and the
	// project.d/ configuration overlay.
	ProjectName string

	// Options is the descriptor array the catalog is built from. The
	// caller retains ownership; the catalog copies what it needs.
	Options []OptionInfo

	// Flags controls system-option injection and dynamic parameters.
	Flags EnvironmentFlag

	// HelpHeader is emitted ahead of per-option help text, when a
	// caller formats usage (the catalog itself only stores it).
	HelpHeader string

	// Version, Copyright, License, and BuildDate back the --version,
	// --copyright, --license, and --build-date system options.
	Version   string
	Copyright string
	License   string
	BuildDate string

	// EnvironmentVariableName is the name of the environment variable
	// consulted by the environment-variable parser.
	EnvironmentVariableName string

	// ConfigurationFiles is an explicit list of configuration file
	// paths to read, each paired with its project-overlay variant.
	ConfigurationFiles []string

	// ConfigurationFilename is the basename combined with each
	// directory in ConfigurationDirectories to form a candidate file.
	ConfigurationFilename string

	// ConfigurationDirectories lists directories searched for
	// ConfigurationFilename, besides any contributed by --config-dir.
	ConfigurationDirectories []string

	// OptionsFilesDirectory, combined with ProjectName, locates an
	// optional "<ProjectName>.ini" file of additional option
	// declarations, loaded at catalog-construction time.
	OptionsFilesDirectory string

	// MaxNamespaces bounds how many "::"-separated components an
	// option name may have. It is only consulted when Flags includes
	// MultipleNamespaces, where 0 means 8; without that flag the limit
	// is always 2.
	MaxNamespaces int
}

// maxNamespaces returns the effective namespace depth limit for env:
// 2 unless MultipleNamespaces is set, in which case MaxNamespaces (or a
// generous default when unset).
func (env *OptionEnvironment) maxNamespaces() int {
	if env.Flags&MultipleNamespaces == 0 {
		return 2
	}
	if env.MaxNamespaces > 0 {
		return env.MaxNamespaces
	}
	return 8
}
