// system.go - the system options auto-injected when EnvironmentFlag
// SystemOptions is set: --help, --version, --copyright, --license,
// --build-date, and the introspection options used by callers like
// fluid-settings to discover a program's configuration surface.
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

// Auto-action kinds, looked up by system-option name through
// [AutoAction] so the orchestrator can recognize "this option, once
// seen, prints something and exits".
const (
	actionHelp = 1 << iota
	actionVersion
	actionCopyright
	actionLicense
	actionBuildDate
	actionEnvironmentVariableName
	actionConfigurationFilenames
	actionPathToOptionDefinitions
)

// autoActionFlags maps a system-option name to the action it triggers
// when it appears on the command line. The orchestrator owns the
// actual printing and exit-request behavior; the catalog only records
// which options ask for it.
var autoActionFlags = map[string]int{
	"help":       actionHelp,
	"version":    actionVersion,
	"copyright":  actionCopyright,
	"license":    actionLicense,
	"build-date": actionBuildDate,

	"environment-variable-name":  actionEnvironmentVariableName,
	"configuration-filenames":    actionConfigurationFilenames,
	"path-to-option-definitions": actionPathToOptionDefinitions,
}

// AutoAction reports the auto-action kind for name ("help", "version",
// "copyright", "license", "build-date", or one of the introspection
// options "environment-variable-name", "configuration-filenames",
// "path-to-option-definitions") and whether name is one.
func AutoAction(name string) (int, bool) {
	a, ok := autoActionFlags[name]
	return a, ok
}

// SectionRegistryOptionName is the pseudo-option the configuration-file
// loader records every distinct "[section]" name into.
const SectionRegistryOptionName = "configuration_sections"

// sectionRegistryOption builds the always-present pseudo-option that
// records every distinct "[section]" name a configuration file
// introduces. It is inserted once per Catalog, regardless of
// SystemOptions, because it is populated purely by the
// configuration-file loader, not by user-visible sourcing.
func sectionRegistryOption() OptionInfo {
	return OptionInfo{
		Name:  SectionRegistryOptionName,
		Flags: ConfigurationFile | Multiple,
		Help:  "the distinct [section] names encountered across every loaded configuration file",
	}
}

func systemOptions(env *OptionEnvironment) []OptionInfo {
	opts := []OptionInfo{
		{
			Name:      "help",
			ShortName: 'h',
			Flags:     CommandLine | Flag | ShowUsageOnError,
			Help:      "print this help message and exit",
		},
		{
			Name:      "version",
			ShortName: 'V',
			Flags:     CommandLine | Flag,
			Help:      "print the program version and exit",
		},
		{
			Name:  "copyright",
			Flags: CommandLine | Flag,
			Help:  "print the program copyright notice and exit",
		},
		{
			Name:  "license",
			Flags: CommandLine | Flag,
			Help:  "print the program license and exit",
		},
		{
			Name:  "build-date",
			Flags: CommandLine | Flag,
			Help:  "print the date and time this program was built and exit",
		},
		{
			Name:  "environment-variable-name",
			Flags: CommandLine | Flag,
			Help:  "print the name of the environment variable this program consults and exit",
		},
		{
			Name:  "configuration-filenames",
			Flags: CommandLine | Flag,
			Help:  "print the list of configuration files this program reads and exit",
		},
		{
			Name:  "path-to-option-definitions",
			Flags: CommandLine | Flag,
			Help:  "print the directory searched for option definition files and exit",
		},
	}
	if env.ConfigurationFilename != "" {
		opts = append(opts, OptionInfo{
			Name:      "config-dir",
			ShortName: 'c',
			Flags:     CommandLine | Multiple,
			Help:      "add a directory to search for configuration files",
		})
	}
	return opts
}
