// getopt.go - Getopt: the orchestrator tying the catalog, value store,
// and the three parsing frontends together behind the public query
// surface.
// SPDX-License-Identifier: GPL-3.0-or-later

package advopt

import (
	"fmt"
	"strings"

	"github.com/go-advopt/advopt/pkg/argparse"
	"github.com/go-advopt/advopt/pkg/catalog"
	"github.com/go-advopt/advopt/pkg/configfile"
	"github.com/go-advopt/advopt/pkg/envparse"
	"github.com/go-advopt/advopt/pkg/execenv"
	"github.com/go-advopt/advopt/pkg/valuestore"
)

// Environment is the caller-supplied bundle describing one program's
// option configuration.
type Environment = catalog.OptionEnvironment

// Getopt is the orchestrator: it owns the catalog, the value store, and
// the execution environment, and exposes the public query API
// (is_defined, get_string, get_long, size, get_default, get_option).
//
// A Getopt is built by [New] or [NewAndParse]; once its three parse
// phases have run (configuration files, then environment variable,
// then command line), it is safe to query from multiple goroutines
// provided none of them mutates it further.
type Getopt struct {
	cat           *catalog.Catalog
	store         *valuestore.Store
	env           execenv.Environ
	errorHandling ErrorHandling

	programFullName string
	programName     string

	configParsed bool
	envParsed    bool
	argsParsed   bool
}

// Option configures [New]/[NewAndParse].
type Option func(*Getopt)

// WithExecEnv overrides the default [execenv.NewStdlibEnviron] used for
// "~" expansion, the project environment variable, and auto-action
// output.
func WithExecEnv(e execenv.Environ) Option {
	return func(g *Getopt) { g.env = e }
}

// WithErrorHandling sets the [ErrorHandling] policy. The default is
// [ContinueOnError].
func WithErrorHandling(h ErrorHandling) Option {
	return func(g *Getopt) { g.errorHandling = h }
}

// New builds a Getopt from env: constructs the catalog (merging system
// options, loading ".ini" declarations, and linking aliases), but runs
// no parse phase. Most callers want [NewAndParse].
func New(env *Environment, opts ...Option) (*Getopt, error) {
	g := &Getopt{env: execenv.NewStdlibEnviron()}
	for _, opt := range opts {
		opt(g)
	}

	cat, err := catalog.Construct(env)
	if err != nil {
		return nil, g.handle(err)
	}
	g.cat = cat
	g.store = valuestore.New()
	return g, nil
}

// NewAndParse builds a Getopt from env and immediately drives the full
// three-phase parse in precedence order (lowest to highest, so each
// later phase naturally overrides the former): configuration files,
// then the environment variable, then argv. Directories given with
// --config-dir in argv are added to the configuration-file search.
//
// If a system auto-action option (--help, --version, ...) was seen on
// the command line, NewAndParse returns the partially-built Getopt
// together with an [*ExitRequest]; ContinueOnError callers should treat
// that as success, not failure.
func NewAndParse(env *Environment, argv []string, opts ...Option) (*Getopt, error) {
	g, err := New(env, opts...)
	if err != nil {
		return nil, err
	}
	g.ParseProgramName(argv)

	var configDirs []string
	if o := g.cat.Lookup("config-dir", true); o != nil {
		scratch := valuestore.New()
		_ = argparse.NewParser(g.cat, scratch).Parse(argv, catalog.SourceCommandLine)
		for i := 0; i < scratch.Size(o); i++ {
			if d, err := scratch.Get(o, i); err == nil {
				configDirs = append(configDirs, d)
			}
		}
	}
	if err := g.ParseConfigurationFiles(configDirs...); err != nil {
		return g, g.handle(err)
	}
	if err := g.ParseEnvironmentVariable(); err != nil {
		return g, g.handle(err)
	}
	args := argv
	if len(args) > 0 {
		args = args[1:]
	}
	if err := g.ParseArguments(args, catalog.SourceCommandLine); err != nil {
		return g, g.handle(err)
	}
	return g, nil
}

// ParseProgramName splits argv[0] into its full (as-given) form and its
// base name. Safe to call with an empty argv.
func (g *Getopt) ParseProgramName(argv []string) {
	g.programFullName, g.programName = argparse.ParseProgramName(argv)
}

// ParseOptionsInfo merges extra option declarations into the catalog.
// A nil or empty slice is a no-op. Options may only be augmented before
// the first parse pass; callers must invoke this before the first
// Parse* call.
func (g *Getopt) ParseOptionsInfo(extra []catalog.OptionInfo) error {
	if len(extra) == 0 {
		return nil
	}
	for _, o := range extra {
		if err := g.cat.Insert(o); err != nil {
			return err
		}
	}
	return g.cat.LinkAliases()
}

// ParseEnvironmentVariable reads the project's configured environment
// variable and parses it with source = ENVIRONMENT_VARIABLE. An unset
// or empty variable has no effect.
func (g *Getopt) ParseEnvironmentVariable() error {
	g.envParsed = true
	name := g.cat.Environment().EnvironmentVariableName
	if name == "" {
		return nil
	}
	value, ok := g.env.LookupEnv(name)
	if !ok || value == "" {
		return nil
	}
	return envparse.Parse(g.cat, g.store, value)
}

// ParseConfigurationFiles computes the candidate file list and applies
// every file that exists, in order, so later files override earlier
// ones.
func (g *Getopt) ParseConfigurationFiles(extraConfigDirs ...string) error {
	g.configParsed = true
	env := g.cat.Environment()
	home, _ := g.env.LookupEnv("HOME")

	candidates, err := configfile.CandidateFiles(env, home, extraConfigDirs)
	if err != nil {
		return err
	}
	candidates = configfile.Filter(candidates, true, false)

	var errs ParseErrors
	for _, path := range candidates {
		f := configfile.NewFile(path)
		if err := f.Read(); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := configfile.Apply(g.cat, g.store, f); err != nil {
			if pe, ok := err.(configfile.ParseErrors); ok {
				errs = append(errs, []error(pe)...)
			} else {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseArguments consumes args (not including the program name) and
// records every value into the store, tagging each with source. Once
// called with source = COMMAND_LINE, and no diagnostics were raised,
// ParseArguments also checks for a system auto-action option
// (--help/--version/--copyright/--license/--build-date and the
// introspection options) and, if one was seen, returns an
// [*ExitRequest] after writing its text to the environment's stdout.
func (g *Getopt) ParseArguments(args []string, source catalog.Source) error {
	if source == catalog.SourceCommandLine {
		g.argsParsed = true
	}
	argv := append([]string{g.programFullName}, args...)
	p := argparse.NewParser(g.cat, g.store)
	if err := p.Parse(argv, source); err != nil {
		return err
	}
	if source != catalog.SourceCommandLine {
		return nil
	}
	return g.checkSystemAction()
}

// checkSystemAction scans for an auto-action option (help, version,
// copyright, license, build-date, or one of the introspection options)
// seen on the command line, in catalog declaration order; the first one
// found defined wins and its text is written to stdout.
func (g *Getopt) checkSystemAction() error {
	env := g.cat.Environment()
	for _, o := range g.cat.Options() {
		if o.IsAlias() {
			continue
		}
		if _, ok := catalog.AutoAction(o.Name); !ok {
			continue
		}
		if g.store.Size(o) == 0 {
			continue
		}
		output := g.systemActionOutput(o.Name, env)
		if output != "" {
			fmt.Fprintln(g.env.Stdout(), output)
		}
		return &ExitRequest{Option: o, Output: output, ExitCode: 0}
	}
	return nil
}

func (g *Getopt) systemActionOutput(name string, env *Environment) string {
	switch name {
	case "help":
		return env.HelpHeader
	case "version":
		return env.Version
	case "copyright":
		return env.Copyright
	case "license":
		return env.License
	case "build-date":
		return env.BuildDate
	case "environment-variable-name":
		return env.EnvironmentVariableName
	case "configuration-filenames":
		return strings.Join(g.ConfigurationFilenames(false, false), "\n")
	case "path-to-option-definitions":
		return env.OptionsFilesDirectory
	default:
		return ""
	}
}

// IsDefined reports whether name (or its alias target) currently has a
// recorded value (not merely a default). Panics via [ErrNotParsed] if
// no parse phase has completed yet.
func (g *Getopt) IsDefined(name string) bool {
	g.requireParsed("IsDefined")
	o := g.cat.Lookup(name, true)
	if o == nil {
		return false
	}
	return g.store.Size(o) > 0
}

// Size returns the number of values recorded for name (0 if never set
// or unknown).
func (g *Getopt) Size(name string) int {
	g.requireParsed("Size")
	o := g.cat.Lookup(name, true)
	if o == nil {
		return 0
	}
	return g.store.Size(o)
}

// GetString returns the value recorded at index for name. A declared
// default is never substituted here even when name has one and was
// never set: callers that want the default use [*Getopt.GetDefault]
// explicitly, and GetString fails with the same "undefined value"
// error it always raises for an unset index.
func (g *Getopt) GetString(name string, index int) (string, error) {
	g.requireParsed("GetString")
	o := g.cat.Lookup(name, true)
	if o == nil {
		return "", &catalog.ErrUnknownOption{Name: name}
	}
	return g.store.Get(o, index)
}

// GetLong is like GetString but parses the value as an integer,
// optionally checking it against the inclusive range [bounds[0],
// bounds[1]].
func (g *Getopt) GetLong(name string, index int, bounds ...int64) (int64, error) {
	g.requireParsed("GetLong")
	o := g.cat.Lookup(name, true)
	if o == nil {
		return -1, &catalog.ErrUnknownOption{Name: name}
	}
	hasRange := len(bounds) == 2
	var min, max int64
	if hasRange {
		min, max = bounds[0], bounds[1]
	}
	return g.store.GetLong(o, index, hasRange, min, max)
}

// GetDefault returns name's declared default value and whether it has
// one.
func (g *Getopt) GetDefault(name string) (string, bool) {
	o := g.cat.Lookup(name, true)
	if o == nil {
		return "", false
	}
	return o.Default, o.HasDefaultValue
}

// HasDefault reports whether name has a declared default.
func (g *Getopt) HasDefault(name string) bool {
	_, ok := g.GetDefault(name)
	return ok
}

// GetOption returns the [catalog.OptionInfo] for a long name or a
// single-rune short form. rawAlias, when true, returns the alias entry
// itself instead of following it to its target.
func (g *Getopt) GetOption(name string, rawAlias ...bool) *catalog.OptionInfo {
	follow := true
	if len(rawAlias) > 0 && rawAlias[0] {
		follow = false
	}
	if r := []rune(name); len(r) == 1 {
		if !follow {
			for _, o := range g.cat.Options() {
				if o.ShortName == r[0] {
					return o
				}
			}
		} else if o := g.cat.LookupShort(r[0]); o != nil {
			return o
		}
	}
	return g.cat.Lookup(name, follow)
}

// ProgramName returns argv[0]'s base name (after the final "/").
func (g *Getopt) ProgramName() string { return g.programName }

// ProgramFullName returns argv[0] exactly as given.
func (g *Getopt) ProgramFullName() string { return g.programFullName }

// ConfigurationFilenames returns the candidate configuration file list,
// optionally filtered to files that exist and/or are writable.
func (g *Getopt) ConfigurationFilenames(mustExist, writable bool) []string {
	home, _ := g.env.LookupEnv("HOME")
	candidates, err := configfile.CandidateFiles(g.cat.Environment(), home, nil)
	if err != nil {
		return nil
	}
	return configfile.Filter(candidates, mustExist, writable)
}

// Reset clears every recorded value. The catalog schema is untouched; a
// fresh Parse* sequence is required before queries are valid again.
func (g *Getopt) Reset() {
	g.store.Reset()
	g.configParsed, g.envParsed, g.argsParsed = false, false, false
}

// SetShortName assigns a short name to an already-registered long
// option.
func (g *Getopt) SetShortName(name string, r rune) error {
	return g.cat.SetShortName(name, r)
}

// requireParsed panics via [ErrNotParsed] if no Parse* phase has ever
// completed: query methods are forbidden before parsing is complete.
func (g *Getopt) requireParsed(method string) {
	if !g.configParsed && !g.envParsed && !g.argsParsed {
		panic(&ErrNotParsed{Method: method})
	}
}
