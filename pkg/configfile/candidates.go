// candidates.go - the candidate-file-list algorithm.
// SPDX-License-Identifier: GPL-3.0-or-later

package configfile

import (
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/go-advopt/advopt/pkg/catalog"
	"github.com/go-advopt/advopt/pkg/varstring"
)

// CandidateFiles returns every path that should be read, in
// application order (later paths override earlier ones for the same
// key): first each of env.ConfigurationFiles (after "~" expansion),
// each followed by its "<project>.d/50-<basename>" overlay variant;
// then, for each directory in env.ConfigurationDirectories followed by
// extraDirs (the runtime --config-dir additions), that directory's
// "env.ConfigurationFilename" immediately followed by the files of its
// ".d/" overlay directory in filename order.
//
// homeDir is used only for "~" expansion; pass "" to disable it. The
// overlay lookup touches the filesystem (os.ReadDir); a missing ".d/"
// directory is not an error.
func CandidateFiles(env *catalog.OptionEnvironment, homeDir string, extraDirs []string) ([]string, error) {
	var out []string

	for _, f := range env.ConfigurationFiles {
		f = varstring.ExpandUserDirectory(f, homeDir)
		out = append(out, f)
		out = append(out, varstring.InsertProjectName(f, env.ProjectName, 50))
	}

	if env.ConfigurationFilename != "" {
		dirs := make([]string, 0, len(env.ConfigurationDirectories)+len(extraDirs))
		dirs = append(dirs, env.ConfigurationDirectories...)
		dirs = append(dirs, extraDirs...)

		for _, dir := range dirs {
			dir = varstring.ExpandUserDirectory(dir, homeDir)
			main := filepath.Join(dir, env.ConfigurationFilename)
			out = append(out, main)

			overlays, err := overlayFiles(main, env.ProjectName)
			if err != nil {
				return nil, err
			}
			out = append(out, overlays...)
		}
	}

	return out, nil
}

// overlayFiles lists the files inside main's "<project>.d/" overlay
// directory, sorted by filename so a numeric priority prefix (see
// [varstring.InsertProjectName]) controls application order.
func overlayFiles(main, project string) ([]string, error) {
	if main == "" || project == "" {
		return nil, nil
	}
	dir := path.Join(path.Dir(main), project+".d")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]string, len(names))
	for i, name := range names {
		out[i] = filepath.Join(dir, name)
	}
	return out, nil
}

// Filter keeps only the paths that satisfy the requested constraints.
// mustExist drops paths that do not exist; writable drops paths whose
// directory (for not-yet-existing files) or whose own mode (for
// existing files) lacks an owner-write bit.
func Filter(paths []string, mustExist, writable bool) []string {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		exists := err == nil

		if mustExist && !exists {
			continue
		}
		if writable {
			target := p
			if !exists {
				target = filepath.Dir(p)
				info, err = os.Stat(target)
				if err != nil {
					continue
				}
			}
			if info.Mode().Perm()&0200 == 0 {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
