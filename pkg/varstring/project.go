// project.go - project-directory and user-directory interpolation.
// SPDX-License-Identifier: GPL-3.0-or-later

package varstring

import (
	"fmt"
	"path"
	"strings"
)

// InsertProjectName rewrites filePath so the basename is looked up inside a
// `project.d/` overlay directory next to it.
//
// Given "/a/b/c/basename.ext" and project "proj" it returns
// "/a/b/c/proj.d/basename.ext". When priority is non-negative, the
// basename is prefixed with "<priority>-" to express ordering, e.g.
// priority 50 yields "/a/b/c/proj.d/50-basename.ext". A negative priority
// means no numeric prefix is added.
//
// Empty filePath or project yields an empty result.
func InsertProjectName(filePath, project string, priority int) string {
	if filePath == "" || project == "" {
		return ""
	}
	dir := path.Dir(filePath)
	base := path.Base(filePath)
	if priority >= 0 {
		base = fmt.Sprintf("%d-%s", priority, base)
	}
	return path.Join(dir, project+".d", base)
}

// ExpandUserDirectory replaces a leading "~" in p with homeDir, but only
// when "~" is the whole path or is immediately followed by "/", and only
// when homeDir is non-empty. Otherwise p is returned unchanged.
func ExpandUserDirectory(p, homeDir string) string {
	if homeDir == "" {
		return p
	}
	switch {
	case p == "~":
		return homeDir
	case strings.HasPrefix(p, "~/"):
		return homeDir + p[1:]
	default:
		return p
	}
}
