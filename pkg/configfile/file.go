// file.go - File and Section: one parsed configuration file.
// SPDX-License-Identifier: GPL-3.0-or-later

package configfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-advopt/advopt/pkg/varstring"
)

// Section is one "[name]" block of a configuration file, or the
// nameless block preceding the first header.
type Section struct {
	// Name is the section name, "" for the leading nameless section.
	Name string

	// Values holds the value assigned to each key by "key = value".
	Values map[string]string

	// Bare records which keys appeared with no "=" at all, the
	// configuration-file equivalent of a bare --flag on the command
	// line.
	Bare map[string]bool

	// Order lists the keys in the order they were encountered, so
	// [Apply] records them deterministically.
	Order []string
}

func newSection(name string) *Section {
	return &Section{Name: name, Values: make(map[string]string), Bare: make(map[string]bool)}
}

func (s *Section) set(key, value string, bare bool) {
	if _, exists := s.Values[key]; !exists {
		s.Order = append(s.Order, key)
	}
	s.Values[key] = value
	s.Bare[key] = bare
}

// File is one parsed configuration file.
type File struct {
	// Path is the file's location on disk. Used only for diagnostics
	// and by Read; Parse works directly off an io.Reader.
	Path string

	Sections     []*Section
	SectionIndex map[string]*Section
}

// NewFile returns an empty File bound to path.
func NewFile(path string) *File {
	return &File{
		Sections:     make([]*Section, 0),
		SectionIndex: make(map[string]*Section),
		Path:         path,
	}
}

// Read opens f.Path and parses its content.
func (f *File) Read() error {
	fp, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	defer fp.Close()
	return f.Parse(fp)
}

// Parse reads configuration-file syntax from r into f. Parse may be
// called directly (bypassing Read) for in-memory or embedded content.
//
// Grammar: "#" and ";" start a comment running to end of line (quotes
// do not protect them); blank lines are skipped; "[name]" switches the active
// section, creating it if new; everything else is "key = value" or a
// bare "key", with value optionally wrapped in matching single or
// double quotes (stripped via [varstring.Unquote]).
func (f *File) Parse(r io.Reader) error {
	section := newSection("")
	f.Sections = append(f.Sections, section)
	f.SectionIndex[""] = section

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" {
			continue
		}

		if line[0] == '[' && strings.HasSuffix(line, "]") {
			name := strings.TrimSpace(line[1 : len(line)-1])
			if existing, ok := f.SectionIndex[name]; ok {
				section = existing
			} else {
				section = newSection(name)
				f.Sections = append(f.Sections, section)
				f.SectionIndex[name] = section
			}
			continue
		}

		key, value, hasEquals := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !hasEquals {
			section.set(key, "", true)
			continue
		}
		section.set(key, varstring.Unquote(strings.TrimSpace(value)), false)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", f.Path, err)
	}
	return nil
}

// stripComment removes a trailing "#" or ";" comment, whichever comes
// first in the line; it does not honor quoting.
func stripComment(line string) string {
	idx := strings.IndexAny(line, "#;")
	if idx < 0 {
		return line
	}
	return line[:idx]
}
