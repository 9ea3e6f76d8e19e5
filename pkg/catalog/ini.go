// ini.go - loading additional option declarations from a ".ini"-style
// directory, one section per option.
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-advopt/advopt/pkg/validator"
)

// LoadIni reads "<dir>/<project>.ini" (if present; a missing file is not
// an error) and merges the options it declares into the catalog.
//
// Each "[section]" declares one option named after the section;
// recognized keys are: shortname, default, help, allowed
// (comma-separated list drawn from command-line, environment-variable,
// configuration-file), show-usage-on-error, no-arguments (alias for
// Flag), multiple, required, validator, environment_variable_name, and
// alias.
func (c *Catalog) LoadIni(dir, project string, minSections, maxSections int) error {
	path := filepath.Join(dir, project+".ini")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	return c.parseOptionsFromFile(f, path, minSections, maxSections)
}

// ParseOptionsFromFile loads option declarations from an already-open
// file, enforcing that every section name has between minSections and
// maxSections "::"-separated namespace components. This is the entry
// point used by callers (e.g. a settings-distribution daemon) that want
// N-level option namespaces instead of the default single-project one.
func (c *Catalog) ParseOptionsFromFile(f *os.File, path string, minSections, maxSections int) error {
	return c.parseOptionsFromFile(f, path, minSections, maxSections)
}

func (c *Catalog) parseOptionsFromFile(f *os.File, path string, minSections, maxSections int) error {
	sections := map[string]*iniSection{}
	var order []string

	scanner := bufio.NewScanner(f)
	lineNo := 0
	var current *iniSection
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.TrimSpace(line[1 : len(line)-1])
			depth := strings.Count(name, "::") + 1
			if depth < minSections || depth > maxSections {
				return &ErrRejectedNamespace{Section: name}
			}
			sec, ok := sections[name]
			if !ok {
				sec = &iniSection{name: name, keys: map[string]string{}}
				sections[name] = sec
				order = append(order, name)
			}
			current = sec
			continue
		}
		if current == nil {
			return fmt.Errorf("%s:%d: assignment outside of any section", path, lineNo)
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return fmt.Errorf("%s:%d: missing '=' in option definition", path, lineNo)
		}
		key := strings.TrimSpace(line[:eq])
		value := strings.TrimSpace(line[eq+1:])
		current.keys[key] = value
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	for _, name := range order {
		o, err := buildOptionFromIni(name, sections[name])
		if err != nil {
			return err
		}
		if err := c.Insert(o); err != nil {
			return err
		}
	}
	return nil
}

type iniSection struct {
	name string
	keys map[string]string
}

func buildOptionFromIni(name string, sec *iniSection) (OptionInfo, error) {
	o := OptionInfo{Name: name}

	if sn := sec.keys["shortname"]; sn != "" {
		r := []rune(sn)
		if len(r) != 1 {
			return o, fmt.Errorf("catalog: shortname %q for option %q must be a single character", sn, name)
		}
		o.ShortName = r[0]
	}

	if alias, ok := sec.keys["alias"]; ok {
		if sec.keys["help"] != "" || sec.keys["default"] != "" || sec.keys["validator"] != "" {
			return o, &ErrAliasWithOwnSchema{Name: name}
		}
		o.AliasTarget = alias
		return o, nil
	}

	if def, ok := sec.keys["default"]; ok {
		o.Default = def
		o.HasDefaultValue = true
	}
	o.Help = sec.keys["help"]

	if allowed, ok := sec.keys["allowed"]; ok {
		for _, tok := range strings.Split(allowed, ",") {
			switch strings.TrimSpace(tok) {
			case "command-line":
				o.Flags |= CommandLine
			case "environment-variable":
				o.Flags |= EnvironmentVariable
			case "configuration-file":
				o.Flags |= ConfigurationFile
			case "":
			default:
				return o, fmt.Errorf("catalog: unrecognized allowed-source %q for option %q", tok, name)
			}
		}
	} else {
		o.Flags |= AllSources
	}

	if truthy(sec.keys["show-usage-on-error"]) {
		o.Flags |= ShowUsageOnError
	}
	if truthy(sec.keys["no-arguments"]) {
		o.Flags |= Flag
	}
	if truthy(sec.keys["multiple"]) {
		o.Flags |= Multiple
	}
	if truthy(sec.keys["required"]) {
		o.Flags |= Required
	}

	if v, ok := sec.keys["validator"]; ok && v != "" {
		reg := validator.NewRegistry(nil)
		built, err := reg.Parse(v)
		if err != nil {
			return o, err
		}
		o.Validator = built
	}

	o.EnvironmentVariableName = sec.keys["environment_variable_name"]

	return o, nil
}

func truthy(s string) bool {
	if s == "" {
		return false
	}
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
