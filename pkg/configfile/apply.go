// apply.go - recording one parsed File into a Store.
// SPDX-License-Identifier: GPL-3.0-or-later

package configfile

import (
	"strings"

	"github.com/go-advopt/advopt/pkg/catalog"
	"github.com/go-advopt/advopt/pkg/valuestore"
	"github.com/go-advopt/advopt/pkg/varstring"
)

// Apply records every value in f into store, looking each key up in
// cat (qualified as "section::key" for non-default sections). It
// drains the whole file before returning, collecting every diagnostic
// into a [ParseErrors] rather than stopping at the first one.
//
// When cat's environment carries [catalog.DynamicParameters], a key
// with no matching entry is registered on the fly as a
// CONFIGURATION_FILE-only, DYNAMIC, MULTIPLE option instead of being
// rejected.
func Apply(cat *catalog.Catalog, store *valuestore.Store, f *File) error {
	var errs ParseErrors
	touched := make(map[*catalog.OptionInfo]bool)

	for _, section := range f.Sections {
		registerSection(cat, store, section.Name)
		for _, key := range section.Order {
			fullName := key
			if section.Name != "" {
				fullName = section.Name + "::" + key
			}
			source := f.Path

			opt, err := resolveOption(cat, fullName, source)
			if err != nil {
				errs = append(errs, err)
				continue
			}

			// A later file's assignment to a MULTIPLE option replaces
			// the prior list rather than appending to it; within this
			// same file, repeated assignment to the same option still
			// accumulates.
			target := opt.ResolvedTarget()
			if !touched[target] {
				store.ClearOption(target)
				touched[target] = true
			}

			hasValue := !section.Bare[key]
			value := section.Values[key]
			if err := recordOne(store, opt, fullName, source, hasValue, value); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// registerSection appends name to the section-registry pseudo-option's
// value list, once per distinct name; the nameless leading section
// (before any "[...]" header) is not recorded.
func registerSection(cat *catalog.Catalog, store *valuestore.Store, name string) {
	if name == "" {
		return
	}
	registry := cat.Lookup(catalog.SectionRegistryOptionName, true)
	if registry == nil {
		return
	}
	for i := 0; i < store.Size(registry); i++ {
		if existing, err := store.Get(registry, i); err == nil && existing == name {
			return
		}
	}
	store.Set(registry, valuestore.SizeAppend, name, catalog.SourceConfiguration)
}

func resolveOption(cat *catalog.Catalog, fullName, source string) (*catalog.OptionInfo, error) {
	opt := cat.Lookup(fullName, false)
	if opt != nil {
		if !opt.Flags.Has(catalog.ConfigurationFile) {
			return nil, &ErrSourceNotAllowed{Name: fullName, Source: source}
		}
		return opt, nil
	}

	if cat.Environment().Flags&catalog.DynamicParameters == 0 {
		return nil, &ErrOptionNotDefined{Name: fullName, Source: source}
	}

	fresh := catalog.OptionInfo{
		Name:  fullName,
		Flags: catalog.ConfigurationFile | catalog.Dynamic | catalog.Multiple,
	}
	if err := cat.Insert(fresh); err != nil {
		return nil, err
	}
	return cat.Lookup(fullName, false), nil
}

func recordOne(store *valuestore.Store, opt *catalog.OptionInfo, fullName, source string, hasValue bool, value string) error {
	if opt.Flags.Has(catalog.Flag) {
		if !hasValue {
			store.Set(opt, 0, "true", catalog.SourceConfiguration)
			return nil
		}
		b, ok := parseBool(value)
		if !ok {
			return &ErrInvalidBoolValue{Name: fullName, Value: value, Source: source}
		}
		store.Set(opt, 0, boolString(b), catalog.SourceConfiguration)
		return nil
	}

	if !hasValue && opt.Flags.Has(catalog.Required) {
		return &ErrMissingValue{Name: fullName, Source: source}
	}

	values := []string{value}
	if opt.Flags.Has(catalog.Multiple) && len(opt.Separators) > 0 {
		if split := varstring.SplitString(value, opt.Separators); len(split) > 0 {
			values = split
		}
	}

	idx := 0
	if opt.Flags.Has(catalog.Multiple) {
		idx = valuestore.SizeAppend
	}
	for _, v := range values {
		if opt.Validator != nil && !opt.Validator.Validate(v) {
			return &ErrValidatorRejected{Name: fullName, Value: v, Source: source}
		}
		store.Set(opt, idx, v, catalog.SourceConfiguration)
	}
	return nil
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
