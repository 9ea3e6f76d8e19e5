// parser.go - the Parser: drains one token source into a Store.
// SPDX-License-Identifier: GPL-3.0-or-later

package argparse

import (
	"path/filepath"
	"strings"

	"github.com/go-advopt/advopt/pkg/catalog"
	"github.com/go-advopt/advopt/pkg/scanner"
	"github.com/go-advopt/advopt/pkg/valuestore"
	"github.com/go-advopt/advopt/pkg/varstring"
)

// Parser drives [scanner.Token] against a [catalog.Catalog], recording
// values into a [valuestore.Store]. One Parser instance is reused
// across all three sources; only the Source tag passed to Parse
// changes.
type Parser struct {
	cat   *catalog.Catalog
	store *valuestore.Store
}

// NewParser returns a Parser bound to cat and store.
func NewParser(cat *catalog.Catalog, store *valuestore.Store) *Parser {
	return &Parser{cat: cat, store: store}
}

// ParseProgramName splits argv[0] into its full (as-given) form and its
// base name, the way the orchestrator reports ProgramName/
// ProgramFullName. An empty argv yields two empty strings.
func ParseProgramName(argv []string) (full, base string) {
	if len(argv) == 0 {
		return "", ""
	}
	return argv[0], filepath.Base(argv[0])
}

// Parse tokenizes argv and drains every token into p.store, tagging
// each recorded value with source. argv must include the program name
// as its first element, per [scanner.Scanner.Scan].
//
// Parse never stops at the first diagnostic: it keeps draining the
// source, collecting every error, and returns them together as a
// [ParseErrors] once the source is exhausted. A nil return means the
// source held no errors.
func (p *Parser) Parse(argv []string, source catalog.Source) error {
	sc := &scanner.Scanner{Prefixes: []string{"--", "-"}, Separators: []string{"--"}}
	tokens, err := sc.Scan(argv)
	if err != nil {
		return err
	}

	r := &run{p: p, source: source, tokens: tokens}
	if len(tokens) > 0 {
		r.idx = 1 // skip the ProgramNameToken
	}

	afterSeparator := false
	for r.idx < len(r.tokens) {
		tok := r.tokens[r.idx]

		if afterSeparator {
			r.handlePositional(tok.String())
			r.idx++
			continue
		}

		switch t := tok.(type) {
		case scanner.SeparatorToken:
			switch {
			case source == catalog.SourceEnvironment:
				r.errs = append(r.errs, &ErrSeparatorNotSupportedInEnvironment{})
			case r.p.cat.DefaultOption() == nil:
				r.errs = append(r.errs, &ErrNoDefaultOption{Kind: "--"})
			default:
				afterSeparator = true
			}
		case scanner.OptionToken:
			if t.Prefix == "--" {
				r.handleLong(t)
			} else {
				r.handleShort(t)
			}
		case scanner.ArgumentToken:
			r.handlePositional(t.Value)
		}
		r.idx++
	}

	if len(r.errs) > 0 {
		return r.errs
	}
	return nil
}

// run holds the mutable state of one Parse call.
type run struct {
	p      *Parser
	source catalog.Source
	tokens []scanner.Token
	idx    int
	errs   ParseErrors
}

// consumeNext advances past the token that follows the one currently
// being examined and returns its value, provided that token is a bare
// argument; an option, a "--" separator, or end of input is left in
// place and reported as false, so a REQUIRED option never swallows the
// next option as its value.
func (r *run) consumeNext() (string, bool) {
	if r.idx+1 >= len(r.tokens) {
		return "", false
	}
	arg, ok := r.tokens[r.idx+1].(scanner.ArgumentToken)
	if !ok {
		return "", false
	}
	r.idx++
	return arg.Value, true
}

// consumeMultipleValues records every immediately-following ArgumentToken
// into o's value list, stopping at the first token that is not a bare
// argument (an option, a separator, or end of input). This is how a
// MULTIPLE option accepts "--name value value value" instead of treating
// the extra values as positional arguments.
func (r *run) consumeMultipleValues(o *catalog.OptionInfo) {
	for r.idx+1 < len(r.tokens) {
		arg, ok := r.tokens[r.idx+1].(scanner.ArgumentToken)
		if !ok {
			return
		}
		r.idx++
		r.record(o, arg.Value)
	}
}

func (r *run) handleLong(t scanner.OptionToken) {
	name, value, hasValue := splitEquals(t.Name)
	label := "--" + name

	o := r.p.cat.Lookup(name, false)
	if o == nil {
		r.errs = append(r.errs, &ErrUnknownOption{Token: label})
		return
	}
	if !sourceAllowed(o, r.source) {
		r.errs = append(r.errs, &ErrSourceNotAllowed{Token: tokenLabel(o), Source: r.source})
		return
	}
	if o.Flags.Has(catalog.Flag) {
		r.recordFlag(o, hasValue, value)
		return
	}

	val, err := r.resolveValue(o, tokenLabel(o), hasValue, value)
	if err != nil {
		r.errs = append(r.errs, err)
		return
	}
	r.record(o, val)
	if o.Flags.Has(catalog.Multiple) {
		r.consumeMultipleValues(o)
	}
}

func (r *run) handleShort(t scanner.OptionToken) {
	if t.Name == "" {
		r.handleBareDash()
		return
	}

	runes := []rune(t.Name)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		label := "-" + string(ch)

		o := r.p.cat.LookupShort(ch)
		if o == nil {
			r.errs = append(r.errs, &ErrUnknownOption{Token: label})
			return
		}
		if !sourceAllowed(o, r.source) {
			r.errs = append(r.errs, &ErrSourceNotAllowed{Token: label, Source: r.source})
			return
		}
		if o.Flags.Has(catalog.Flag) {
			r.recordFlag(o, false, "")
			continue
		}

		if o.Flags.Has(catalog.Required) {
			remainder := string(runes[i+1:])
			if remainder != "" {
				r.record(o, remainder)
			} else {
				next, ok := r.consumeNext()
				if !ok {
					r.errs = append(r.errs, &ErrOptionExpectsArgument{Token: label})
					return
				}
				r.record(o, next)
			}
			if o.Flags.Has(catalog.Multiple) {
				r.consumeMultipleValues(o)
			}
			return
		}

		// Optional-value option in the middle of a short chain: it takes
		// no inline value here, and any remaining letters are standalone
		// short options of their own, per the chain rule.
		r.record(o, "")
	}
}

func (r *run) handleBareDash() {
	def := r.p.cat.DefaultOption()
	if def == nil {
		r.errs = append(r.errs, &ErrNoDefaultOption{Kind: "-"})
		return
	}
	r.record(def, "-")
}

func (r *run) handlePositional(value string) {
	def := r.p.cat.DefaultOption()
	if def == nil {
		r.errs = append(r.errs, &ErrNoDefaultOption{Kind: "value", Value: value})
		return
	}
	r.record(def, value)
}

// resolveValue resolves the value a non-FLAG option was given: inline
// after "=", swallowed from the next token when REQUIRED, or empty
// when the option tolerates being given without one.
func (r *run) resolveValue(o *catalog.OptionInfo, label string, hasValue bool, value string) (string, error) {
	if hasValue {
		if value == "" && o.Flags.Has(catalog.Required) {
			return "", &ErrOptionMustHaveValue{Token: label}
		}
		return value, nil
	}
	if o.Flags.Has(catalog.Required) {
		next, ok := r.consumeNext()
		if !ok {
			return "", &ErrOptionExpectsArgument{Token: label}
		}
		return next, nil
	}
	return "", nil
}

// recordFlag records the presence (or, inside a configuration file,
// the boolean value) of a FLAG option.
func (r *run) recordFlag(o *catalog.OptionInfo, hasValue bool, value string) {
	if !hasValue {
		r.record(o, "true")
		return
	}
	if r.source != catalog.SourceConfiguration {
		r.errs = append(r.errs, &ErrFlagTakesNoArgument{Token: tokenLabel(o)})
		return
	}
	b, ok := parseBool(value)
	if !ok {
		r.errs = append(r.errs, &ErrFlagInvalidBoolValue{Token: tokenLabel(o), Value: value})
		return
	}
	r.record(o, boolString(b))
}

// record validates raw (splitting it on o.Separators first when o is
// MULTIPLE and carries any) and, for every surviving piece, appends or
// overwrites it in the store. A value rejected by o.Validator is
// diagnosed and never stored.
func (r *run) record(o *catalog.OptionInfo, raw string) {
	values := []string{raw}
	if o.Flags.Has(catalog.Multiple) && len(o.Separators) > 0 {
		if split := varstring.SplitString(raw, o.Separators); len(split) > 0 {
			values = split
		}
	}
	for _, v := range values {
		if o.Validator != nil && !o.Validator.Validate(v) {
			r.errs = append(r.errs, &ErrValidatorRejected{Token: tokenLabel(o), Value: v})
			continue
		}
		idx := 0
		if o.Flags.Has(catalog.Multiple) {
			idx = valuestore.SizeAppend
		}
		r.p.store.Set(o, idx, v, r.source)
	}
}

func sourceAllowed(o *catalog.OptionInfo, source catalog.Source) bool {
	flag, ok := catalog.OptionFlagForSource(source)
	if !ok {
		return true
	}
	return o.Flags.Has(flag)
}

func tokenLabel(o *catalog.OptionInfo) string {
	if o.Name == catalog.DefaultOptionName {
		return "the default option"
	}
	return "--" + o.Name
}

func splitEquals(s string) (name, value string, hasValue bool) {
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		return s[:idx], s[idx+1:], true
	}
	return s, "", false
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
