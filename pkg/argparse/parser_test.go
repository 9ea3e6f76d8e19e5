// parser_test.go - tests for Parser.
// SPDX-License-Identifier: GPL-3.0-or-later

package argparse_test

import (
	"errors"
	"testing"

	"github.com/go-advopt/advopt/pkg/argparse"
	"github.com/go-advopt/advopt/pkg/catalog"
	"github.com/go-advopt/advopt/pkg/valuestore"
)

func buildCatalog(t *testing.T, opts ...catalog.OptionInfo) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Construct(&catalog.OptionEnvironment{Options: opts})
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	return c
}

func TestParseLongFlag(t *testing.T) {
	c := buildCatalog(t, catalog.OptionInfo{Name: "verbose", ShortName: 'v', Flags: catalog.CommandLine | catalog.Flag})
	store := valuestore.New()
	p := argparse.NewParser(c, store)

	if err := p.Parse([]string{"prog", "--verbose"}, catalog.SourceCommandLine); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v, err := store.Get(c.Lookup("verbose", true), 0)
	if err != nil || v != "true" {
		t.Fatalf("Get(verbose) = (%q, %v), want (true, nil)", v, err)
	}
}

func TestParseLongOptionInlineAndNextToken(t *testing.T) {
	c := buildCatalog(t, catalog.OptionInfo{Name: "output", Flags: catalog.CommandLine | catalog.Required})
	store := valuestore.New()
	p := argparse.NewParser(c, store)

	if err := p.Parse([]string{"prog", "--output=result.txt"}, catalog.SourceCommandLine); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v, _ := store.Get(c.Lookup("output", true), 0)
	if v != "result.txt" {
		t.Fatalf("Get(output) = %q, want result.txt", v)
	}

	store.Reset()
	if err := p.Parse([]string{"prog", "--output", "result.txt"}, catalog.SourceCommandLine); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v, _ = store.Get(c.Lookup("output", true), 0)
	if v != "result.txt" {
		t.Fatalf("Get(output) (next-token form) = %q, want result.txt", v)
	}
}

func TestParseRequiredMissingValue(t *testing.T) {
	c := buildCatalog(t, catalog.OptionInfo{Name: "output", Flags: catalog.CommandLine | catalog.Required})
	store := valuestore.New()
	p := argparse.NewParser(c, store)

	err := p.Parse([]string{"prog", "--output"}, catalog.SourceCommandLine)
	var errs argparse.ParseErrors
	if !errors.As(err, &errs) || len(errs) != 1 {
		t.Fatalf("Parse: got %v, want one ParseErrors entry", err)
	}
	var expects *argparse.ErrOptionExpectsArgument
	if !errors.As(errs[0], &expects) {
		t.Fatalf("Parse: got %v, want ErrOptionExpectsArgument", errs[0])
	}
}

func TestParseRequiredEmptyValue(t *testing.T) {
	c := buildCatalog(t, catalog.OptionInfo{Name: "output", Flags: catalog.CommandLine | catalog.Required})
	store := valuestore.New()
	p := argparse.NewParser(c, store)

	err := p.Parse([]string{"prog", "--output="}, catalog.SourceCommandLine)
	var errs argparse.ParseErrors
	if !errors.As(err, &errs) || len(errs) != 1 {
		t.Fatalf("Parse: got %v, want one ParseErrors entry", err)
	}
	var mustHave *argparse.ErrOptionMustHaveValue
	if !errors.As(errs[0], &mustHave) {
		t.Fatalf("Parse: got %v, want ErrOptionMustHaveValue", errs[0])
	}
}

func TestParseMultipleWithSeparators(t *testing.T) {
	c := buildCatalog(t, catalog.OptionInfo{
		Name:       "tag",
		Flags:      catalog.CommandLine | catalog.Multiple,
		Separators: []string{","},
	})
	store := valuestore.New()
	p := argparse.NewParser(c, store)

	if err := p.Parse([]string{"prog", "--tag=a,b", "--tag=c"}, catalog.SourceCommandLine); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	o := c.Lookup("tag", true)
	if store.Size(o) != 3 {
		t.Fatalf("Size(tag) = %d, want 3", store.Size(o))
	}
	for i, want := range []string{"a", "b", "c"} {
		got, _ := store.Get(o, i)
		if got != want {
			t.Fatalf("Get(tag, %d) = %q, want %q", i, got, want)
		}
	}
}

func TestParseDefaultOptionWithSeparator(t *testing.T) {
	c := buildCatalog(t,
		catalog.OptionInfo{Name: "verbose", Flags: catalog.CommandLine | catalog.Flag},
		catalog.OptionInfo{Name: catalog.DefaultOptionName, Flags: catalog.CommandLine | catalog.Multiple | catalog.DefaultOption},
	)
	store := valuestore.New()
	p := argparse.NewParser(c, store)

	err := p.Parse([]string{"prog", "--verbose", "--", "file1", "--not-an-option"}, catalog.SourceCommandLine)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def := c.Lookup(catalog.DefaultOptionName, true)
	if store.Size(def) != 2 {
		t.Fatalf("Size(default) = %d, want 2", store.Size(def))
	}
	v0, _ := store.Get(def, 0)
	v1, _ := store.Get(def, 1)
	if v0 != "file1" || v1 != "--not-an-option" {
		t.Fatalf("Get(default, 0..1) = (%q, %q), want (file1, --not-an-option)", v0, v1)
	}
}

func TestParseNoDefaultOptionRejectsPositional(t *testing.T) {
	c := buildCatalog(t, catalog.OptionInfo{Name: "verbose", Flags: catalog.CommandLine | catalog.Flag})
	store := valuestore.New()
	p := argparse.NewParser(c, store)

	err := p.Parse([]string{"prog", "stray"}, catalog.SourceCommandLine)
	var errs argparse.ParseErrors
	if !errors.As(err, &errs) || len(errs) != 1 {
		t.Fatalf("Parse: got %v, want one ParseErrors entry", err)
	}
	var noDefault *argparse.ErrNoDefaultOption
	if !errors.As(errs[0], &noDefault) {
		t.Fatalf("Parse: got %v, want ErrNoDefaultOption", errs[0])
	}
}

func TestParseShortOptionChainingRequiredConsumesRemainder(t *testing.T) {
	c := buildCatalog(t,
		catalog.OptionInfo{Name: "all", ShortName: 'a', Flags: catalog.CommandLine | catalog.Flag},
		catalog.OptionInfo{Name: "block-size", ShortName: 'b', Flags: catalog.CommandLine | catalog.Required},
	)
	store := valuestore.New()
	p := argparse.NewParser(c, store)

	if err := p.Parse([]string{"prog", "-ab1024"}, catalog.SourceCommandLine); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	all := c.Lookup("all", true)
	block := c.Lookup("block-size", true)
	v, _ := store.Get(all, 0)
	if v != "true" {
		t.Fatalf("Get(all) = %q, want true", v)
	}
	v, _ = store.Get(block, 0)
	if v != "1024" {
		t.Fatalf("Get(block-size) = %q, want 1024", v)
	}
}

func TestParseShortOptionAlias(t *testing.T) {
	c := buildCatalog(t,
		catalog.OptionInfo{Name: "output", Flags: catalog.CommandLine | catalog.Required},
		catalog.OptionInfo{Name: "out", ShortName: 'o', AliasTarget: "output"},
	)
	store := valuestore.New()
	p := argparse.NewParser(c, store)

	if err := p.Parse([]string{"prog", "-o", "file.txt"}, catalog.SourceCommandLine); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	target := c.Lookup("output", true)
	v, _ := store.Get(target, 0)
	if v != "file.txt" {
		t.Fatalf("Get(output) = %q, want file.txt", v)
	}
}

func TestParseUnknownOption(t *testing.T) {
	c := buildCatalog(t, catalog.OptionInfo{Name: "verbose", Flags: catalog.CommandLine | catalog.Flag})
	store := valuestore.New()
	p := argparse.NewParser(c, store)

	err := p.Parse([]string{"prog", "--frobnicate"}, catalog.SourceCommandLine)
	var errs argparse.ParseErrors
	if !errors.As(err, &errs) || len(errs) != 1 {
		t.Fatalf("Parse: got %v, want one ParseErrors entry", err)
	}
	var unknown *argparse.ErrUnknownOption
	if !errors.As(errs[0], &unknown) {
		t.Fatalf("Parse: got %v, want ErrUnknownOption", errs[0])
	}
}

func TestParseSourceNotAllowed(t *testing.T) {
	c := buildCatalog(t, catalog.OptionInfo{Name: "secret", Flags: catalog.ConfigurationFile | catalog.Required})
	store := valuestore.New()
	p := argparse.NewParser(c, store)

	err := p.Parse([]string{"prog", "--secret=x"}, catalog.SourceCommandLine)
	var errs argparse.ParseErrors
	if !errors.As(err, &errs) || len(errs) != 1 {
		t.Fatalf("Parse: got %v, want one ParseErrors entry", err)
	}
	var notAllowed *argparse.ErrSourceNotAllowed
	if !errors.As(errs[0], &notAllowed) {
		t.Fatalf("Parse: got %v, want ErrSourceNotAllowed", errs[0])
	}
}

func TestParseSeparatorNotSupportedInEnvironment(t *testing.T) {
	c := buildCatalog(t,
		catalog.OptionInfo{Name: catalog.DefaultOptionName, Flags: catalog.AllSources | catalog.Multiple | catalog.DefaultOption},
	)
	store := valuestore.New()
	p := argparse.NewParser(c, store)

	err := p.Parse([]string{"env", "--", "x"}, catalog.SourceEnvironment)
	var errs argparse.ParseErrors
	if !errors.As(err, &errs) || len(errs) != 1 {
		t.Fatalf("Parse: got %v, want one ParseErrors entry", err)
	}
	var sep *argparse.ErrSeparatorNotSupportedInEnvironment
	if !errors.As(errs[0], &sep) {
		t.Fatalf("Parse: got %v, want ErrSeparatorNotSupportedInEnvironment", errs[0])
	}
}

func TestParseProgramName(t *testing.T) {
	full, base := argparse.ParseProgramName([]string{"/usr/local/bin/myapp", "--verbose"})
	if full != "/usr/local/bin/myapp" || base != "myapp" {
		t.Fatalf("ParseProgramName = (%q, %q), want (/usr/local/bin/myapp, myapp)", full, base)
	}
}
