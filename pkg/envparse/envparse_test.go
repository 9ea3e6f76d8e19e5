// envparse_test.go - tests for Parse.
// SPDX-License-Identifier: GPL-3.0-or-later

package envparse_test

import (
	"errors"
	"testing"

	"github.com/go-advopt/advopt/pkg/argparse"
	"github.com/go-advopt/advopt/pkg/catalog"
	"github.com/go-advopt/advopt/pkg/envparse"
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

func TestParseSplitsOnWhitespace(t *testing.T) {
	c := buildCatalog(t,
		catalog.OptionInfo{Name: "verbose", Flags: catalog.EnvironmentVariable | catalog.Flag},
		catalog.OptionInfo{Name: "output", Flags: catalog.EnvironmentVariable | catalog.Required},
	)
	store := valuestore.New()

	if err := envparse.Parse(c, store, "--verbose --output=result.txt"); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	v, _ := store.Get(c.Lookup("verbose", true), 0)
	if v != "true" {
		t.Fatalf("Get(verbose) = %q, want true", v)
	}
	v, _ = store.Get(c.Lookup("output", true), 0)
	if v != "result.txt" {
		t.Fatalf("Get(output) = %q, want result.txt", v)
	}
}

func TestParseQuotedValueKeepsInnerSpaces(t *testing.T) {
	c := buildCatalog(t, catalog.OptionInfo{Name: "message", Flags: catalog.EnvironmentVariable | catalog.Required})
	store := valuestore.New()

	if err := envparse.Parse(c, store, `--message "hello world"`); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v, _ := store.Get(c.Lookup("message", true), 0)
	if v != "hello world" {
		t.Fatalf("Get(message) = %q, want %q", v, "hello world")
	}
}

func TestParseEmptyStringYieldsNoTokens(t *testing.T) {
	c := buildCatalog(t, catalog.OptionInfo{Name: "verbose", Flags: catalog.EnvironmentVariable | catalog.Flag})
	store := valuestore.New()

	if err := envparse.Parse(c, store, ""); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if store.Size(c.Lookup("verbose", true)) != 0 {
		t.Fatalf("verbose should remain unset")
	}
}

func TestParseSeparatorRejected(t *testing.T) {
	c := buildCatalog(t, catalog.OptionInfo{Name: catalog.DefaultOptionName, Flags: catalog.AllSources | catalog.Multiple | catalog.DefaultOption})
	store := valuestore.New()

	err := envparse.Parse(c, store, "-- file.txt")
	var errs argparse.ParseErrors
	if !errors.As(err, &errs) || len(errs) != 1 {
		t.Fatalf("Parse: got %v, want one ParseErrors entry", err)
	}
	var sep *argparse.ErrSeparatorNotSupportedInEnvironment
	if !errors.As(errs[0], &sep) {
		t.Fatalf("Parse: got %v, want ErrSeparatorNotSupportedInEnvironment", errs[0])
	}
}
