// integer_test.go - tests for the "integer" validator.
// SPDX-License-Identifier: GPL-3.0-or-later

package validator_test

import (
	"testing"

	"github.com/go-advopt/advopt/pkg/validator"
)

func TestIntegerValidatorNoArgs(t *testing.T) {
	r := validator.NewRegistry(nil)
	v, err := r.Parse("integer")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, ok := range []string{"0", "-1", "+1", "123456789", "-9223372036854775808"} {
		if !v.Validate(ok) {
			t.Errorf("Validate(%q) = false, want true", ok)
		}
	}
	for _, bad := range []string{"", "abc", "1.5", "1 2", "9223372036854775808", "-9223372036854775809", "++1"} {
		if v.Validate(bad) {
			t.Errorf("Validate(%q) = true, want false", bad)
		}
	}
}

func TestIntegerValidatorEnumeration(t *testing.T) {
	r := validator.NewRegistry(nil)
	v, err := r.Parse("integer(1, 2, 3)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, ok := range []string{"1", "2", "3"} {
		if !v.Validate(ok) {
			t.Errorf("Validate(%q) = false, want true", ok)
		}
	}
	for _, bad := range []string{"0", "4", "abc"} {
		if v.Validate(bad) {
			t.Errorf("Validate(%q) = true, want false", bad)
		}
	}
}

func TestIntegerValidatorRange(t *testing.T) {
	r := validator.NewRegistry(nil)
	v, err := r.Parse("integer(0...10, 99)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, ok := range []string{"0", "5", "10", "99"} {
		if !v.Validate(ok) {
			t.Errorf("Validate(%q) = false, want true", ok)
		}
	}
	for _, bad := range []string{"-1", "11", "98", "100"} {
		if v.Validate(bad) {
			t.Errorf("Validate(%q) = true, want false", bad)
		}
	}
}

func TestIntegerValidatorRangeWhitespaceTolerant(t *testing.T) {
	r := validator.NewRegistry(nil)
	v, err := r.Parse("integer( 0 ... 10 )")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !v.Validate("5") {
		t.Errorf("Validate(5) = false, want true")
	}
}

func TestIntegerValidatorInvalidRangeDropped(t *testing.T) {
	var diags []string
	r := validator.NewRegistry(func(msg string) { diags = append(diags, msg) })
	v, err := r.Parse("integer(10...1, 5)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	if !v.Validate("5") {
		t.Errorf("Validate(5) = false, want true")
	}
	if v.Validate("3") {
		t.Errorf("Validate(3) = true, want false: invalid range must be dropped, not kept")
	}
}
