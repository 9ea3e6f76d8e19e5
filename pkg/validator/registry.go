// registry.go - validator factory registry.
// SPDX-License-Identifier: GPL-3.0-or-later

package validator

import (
	"strings"
	"sync"

	"github.com/go-advopt/advopt/pkg/varstring"
)

// Validator checks whether a candidate option value is acceptable.
type Validator interface {
	// Name identifies the kind of validator, e.g. "integer" or "regexp".
	Name() string

	// Validate reports whether value is acceptable.
	Validate(value string) bool
}

// Factory builds a Validator from the arguments given in a validator
// specification, e.g. the ["0...10", "99"] in "integer(0...10, 99)".
type Factory func(args []string) (Validator, error)

// Registry maps validator names to the factories that construct them.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu        sync.Mutex
	factories map[string]Factory

	// diag, when non-nil, receives a message for every malformed
	// enumeration, range, or flag that a factory silently drops instead
	// of failing construction over.
	diag func(string)
}

// NewRegistry returns a Registry with the "integer" and "regexp" (plus
// the "regex" alias) factories already registered. diag may be nil; when
// given, it is invoked with a human-readable message whenever a factory
// drops a malformed argument instead of failing outright.
func NewRegistry(diag func(string)) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		diag:      diag,
	}
	integer := newIntegerFactory(r.diag)
	regexp := newRegexpFactory(r.diag)
	_ = r.Register("integer", integer)
	_ = r.Register("regexp", regexp)
	_ = r.Register("regex", regexp)
	return r
}

// Register adds a factory under name. It fails if name is already taken.
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return &ErrDuplicateValidator{Name: name}
	}
	r.factories[name] = factory
	return nil
}

// New builds a Validator from name and args, looking up the factory
// registered under name.
func (r *Registry) New(name string, args []string) (Validator, error) {
	r.mu.Lock()
	factory, ok := r.factories[name]
	r.mu.Unlock()
	if !ok {
		return nil, &ErrUnknownValidator{Name: name}
	}
	return factory(args)
}

// Parse builds a Validator from a combined-string specification:
//
//	name                      -- no arguments
//	name(arg1, arg2, ...)     -- quoting-aware, comma-separated arguments
//	/pattern/flags            -- shortcut for regexp(/pattern/flags)
func (r *Registry) Parse(spec string) (Validator, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, &ErrEmptyValidatorSpec{}
	}
	if spec[0] == '/' {
		return r.New("regexp", []string{spec})
	}
	if idx := strings.IndexByte(spec, '('); idx >= 0 {
		name := strings.TrimSpace(spec[:idx])
		if !strings.HasSuffix(spec, ")") {
			return nil, &ErrUnterminatedValidatorArgs{Spec: spec}
		}
		rawArgs := spec[idx+1 : len(spec)-1]
		var args []string
		if strings.TrimSpace(rawArgs) != "" {
			for _, a := range varstring.SplitString(rawArgs, []string{","}) {
				if a = strings.TrimSpace(a); a != "" {
					args = append(args, a)
				}
			}
		}
		return r.New(name, args)
	}
	return r.New(spec, nil)
}
