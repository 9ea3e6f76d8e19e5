// store.go - Store and ValueList: the recorded values behind every
// option.
// SPDX-License-Identifier: GPL-3.0-or-later

package valuestore

import (
	"github.com/go-advopt/advopt/pkg/catalog"
	"github.com/go-advopt/advopt/pkg/validator"
)

// SizeAppend, passed as the index to Set, means "append a new value"
// rather than overwrite an existing one.
const SizeAppend = -1

// ValueList is the ordered list of strings recorded against one option.
type ValueList struct {
	values []string
	source catalog.Source
}

// Values returns the recorded values in insertion order. The returned
// slice must not be mutated by the caller.
func (l *ValueList) Values() []string {
	if l == nil {
		return nil
	}
	return l.values
}

// Source returns the source of the most recent write to this list.
func (l *ValueList) Source() catalog.Source {
	if l == nil {
		return catalog.NoSource
	}
	return l.source
}

// Store holds one ValueList per OptionInfo.
type Store struct {
	lists map[*catalog.OptionInfo]*ValueList
}

// New returns an empty Store.
func New() *Store {
	return &Store{lists: make(map[*catalog.OptionInfo]*ValueList)}
}

// Set records value against option at index, honoring option.Flags:
//
//   - when Multiple is absent, index is ignored and index 0 is always
//     overwritten (a fresh, one-element list);
//   - when Multiple is present and index == SizeAppend, value is
//     appended;
//   - when Multiple is present and index names an existing slot, that
//     slot is overwritten; an index beyond the current length is also
//     treated as an append.
//
// Writes to an alias are redirected to its resolved target.
func (s *Store) Set(option *catalog.OptionInfo, index int, value string, source catalog.Source) {
	option = option.ResolvedTarget()
	list := s.lists[option]
	if list == nil {
		list = &ValueList{}
		s.lists[option] = list
	}
	list.source = source
	option.Source = source

	if !option.Flags.Has(catalog.Multiple) {
		list.values = []string{value}
		return
	}
	switch {
	case index == SizeAppend || index >= len(list.values):
		list.values = append(list.values, value)
	case index >= 0:
		list.values[index] = value
	}
}

// Get returns the value recorded at index for option, following alias
// links. It fails with ErrUndefinedValue when index is out of range
// (including when option has never been set).
func (s *Store) Get(option *catalog.OptionInfo, index int) (string, error) {
	option = option.ResolvedTarget()
	list := s.lists[option]
	n := list.Values()
	if index < 0 || index >= len(n) {
		return "", &ErrUndefinedValue{Option: option.Name, Index: index, Size: len(n)}
	}
	return n[index], nil
}

// Size returns the number of values recorded for option (0 if never
// set), following alias links.
func (s *Store) Size(option *catalog.OptionInfo) int {
	option = option.ResolvedTarget()
	return len(s.lists[option].Values())
}

// SourceOf returns the source of the most recent write to option,
// following alias links. NoSource means option was never set.
func (s *Store) SourceOf(option *catalog.OptionInfo) catalog.Source {
	option = option.ResolvedTarget()
	return s.lists[option].Source()
}

// GetLong reads the value at index, parses it with the shared integer
// grammar, and optionally checks it against [min, max] (inclusive).
// hasRange controls whether min/max are consulted at all.
func (s *Store) GetLong(option *catalog.OptionInfo, index int, hasRange bool, min, max int64) (int64, error) {
	raw, err := s.Get(option, index)
	if err != nil {
		return -1, err
	}
	n, ok := validator.ParseInteger(raw)
	if !ok {
		return -1, &ErrNotAnInteger{Option: option.Name, Value: raw, Reason: "not a valid 64-bit integer"}
	}
	if hasRange && (n < min || n > max) {
		return -1, &ErrNotAnInteger{Option: option.Name, Value: raw, Reason: "outside of the accepted range"}
	}
	return n, nil
}

// Reset clears every recorded value. The catalog schema (the OptionInfo
// entries themselves) is untouched.
func (s *Store) Reset() {
	s.lists = make(map[*catalog.OptionInfo]*ValueList)
}

// ClearOption discards option's recorded values (following alias
// links) without touching any other option. Used by the
// configuration-file loader so a later file that sets a MULTIPLE
// option replaces the prior list instead of appending to it.
func (s *Store) ClearOption(option *catalog.OptionInfo) {
	option = option.ResolvedTarget()
	delete(s.lists, option)
}
