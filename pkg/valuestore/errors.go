// errors.go - error types returned by Store.
// SPDX-License-Identifier: GPL-3.0-or-later

package valuestore

import "fmt"

// ErrUndefinedValue is returned by Get when index is out of range,
// including on an option that has never been set.
type ErrUndefinedValue struct {
	Option string
	Index  int
	Size   int
}

func (e *ErrUndefinedValue) Error() string {
	return fmt.Sprintf("valuestore: %q has no value at index %d (size %d)", e.Option, e.Index, e.Size)
}

// ErrNotAnInteger is returned by GetLong when the stored string does not
// parse as an integer per the shared integer grammar, or falls outside
// an optional [min, max] range.
type ErrNotAnInteger struct {
	Option string
	Value  string
	Reason string
}

func (e *ErrNotAnInteger) Error() string {
	return fmt.Sprintf("valuestore: %q value %q is not a valid integer: %s", e.Option, e.Value, e.Reason)
}
