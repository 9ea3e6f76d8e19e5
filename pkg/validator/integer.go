// integer.go - the "integer" validator: optional enumeration/range checks
// on top of base-10 int64 parsing.
// SPDX-License-Identifier: GPL-3.0-or-later

package validator

import (
	"fmt"
	"math"
	"strings"
)

const rangeSeparator = "..."

type integerValidator struct {
	enums  []int64
	ranges [][2]int64
}

func (v *integerValidator) Name() string { return "integer" }

func (v *integerValidator) Validate(value string) bool {
	n, ok := parseInt64(value)
	if !ok {
		return false
	}
	if len(v.enums) == 0 && len(v.ranges) == 0 {
		return true
	}
	for _, e := range v.enums {
		if n == e {
			return true
		}
	}
	for _, rg := range v.ranges {
		if n >= rg[0] && n <= rg[1] {
			return true
		}
	}
	return false
}

// newIntegerFactory returns the Factory for "integer". Each argument is
// either a bare integer (an allowed value) or an "A...B" range (an
// allowed inclusive interval). Arguments that parse as neither, or
// ranges with A > B, are dropped and reported via diag instead of
// failing construction.
func newIntegerFactory(diag func(string)) Factory {
	return func(args []string) (Validator, error) {
		v := &integerValidator{}
		for _, raw := range args {
			a := strings.TrimSpace(raw)
			if idx := strings.Index(a, rangeSeparator); idx >= 0 {
				lo, okLo := parseInt64(strings.TrimSpace(a[:idx]))
				hi, okHi := parseInt64(strings.TrimSpace(a[idx+len(rangeSeparator):]))
				if !okLo || !okHi || lo > hi {
					report(diag, "integer: invalid range %q ignored", a)
					continue
				}
				v.ranges = append(v.ranges, [2]int64{lo, hi})
				continue
			}
			n, ok := parseInt64(a)
			if !ok {
				report(diag, "integer: invalid enumeration value %q ignored", a)
				continue
			}
			v.enums = append(v.enums, n)
		}
		return v, nil
	}
}

// parseInt64 accepts an optional leading sign followed by one or more
// decimal digits, with no other characters, rejecting magnitudes that
// overflow int64. Exported as ParseInteger for reuse by callers (such as
// the value store's ranged integer lookups) that need the exact same
// grammar outside of a full Validator.
func ParseInteger(s string) (int64, bool) {
	return parseInt64(s)
}

func parseInt64(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	i := 0
	switch s[0] {
	case '+':
		i = 1
	case '-':
		neg = true
		i = 1
	}
	if i >= len(s) {
		return 0, false
	}
	var n uint64
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := uint64(c - '0')
		if n > (math.MaxUint64-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	const maxPositive = uint64(math.MaxInt64)
	if neg {
		if n > maxPositive+1 {
			return 0, false
		}
		if n == maxPositive+1 {
			return math.MinInt64, true
		}
		return -int64(n), true
	}
	if n > maxPositive {
		return 0, false
	}
	return int64(n), true
}

func report(diag func(string), format string, args ...any) {
	if diag != nil {
		diag(fmt.Sprintf(format, args...))
	}
}
