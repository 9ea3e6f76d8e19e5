// unquote.go - quote stripping.
// SPDX-License-Identifier: GPL-3.0-or-later

package varstring

// defaultQuotePairs pairs each supported quote character with itself:
// a leading `'` must be closed by `'`, a leading `"` must be closed by `"`.
// Mixed pairs (e.g. `'..."`) are intentionally not recognized.
const defaultQuotePairs = "''\"\""

// Unquote strips a single layer of matching quote characters from s.
//
// pairs is read two runes at a time as (open, close) pairs; the first
// pair whose open rune matches the first rune of s and whose close rune
// matches the last rune of s wins, and the interior substring (with the
// quotes removed) is returned. If pairs is omitted, it defaults to
// pairing `'` with itself and `"` with itself.
//
// Unbalanced or mismatched quoting, or strings shorter than two runes,
// are returned unchanged.
func Unquote(s string, pairs ...string) string {
	p := defaultQuotePairs
	if len(pairs) > 0 {
		p = pairs[0]
	}

	sr := []rune(s)
	if len(sr) < 2 {
		return s
	}

	pr := []rune(p)
	for i := 0; i+1 < len(pr); i += 2 {
		open, close := pr[i], pr[i+1]
		if sr[0] == open && sr[len(sr)-1] == close {
			return string(sr[1 : len(sr)-1])
		}
	}
	return s
}
