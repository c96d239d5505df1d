// Package sortutil provides the numeric-aware, case-insensitive string
// comparison shared by the aggregation layer (bucket label ordering) and the
// derived view (column sorting), so "2" sorts before "10" everywhere.
package sortutil

import (
	"strings"
	"unicode"
)

// Natural compares a and b case-insensitively, treating digit runs as
// numbers. Returns -1, 0 or 1.
func Natural(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0

	for i < len(ra) && j < len(rb) {
		ca, cb := ra[i], rb[j]

		if unicode.IsDigit(ca) && unicode.IsDigit(cb) {
			ia, na := digitRun(ra, i)
			jb, nb := digitRun(rb, j)
			if c := compareDigits(na, nb); c != 0 {
				return c
			}
			i, j = ia, jb
			continue
		}

		la, lb := unicode.ToLower(ca), unicode.ToLower(cb)
		if la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	switch {
	case i < len(ra):
		return 1
	case j < len(rb):
		return -1
	}
	// Equal ignoring case; fall back to a byte compare so ordering is total.
	return strings.Compare(a, b)
}

// NaturalLess reports whether a sorts before b under Natural ordering.
func NaturalLess(a, b string) bool {
	return Natural(a, b) < 0
}

// digitRun returns the index past the run starting at i and the run itself.
func digitRun(rs []rune, i int) (int, string) {
	start := i
	for i < len(rs) && unicode.IsDigit(rs[i]) {
		i++
	}
	return i, string(rs[start:i])
}

// compareDigits compares two digit strings numerically without parsing, so
// arbitrarily long runs cannot overflow.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
