package rules

import "strings"

// Match reports whether value matches pattern.
//
// Pattern semantics: '*' matches any run of zero or more characters,
// every other character matches itself, and matching is case-insensitive.
// The pattern is anchored at both ends, so "unknown*" matches "Unknown
// Artist" but not "The Unknown". An empty pattern matches only the empty
// value. Only '*' is special; there is nothing to escape and no regex
// involved.
func Match(value, pattern string) bool {
	return matchRunes([]rune(strings.ToLower(value)), []rune(strings.ToLower(pattern)))
}

// matchRunes is an iterative glob matcher with single-star backtracking.
func matchRunes(value, pattern []rune) bool {
	vi, pi := 0, 0
	star, mark := -1, 0

	for vi < len(value) {
		switch {
		case pi < len(pattern) && pattern[pi] == '*':
			// Remember the star; try matching it against nothing first.
			star, mark = pi, vi
			pi++
		case pi < len(pattern) && pattern[pi] == value[vi]:
			pi++
			vi++
		case star >= 0:
			// Mismatch after a star: widen the star by one rune and retry.
			mark++
			vi = mark
			pi = star + 1
		default:
			return false
		}
	}

	// Trailing stars match the empty tail.
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}
