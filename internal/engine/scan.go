package engine

import "strings"

// digitsOf keeps only the decimal digit characters of s. Separators,
// the leading "+", and sentinel text all drop out.
func digitsOf(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// longestDigitRun returns the length of the longest consecutive run of
// a single repeated digit.
func longestDigitRun(digits string) int {
	best, run := 0, 0
	for i := 0; i < len(digits); i++ {
		if i > 0 && digits[i] == digits[i-1] {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

// longestSequentialRun returns the length of the longest strictly
// ascending or strictly descending consecutive run anywhere in digits.
// No wraparound: 9 is not followed by 0, nor 0 by 9.
func longestSequentialRun(digits string) int {
	if len(digits) == 0 {
		return 0
	}
	best, asc, desc := 1, 1, 1
	for i := 1; i < len(digits); i++ {
		if digits[i] == digits[i-1]+1 {
			asc++
		} else {
			asc = 1
		}
		if digits[i] == digits[i-1]-1 {
			desc++
		} else {
			desc = 1
		}
		if asc > best {
			best = asc
		}
		if desc > best {
			best = desc
		}
	}
	return best
}

// hasRepeatedPair reports whether some 2-digit group appears at least
// minRepeats times back to back, e.g. "12121212" for minRepeats 4.
func hasRepeatedPair(digits string, minRepeats int) bool {
	for start := 0; start+2*minRepeats <= len(digits); start++ {
		pair := digits[start : start+2]
		reps := 1
		for pos := start + 2; pos+2 <= len(digits) && digits[pos:pos+2] == pair; pos += 2 {
			reps++
		}
		if reps >= minRepeats {
			return true
		}
	}
	return false
}
