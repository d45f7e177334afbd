// Package alphabet holds the A-Z letter conversions and modular arithmetic
// shared by every cipher
package alphabet

import (
	"strings"
)

// Size is the number of letters in the cipher alphabet
const Size = 26

// Offset returns the zero-based alphabet position of r and whether r is
// uppercase. ok is false for anything outside A-Z and a-z.
func Offset(r rune) (offset int, upper bool, ok bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true, true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), false, true
	}
	return 0, false, false
}

// Letter converts an offset back into a letter of the requested case.
// The offset is reduced mod 26 first.
func Letter(offset int, upper bool) rune {
	offset = Mod(offset, Size)
	if upper {
		return rune('A' + offset)
	}
	return rune('a' + offset)
}

// Mod is the mathematical modulo: the result is always in [0, m).
func Mod(x, m int) int {
	return ((x % m) + m) % m
}

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModInverse searches [1, m) for x with a*x ≡ 1 (mod m). It returns -1 when
// a has no inverse.
func ModInverse(a, m int) int {
	a = Mod(a, m)
	for x := 1; x < m; x++ {
		if Mod(a*x, m) == 1 {
			return x
		}
	}
	return -1
}

// Clean uppercases text and drops every non-letter.
func Clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if offset, _, ok := Offset(r); ok {
			b.WriteRune(Letter(offset, true))
		}
	}
	return b.String()
}
