package strength

import (
	"strings"
	"unicode"
)

const symbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

var commonPatterns = [...]string{"password", "123456", "qwerty", "admin", "letmein"}

type classes struct {
	lower, upper, digit, symbol bool
}

func scanClasses(password string) classes {
	var c classes
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case unicode.IsDigit(r):
			c.digit = true
		case strings.ContainsRune(symbols, r):
			c.symbol = true
		}
	}
	return c
}

// hasSequence reports whether lowered contains a 3-gram of a-z or 0-9 in
// ascending order. Multi-byte runes never match since only ASCII bytes qualify.
func hasSequence(lowered string) bool {
	for i := 0; i+2 < len(lowered); i++ {
		a := lowered[i]
		if !(a >= 'a' && a <= 'x') && !(a >= '0' && a <= '7') {
			continue
		}
		if lowered[i+1] == a+1 && lowered[i+2] == a+2 {
			return true
		}
	}
	return false
}

// hasRepeat reports whether any character other than newline occurs three or
// more times in a row.
func hasRepeat(password string) bool {
	var prev rune
	run := 0
	for _, r := range password {
		if r == '\n' {
			run = 0
			continue
		}
		if run > 0 && r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run >= 3 {
			return true
		}
	}
	return false
}

func hasCommonPattern(lowered string) bool {
	for _, p := range commonPatterns {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}
