package strength

import "strings"

// Strength is the categorical bucket derived from a score.
type Strength string

const (
	Weak   Strength = "Weak"
	Medium Strength = "Medium"
	Strong Strength = "Strong"
)

// Valid reports whether s is one of the known labels.
func (s Strength) Valid() bool {
	switch s {
	case Weak, Medium, Strong:
		return true
	}
	return false
}

// order returns a sort key (lower = weaker).
func (s Strength) order() int {
	switch s {
	case Weak:
		return 0
	case Medium:
		return 1
	case Strong:
		return 2
	default:
		return 3
	}
}

// ParseStrength maps a case-insensitive label to a Strength.
func ParseStrength(label string) (Strength, bool) {
	label = strings.TrimSpace(label)
	for _, s := range [...]Strength{Weak, Medium, Strong} {
		if strings.EqualFold(label, string(s)) {
			return s, true
		}
	}
	return "", false
}

// AtOrBelow reports whether s is no stronger than threshold.
// Unknown labels never meet a threshold.
func AtOrBelow(s, threshold Strength) bool {
	if !s.Valid() || !threshold.Valid() {
		return false
	}
	return s.order() <= threshold.order()
}

// forScore maps a clamped score to its label.
func forScore(score int) Strength {
	switch {
	case score >= strongMin:
		return Strong
	case score >= mediumMin:
		return Medium
	default:
		return Weak
	}
}
