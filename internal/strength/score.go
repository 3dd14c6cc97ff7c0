package strength

import (
	"strings"
	"unicode/utf8"
)

// Evaluate scores password. Every rule sees the original input and each rule
// category adjusts the score at most once. The final score is clamped at 0.
func Evaluate(password string) Result {
	score := 0
	suggestions := make([]string, 0, 5)

	n := utf8.RuneCountInString(password)
	if n >= 8 {
		score++
		if n >= 12 {
			score++
		}
	} else {
		suggestions = append(suggestions, SuggestLength)
	}

	c := scanClasses(password)
	for _, check := range [...]struct {
		ok  bool
		msg string
	}{
		{c.lower, SuggestLowercase},
		{c.upper, SuggestUppercase},
		{c.digit, SuggestDigit},
		{c.symbol, SuggestSymbol},
	} {
		if check.ok {
			score++
		} else {
			suggestions = append(suggestions, check.msg)
		}
	}

	lowered := strings.ToLower(password)
	if hasSequence(lowered) {
		score--
		suggestions = append(suggestions, SuggestSequential)
	}
	if hasRepeat(password) {
		score--
		suggestions = append(suggestions, SuggestRepeated)
	}
	if hasCommonPattern(lowered) {
		score--
		suggestions = append(suggestions, SuggestCommon)
	}

	if score < 0 {
		score = 0
	}
	return Result{
		Score:       score,
		Strength:    forScore(score),
		Suggestions: suggestions,
	}
}
