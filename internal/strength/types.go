// Package strength scores passwords against a fixed set of heuristic rules.
package strength

// MaxScore is the denominator shown alongside a score.
const MaxScore = 8

const (
	strongMin = 6
	mediumMin = 3
)

// Suggestion texts, in rule evaluation order.
const (
	SuggestLength     = "Password should be at least 8 characters long."
	SuggestLowercase  = "Include at least one lowercase letter."
	SuggestUppercase  = "Include at least one uppercase letter."
	SuggestDigit      = "Include at least one digit."
	SuggestSymbol     = "Include at least one special symbol."
	SuggestSequential = "Avoid sequential characters like 'abc' or '123'."
	SuggestRepeated   = "Avoid repeated characters like 'aaa' or '111'."
	SuggestCommon     = "Avoid common words or sequences like 'password' or '123456'."
)

// Result is the outcome of evaluating one password.
type Result struct {
	Score       int      `json:"score"`
	Strength    Strength `json:"strength"`
	Suggestions []string `json:"suggestions"`
}

// Summary aggregates the results of a batch.
type Summary struct {
	Total        int      `json:"total"`
	StrongCount  int      `json:"strong_count"`
	MediumCount  int      `json:"medium_count"`
	WeakCount    int      `json:"weak_count"`
	Weakest      Strength `json:"weakest,omitempty"`
	AverageScore float64  `json:"average_score"`
}
