package strength

// Summarize derives label counts, the weakest label, and the mean score.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	if len(results) == 0 {
		return s
	}

	total := 0
	for _, r := range results {
		total += r.Score
		switch r.Strength {
		case Strong:
			s.StrongCount++
		case Medium:
			s.MediumCount++
		case Weak:
			s.WeakCount++
		}
		if s.Weakest == "" || r.Strength.order() < s.Weakest.order() {
			s.Weakest = r.Strength
		}
	}
	s.AverageScore = float64(total) / float64(len(results))
	return s
}
