package strength

import "sort"

// SortByScore orders items weakest first by score. Ties keep input order.
func SortByScore[T any](items []T, result func(T) Result) {
	sort.SliceStable(items, func(i, j int) bool {
		return result(items[i]).Score < result(items[j]).Score
	})
}
