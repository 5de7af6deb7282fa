// Package stats holds small numeric helpers shared by the skills.
package stats

import "sort"

// Median returns the middle value of values, or the mean of the two middle
// values for an even count. An empty slice yields 0. The input is not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
