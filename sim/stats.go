package sim

import (
	"math"
	"sort"
)

type IntOrFloat64 interface {
	int | int64 | float64
}

// Percentile calculates the p-th percentile of a data list using linear
// interpolation: rank = p/100 * (n-1); values between two ranks are
// interpolated. The input does not need to be sorted; a copy is sorted
// internally. Returns NaN on empty input.
func Percentile[T IntOrFloat64](data []T, p float64) float64 {
	n := len(data)
	if n == 0 {
		return math.NaN()
	}

	sorted := make([]float64, n)
	for i, v := range data {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))
	if upperIdx >= n {
		upperIdx = n - 1
	}

	if lowerIdx == upperIdx {
		return sorted[lowerIdx]
	}
	return sorted[lowerIdx] + (sorted[upperIdx]-sorted[lowerIdx])*(rank-float64(lowerIdx))
}

// Mean calculates the arithmetic mean of a data list.
// Returns NaN on empty input.
func Mean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, number := range numbers {
		sum += float64(number)
	}
	return sum / float64(len(numbers))
}
