package domain

import "fmt"

// Extremum is an extreme value and the position it was found at.
type Extremum struct {
	Value float64
	Index int
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("mean: %w", ErrEmptyInput)
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// FindMin returns the smallest value and the last index it occurs at.
// ok is false when values is empty.
func FindMin(values []float64) (Extremum, bool) {
	return findExtremum(values, func(candidate, best float64) bool { return candidate <= best })
}

// FindMax returns the largest value and the last index it occurs at.
// ok is false when values is empty.
func FindMax(values []float64) (Extremum, bool) {
	return findExtremum(values, func(candidate, best float64) bool { return candidate >= best })
}

// findExtremum scans left to right; replaces uses a non-strict comparison so
// equal values later in the slice take over the index.
func findExtremum(values []float64, replaces func(candidate, best float64) bool) (Extremum, bool) {
	if len(values) == 0 {
		return Extremum{}, false
	}
	best := Extremum{Value: values[0], Index: 0}
	for i := 1; i < len(values); i++ {
		if replaces(values[i], best.Value) {
			best = Extremum{Value: values[i], Index: i}
		}
	}
	return best, true
}
