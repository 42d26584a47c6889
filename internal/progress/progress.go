// Package progress resolves the stored progress value into a canonical
// completion fraction and percentage.
//
// Stored progress is ambiguous: some records hold a fraction of 1, others a
// percentage out of 100. Values greater than 1 are read as percentages and
// everything else as a fraction, so a stored 1 always means fully complete.
// Every display and filter path goes through this package so the rule is
// applied the same way everywhere.
package progress

import "math"

// Fraction returns progress as a value in [0,1].
func Fraction(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	f := p
	if p > 1 {
		f = p / 100
	}
	return clamp(f)
}

// Percentage returns progress as a truncated integer percentage in [0,100].
func Percentage(p float64) int {
	return int(Fraction(p) * 100)
}

// IsComplete reports whether progress is at or above 100%.
func IsComplete(p float64) bool {
	return Percentage(p) >= 100
}

// Average returns the mean completion of values as a percentage.
// Each value is normalized before averaging. No values yields 0.
func Average(values ...float64) int {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += Fraction(v)
	}
	return int(clamp(sum/float64(len(values))) * 100)
}

func clamp(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
