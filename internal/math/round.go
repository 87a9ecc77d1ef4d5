package math

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// Round rounds f to the given number of decimal places, half away from zero.
// NOTE : this is the single rounding rule for the whole module. Both the
// accuracy band discovery and the metric checks compare values only after
// passing through here, so there is no epsilon tolerance anywhere.
func Round(f float64, places int) float64 {
	return scalar.Round(f, places)
}

// Eq checks two values for equality after rounding both to the given number of decimal places.
func Eq(a, b float64, places int) bool {
	return Round(a, places) == Round(b, places)
}
