package model

import (
	cmath "github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal/math"
)

// Target is an optional metric value.
// The zero value is unset and imposes no constraint.
type Target struct {
	value float64
	set   bool
}

// NewTarget creates a set target for the given value.
func NewTarget(v float64) Target {
	return Target{value: v, set: true}
}

// Value returns the target value and whether the target is set.
func (t Target) Value() (float64, bool) {
	return t.value, t.set
}

// IsSet checks if the target carries a value.
func (t Target) IsSet() bool {
	return t.set
}

// Targets is the optional metric set for one invocation.
type Targets struct {
	Sensitivity Target
	Specificity Target
	F1          Target
	Precision   Target
}

// For returns the target tracked for the given metric.
func (t Targets) For(metric Metric) Target {
	switch metric {
	case Sensitivity:
		return t.Sensitivity
	case Specificity:
		return t.Specificity
	case F1:
		return t.F1
	case Precision:
		return t.Precision
	}
	return Target{}
}

// Match checks the matrix against every set target under the given rounding.
// Unset targets always pass. A metric that is undefined for the matrix
// can never satisfy a set target.
func (t Targets) Match(m ConfusionMatrix, places int) bool {
	for _, metric := range Metrics {
		target := t.For(metric)
		v, set := target.Value()
		if !set {
			continue
		}
		computed, ok := metric.Of(m)
		if !ok {
			return false
		}
		if !cmath.Eq(computed, v, places) {
			return false
		}
	}
	return true
}
