package reverse

import (
	cmath "github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal/math"
)

// BandState describes the outcome of the accuracy range discovery.
type BandState int

const (
	// Infeasible means no correct/incorrect split rounds to the target accuracy.
	Infeasible BandState = iota
	// Single means exactly one split does.
	Single
	// Range means a contiguous band of splits does.
	Range
)

// Band holds the boundary splits of the set of correct prediction counts
// whose rounded accuracy equals the target.
//
// Accuracy is strictly monotonic in the correct count and rounding preserves
// order, so all counts between the two boundaries also round to the target.
// The two endpoints therefore fully parameterize the feasible set.
type Band struct {
	MaxCorrect   int
	MinIncorrect int
	MinCorrect   int
	MaxIncorrect int

	state BandState
}

// State returns whether the band is infeasible, a single split or a range.
func (b Band) State() BandState {
	return b.state
}

// Feasible checks if at least one split rounds to the target accuracy.
func (b Band) Feasible() bool {
	return b.state != Infeasible
}

// Width returns the number of distinct correct prediction counts in the band.
func (b Band) Width() int {
	switch b.state {
	case Single:
		return 1
	case Range:
		return b.MaxCorrect - b.MinCorrect + 1
	}
	return 0
}

// FindBand scans the correct prediction count from totalSamples down to 1 and
// records the first and last split whose rounded accuracy equals the rounded
// target. The first match is the highest correct count, the last match the
// lowest, which together bound the feasible band.
func FindBand(totalSamples int, targetAccuracy float64, places int) Band {
	b := Band{}

	matches := 0
	for correct := totalSamples; correct > 0; correct-- {
		incorrect := totalSamples - correct
		accuracy := float64(correct) / float64(totalSamples)
		if !cmath.Eq(accuracy, targetAccuracy, places) {
			continue
		}
		if matches == 0 {
			b.MaxCorrect = correct
			b.MinIncorrect = incorrect
		} else {
			b.MinCorrect = correct
			b.MaxIncorrect = incorrect
		}
		matches++
	}

	switch {
	case matches == 0:
		b.state = Infeasible
	case matches == 1:
		b.state = Single
		b.MinCorrect = b.MaxCorrect
		b.MaxIncorrect = b.MinIncorrect
	default:
		b.state = Range
	}
	return b
}
