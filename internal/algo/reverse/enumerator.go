package reverse

import (
	"github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal/model"
)

// Enumerator walks every confusion matrix consistent with the class sizes
// and the feasible accuracy band.
//
// The walk is synchronous and deterministic : the outer loop moves from the
// highest correct count to the lowest, the inner loop from the highest TP to
// the lowest. Repeated walks over the same enumerator emit the same matrices
// in the same order.
type Enumerator struct {
	classA int
	classB int
	band   Band
}

// NewEnumerator creates an enumerator for the given class sizes and band.
func NewEnumerator(classA, classB int, band Band) *Enumerator {
	return &Enumerator{
		classA: classA,
		classB: classB,
		band:   band,
	}
}

// Each calls fn for every matrix in enumeration order.
// fn returning false stops the walk. An infeasible band emits nothing.
func (e *Enumerator) Each(fn func(m model.ConfusionMatrix) bool) {
	for i := 0; i < e.band.Width(); i++ {
		// base matrix for this correct count : all of the correct
		// predictions that fit go to TP, the rest spill into TN
		tp := e.band.MaxCorrect - i
		if tp > e.classA {
			tp = e.classA
		}
		m := model.ConfusionMatrix{
			TP: tp,
			FN: e.classA - tp,
		}
		m.FP = e.band.MinIncorrect + i - m.FN
		m.TN = e.classB - m.FP

		if !fn(m) {
			return
		}

		// redistribute the same totals between the two classes,
		// one correct prediction moving from TP to TN per step
		for m.TP > 0 && m.TN < e.classB {
			m.TP--
			m.FN++
			m.FP--
			m.TN++
			if !fn(m) {
				return
			}
		}
	}
}
