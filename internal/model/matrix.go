package model

// ConfusionMatrix is a binary classification outcome split into the four cells.
// All of class A (the positive class) lands in TP or FN, all of class B in FP or TN,
// so TP+FN and FP+TN recover the two class sizes.
type ConfusionMatrix struct {
	TP int `json:"tp"`
	FN int `json:"fn"`
	FP int `json:"fp"`
	TN int `json:"tn"`
}

// Total returns the overall sample size covered by the matrix.
func (m ConfusionMatrix) Total() int {
	return m.TP + m.FN + m.FP + m.TN
}

// Correct returns the number of correct predictions.
func (m ConfusionMatrix) Correct() int {
	return m.TP + m.TN
}

// Accuracy returns the fraction of correct predictions.
func (m ConfusionMatrix) Accuracy() (float64, bool) {
	return ratio(m.TP+m.TN, m.Total())
}

// Sensitivity returns the true positive rate.
func (m ConfusionMatrix) Sensitivity() (float64, bool) {
	return ratio(m.TP, m.TP+m.FN)
}

// Specificity returns the true negative rate.
func (m ConfusionMatrix) Specificity() (float64, bool) {
	return ratio(m.TN, m.TN+m.FP)
}

// F1 returns the harmonic mean of precision and sensitivity.
func (m ConfusionMatrix) F1() (float64, bool) {
	return ratio(2*m.TP, 2*m.TP+m.FP+m.FN)
}

// Precision returns the positive predictive value.
func (m ConfusionMatrix) Precision() (float64, bool) {
	return ratio(m.TP, m.TP+m.FP)
}

// ratio guards the zero denominator case.
// A false flag means the metric is undefined for this matrix,
// it never leaks a NaN into a rounded comparison.
func ratio(num, den int) (float64, bool) {
	if den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}
