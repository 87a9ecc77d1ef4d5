package model

// Metric enumerates the optional target metrics.
// Each value is tied directly to its formula through Of,
// so there is no name based dispatch and no unknown metric path.
type Metric int

const (
	Sensitivity Metric = iota
	Specificity
	F1
	Precision
)

// Metrics lists all optional metrics in their fixed order.
var Metrics = []Metric{Sensitivity, Specificity, F1, Precision}

// Of computes the metric for the given matrix.
// The flag is false when the metric is undefined for the matrix.
func (metric Metric) Of(m ConfusionMatrix) (float64, bool) {
	switch metric {
	case Sensitivity:
		return m.Sensitivity()
	case Specificity:
		return m.Specificity()
	case F1:
		return m.F1()
	case Precision:
		return m.Precision()
	}
	return 0, false
}

func (metric Metric) String() string {
	switch metric {
	case Sensitivity:
		return "sensitivity"
	case Specificity:
		return "specificity"
	case F1:
		return "f1"
	case Precision:
		return "precision"
	}
	return "unknown"
}
