package model

// Record is one accepted matrix together with the targets that produced it.
// This is the tuple handed to the sink.
type Record struct {
	Matrix   ConfusionMatrix `json:"matrix"`
	Accuracy float64         `json:"accuracy"`
	Targets  Targets         `json:"-"`
}
