package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {

	type test struct {
		input  float64
		places int
		output float64
	}

	tests := map[string]test{
		"zero": {
			input:  0,
			places: 2,
			output: 0,
		},
		"half-up": {
			input:  0.005,
			places: 2,
			output: 0.01,
		},
		"down": {
			input:  0.0049,
			places: 2,
			output: 0,
		},
		"negative": {
			input:  -1,
			places: 2,
			output: -1,
		},
		"accuracy-band-low": {
			input:  1471.0 / 1962.0,
			places: 2,
			output: 0.75,
		},
		"accuracy-band-high": {
			input:  1472.0 / 1962.0,
			places: 2,
			output: 0.75,
		},
		"accuracy-band-edge": {
			input:  1481.0 / 1962.0,
			places: 2,
			output: 0.75,
		},
		"accuracy-out-of-band": {
			input:  1482.0 / 1962.0,
			places: 2,
			output: 0.76,
		},
		"zero-places": {
			input:  0.5,
			places: 0,
			output: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.output, Round(tt.input, tt.places))
		})
	}
}

func TestEq(t *testing.T) {

	type test struct {
		a, b   float64
		places int
		eq     bool
	}

	tests := map[string]test{
		"exact": {
			a:      0.75,
			b:      0.75,
			places: 2,
			eq:     true,
		},
		"same-band": {
			a:      1471.0 / 1962.0,
			b:      0.75,
			places: 2,
			eq:     true,
		},
		"different-band": {
			a:      1461.0 / 1962.0,
			b:      0.75,
			places: 2,
			eq:     false,
		},
		"unrounded-target": {
			a:      0.856,
			b:      0.86,
			places: 2,
			eq:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.eq, Eq(tt.a, tt.b, tt.places))
		})
	}
}
