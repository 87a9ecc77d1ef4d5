package reverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindBand(t *testing.T) {

	type test struct {
		total    int
		accuracy float64
		places   int
		state    BandState
		max      int
		min      int
		width    int
	}

	tests := map[string]test{
		"infeasible": {
			// 9/10 = 0.9 and 10/10 = 1.0, nothing rounds to 0.95
			total:    10,
			accuracy: 0.95,
			places:   2,
			state:    Infeasible,
			width:    0,
		},
		"single": {
			// only 2/2 rounds to 1.00
			total:    2,
			accuracy: 1.0,
			places:   2,
			state:    Single,
			max:      2,
			min:      2,
			width:    1,
		},
		"range": {
			// 0.745 <= c/1962 < 0.755 holds for c in [1462, 1481]
			total:    1962,
			accuracy: 0.75,
			places:   2,
			state:    Range,
			max:      1481,
			min:      1462,
			width:    20,
		},
		"zero-places": {
			// at zero places everything from 0.5 upwards rounds to 1
			total:    4,
			accuracy: 1.0,
			places:   0,
			state:    Range,
			max:      4,
			min:      2,
			width:    3,
		},
		"low-accuracy": {
			total:    100,
			accuracy: 0.1,
			places:   1,
			state:    Range,
			max:      14,
			min:      5,
			width:    10,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := FindBand(tt.total, tt.accuracy, tt.places)
			assert.Equal(t, tt.state, b.State())
			assert.Equal(t, tt.width, b.Width())
			if tt.state == Infeasible {
				assert.False(t, b.Feasible())
				return
			}
			assert.True(t, b.Feasible())
			assert.Equal(t, tt.max, b.MaxCorrect)
			assert.Equal(t, tt.min, b.MinCorrect)
			assert.Equal(t, tt.total-tt.max, b.MinIncorrect)
			assert.Equal(t, tt.total-tt.min, b.MaxIncorrect)
		})
	}
}

func TestFindBand_Contiguous(t *testing.T) {

	// every correct count between the two boundaries must also round to the target
	b := FindBand(1962, 0.75, 2)
	assert.Equal(t, Range, b.State())

	for correct := b.MinCorrect; correct <= b.MaxCorrect; correct++ {
		accuracy := float64(correct) / 1962.0
		inner := FindBand(1962, accuracy, 2)
		assert.True(t, inner.Feasible())
		assert.Equal(t, b.MaxCorrect, inner.MaxCorrect)
		assert.Equal(t, b.MinCorrect, inner.MinCorrect)
	}
}

func TestFindBand_SingleMirrorsBounds(t *testing.T) {

	// a single split populates both boundary pairs with the same values
	b := FindBand(2, 1.0, 2)
	assert.Equal(t, Single, b.State())
	assert.Equal(t, b.MaxCorrect, b.MinCorrect)
	assert.Equal(t, b.MinIncorrect, b.MaxIncorrect)
}
