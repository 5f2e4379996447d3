package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tak-ai/evalcore/tak"
)

func TestBaselineIsUnperturbed(t *testing.T) {
	state, err := tak.ParseTPS("x6/x4,2,1/x2,2,2C,1,2/x2,2,x,1,1/x5,1/x6 1 6")
	require.NoError(t, err)
	v := Extract(state)

	weights := make([]float64, len(v.Values))
	for i := range weights {
		weights[i] = 1
	}
	model := NewLinearModel(weights, 0)

	s := Baseline(model, v)
	assert.Equal(t, 1.0, s.Weight)
	assert.Equal(t, model.Predict(v), s.Label)
	for _, f := range s.Features {
		assert.Equal(t, 1.0, f)
	}
}

func TestSampleModelZeroOverlapWeightIsZeroNotNaN(t *testing.T) {
	state, err := tak.ParseTPS("x6/x6/x6/x6/x6/x6 1 1")
	require.NoError(t, err)
	v := Extract(state)

	weights := make([]float64, len(v.Values))
	model := NewLinearModel(weights, 0)

	s := SampleModel(model, v, []string{"no such feature"})
	assert.Equal(t, 0.0, s.Weight)
	assert.False(t, math.IsNaN(s.Weight))
}

func TestSampleModelMasksToSubset(t *testing.T) {
	state, err := tak.ParseTPS("x6/x4,2,1/x2,2,2C,1,2/x2,2,x,1,1/x5,1/x6 1 6")
	require.NoError(t, err)
	v := Extract(state)

	weights := make([]float64, len(v.Values))
	for i := range weights {
		weights[i] = 1
	}
	model := NewLinearModel(weights, 0)

	subset := []string{"Flat count differential"}
	s := SampleModel(model, v, subset)

	want := v.Values[1]
	assert.Equal(t, want, s.Label)

	l := float64(len(v.Values))
	assert.InDelta(t, 1/(1*math.Sqrt(l)), s.Weight, 1e-9)
}
