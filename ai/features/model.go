package features

import "gonum.org/v1/gonum/mat"

// Model is a learned evaluator: anything that can score a feature
// vector. The scalar evaluator in the ai package is hand-tuned;
// Model stands in for a trained alternative, scored and explained the
// same way.
type Model interface {
	Predict(v *Vector) float64
}

// LinearModel is a single-layer affine model: Predict is a dot
// product against a weight vector plus a bias. It's the simplest
// legitimate "trained" evaluator and doubles as ground truth for
// testing the explainer, since a local-linear explanation of an
// already-linear model over SampleModel's 0/1 masks should recover
// each feature's weight times its value exactly.
type LinearModel struct {
	weights *mat.VecDense
	bias    float64
}

// NewLinearModel builds a LinearModel from a dense weight slice,
// ordered to match Names(n).
func NewLinearModel(weights []float64, bias float64) *LinearModel {
	w := make([]float64, len(weights))
	copy(w, weights)
	return &LinearModel{weights: mat.NewVecDense(len(w), w), bias: bias}
}

func (m *LinearModel) Predict(v *Vector) float64 {
	x := mat.NewVecDense(len(v.Values), v.Values)
	if x.Len() != m.weights.Len() {
		panic("features: model/vector length mismatch")
	}
	return mat.Dot(x, m.weights) + m.bias
}
