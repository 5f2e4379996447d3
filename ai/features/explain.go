package features

import "math"

// Sample is one row of the local-linear explainer's regression data:
// a masked feature vector, the model's label for it, and the
// cosine-kernel weight measuring how close the mask is to the
// original input.
type Sample struct {
	Features []float64
	Label    float64
	Weight   float64
}

// GatherFeatures returns the names, in vector order, of every entry
// in v with a nonzero value.
func GatherFeatures(v *Vector) []string {
	var names []string
	for i, x := range v.Values {
		if x != 0 {
			names = append(names, v.Names[i])
		}
	}
	return names
}

// Baseline is the explainer's reference sample: every mask entry at
// 1.0, so the model scores the input unperturbed, with weight 1.0.
func Baseline(model Model, v *Vector) Sample {
	l := len(v.Values)
	ones := make([]float64, l)
	for i := range ones {
		ones[i] = 1.0
	}
	label := model.Predict(v)
	return Sample{Features: ones, Label: label, Weight: 1.0}
}

// SampleModel draws one perturbation sample for subset, a set of
// feature names to keep. Every other originally-nonzero entry of v is
// zeroed before scoring; the mask vector returned as Features has 1.0
// for members of subset and 0.0 elsewhere, regardless of whether that
// entry was zero in v to begin with.
func SampleModel(model Model, v *Vector, subset []string) Sample {
	l := len(v.Values)
	inSubset := make(map[string]bool, len(subset))
	for _, n := range subset {
		inSubset[n] = true
	}

	mask := make([]float64, l)
	perturbed := &Vector{Names: v.Names, Values: make([]float64, l)}
	var sum float64
	for i, name := range v.Names {
		if inSubset[name] {
			mask[i] = 1.0
			sum++
		}
		if inSubset[name] {
			perturbed.Values[i] = v.Values[i]
		}
	}

	label := model.Predict(perturbed)

	var weight float64
	if sum != 0 {
		weight = sum / (math.Sqrt(sum) * math.Sqrt(float64(l)))
	}

	return Sample{Features: mask, Label: label, Weight: weight}
}
