// Package features extracts the fixed-length real-valued feature
// vector consumed by the learned (neural) evaluator, and implements
// the perturbation contract a local-linear explainer drives it with.
// It mirrors the scored evaluator's sub-features but reports raw
// counts rather than weighted contributions.
package features

// symmetryClass folds square (x, y) on an n x n board through the
// board's dihedral-4 symmetries to a canonical class name in the
// lower-left triangle: fold to the nearest corner on each axis, then
// sort the two folded coordinates so the smaller names the rank and
// the larger names the file. On a 6x6 board this yields exactly the
// six classes named in the spec: a1, b1, c1, b2, c2, c3.
func symmetryClass(x, y, n int) string {
	i := foldAxis(x, n)
	j := foldAxis(y, n)
	if i > j {
		i, j = j, i
	}
	return string(rune('a'+j)) + itoa(i+1)
}

func foldAxis(v, n int) int {
	if n-1-v < v {
		return n - 1 - v
	}
	return v
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	// Boards this spec supports (N <= 8) never need more than one
	// digit here, but don't silently truncate if that changes.
	digits := []rune{}
	for i > 0 {
		digits = append([]rune{rune('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}

// symmetryClasses returns the full, stable ordering of class names
// for an n x n board, lowest file/rank first. For n=6 this is exactly
// [a1 b1 c1 b2 c2 c3], matching the spec's literal order; for other
// board sizes the order follows the same construction but isn't
// pinned by the spec.
func symmetryClasses(n int) []string {
	half := (n + 1) / 2
	var classes []string
	for i := 0; i < half; i++ {
		for j := i; j < half; j++ {
			classes = append(classes, string(rune('a'+j))+itoa(i+1))
		}
	}
	return classes
}
