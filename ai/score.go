// Package ai implements the position evaluator: the sub-feature
// kernels of section 4.3, their orchestration into a signed score,
// and the terminal short-circuit that turns a resolved game into a
// mate-distance score.
package ai

// Score is the evaluator's return type: a signed heuristic value from
// the side-to-move's perspective, or a mate-distance-scaled terminal
// score.
type Score int32

const (
	Win  Score = 1_000_000
	Lose Score = -1_000_000
	Zero Score = 0

	// MaxPly bounds how long a proof of mate can take to reach, which
	// keeps terminal scores in a band the search can always tell
	// apart from heuristic ones.
	MaxPly = 2000
)
