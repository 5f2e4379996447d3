package ai

// Weights is the sub-feature weight table. It's exposed as a struct
// rather than baked into the kernels so it can be tuned later without
// touching the evaluator itself, but the signs and relative
// magnitudes below are the tuned 6x6 values: don't rebalance them
// casually.
type Weights struct {
	Flatstone     Score
	StandingStone Score
	Capstone      Score

	RoadGroup Score
	RoadSlice Score

	HardFlat Score
	SoftFlat Score

	PlacementThreat Score
}

// DefaultWeights is the 6x6-tuned weight table.
var DefaultWeights = Weights{
	Flatstone:     2000,
	StandingStone: 1000,
	Capstone:      1500,

	RoadGroup: -500,
	RoadSlice: 250,

	HardFlat: 500,
	SoftFlat: -250,

	PlacementThreat: 1000,
}
