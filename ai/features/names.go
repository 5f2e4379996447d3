package features

// globalNames are the two features that don't belong to either
// player.
var globalNames = []string{
	"White to move",
	"Flat count differential",
}

// perPlayerTemplate lists the per-player features, repeated once for the
// player to move and once for the opponent. symmetryClasses(n) is
// spliced in for the two six-entry (on a 6x6 board) symmetry blocks.
var perPlayerTemplate = []string{
	"Reserve flatstones",
	"Reserve capstones",
	"Friendlies under flatstones",
	"Friendlies under standing stones",
	"Friendlies under capstones",
	"Captives under flatstones",
	"Captives under standing stones",
	"Captives under capstones",
	"__FLAT_SYMMETRIES__",
	"__CAP_SYMMETRIES__",
	"Road groups",
	"Lines occupied",
	"Enemy flatstones next to our standing stones",
	"Enemy flatstones next to our capstones",
	"Unblocked road completion",
	"Soft-blocked road completion",
}

// perPlayerNames expands the template for a board of size n,
// substituting each player's six symmetry-class features in place.
func perPlayerNames(n int) []string {
	classes := symmetryClasses(n)
	var names []string
	for _, t := range perPlayerTemplate {
		switch t {
		case "__FLAT_SYMMETRIES__":
			for _, c := range classes {
				names = append(names, "Flatstones in "+c+" symmetries")
			}
		case "__CAP_SYMMETRIES__":
			for _, c := range classes {
				names = append(names, "Capstones in "+c+" symmetries")
			}
		default:
			names = append(names, t)
		}
	}
	return names
}

// Names returns the full, ordered feature name list for a board of
// size n: the two global features, then the player-to-move's block,
// then the opponent's block. For n=6 this is exactly the 54 names of
// the spec's feature vector layout.
func Names(n int) []string {
	per := perPlayerNames(n)
	names := append([]string{}, globalNames...)
	for _, s := range per {
		names = append(names, "Player: "+s)
	}
	for _, s := range per {
		names = append(names, "Opponent: "+s)
	}
	return names
}
