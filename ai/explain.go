package ai

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tak-ai/evalcore/bitboard"
	"github.com/tak-ai/evalcore/tak"
)

// ExplainScore writes a per-feature breakdown of a position's
// evaluation to out, one row per sub-feature kernel, one column per
// player. It's a diagnostic: the evaluator itself only ever reports
// the combined score.
func ExplainScore(out io.Writer, w *Weights, state tak.PositionView) {
	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	defer tw.Flush()

	m := state.Metadata()
	c := bitboard.Precompute(m.Size)
	n := Score(m.Size)

	fmt.Fprintf(tw, "\twhite\tblack\n")

	white := m.PlayerPieces(tak.White)
	black := m.PlayerPieces(tak.Black)
	whiteRoad := m.RoadPieces() & white
	blackRoad := m.RoadPieces() & black
	allPieces := m.AllPieces()

	fmt.Fprintf(tw, "material\t%d\t%d\n", material(w, m, white, n), material(w, m, black, n))
	fmt.Fprintf(tw, "road_groups\t%d\t%d\n", roadGroups(&c, w, whiteRoad, n), roadGroups(&c, w, blackRoad, n))
	fmt.Fprintf(tw, "road_slices\t%d\t%d\n", roadSlices(&c, w, whiteRoad, n), roadSlices(&c, w, blackRoad, n))
	fmt.Fprintf(tw, "captured\t%d\t%d\n", capturedFlats(w, m, tak.White, n), capturedFlats(w, m, tak.Black, n))
	fmt.Fprintf(tw, "threats\t%d\t%d\n",
		placementThreats(&c, w, whiteRoad, allPieces&^whiteRoad, n),
		placementThreats(&c, w, blackRoad, allPieces&^blackRoad, n),
	)

	for i, g := range c.Groups(whiteRoad) {
		fmt.Fprintf(tw, "g%d\t%dx%d\t\n", i, c.Width(g), c.Height(g))
	}
	for i, g := range c.Groups(blackRoad) {
		fmt.Fprintf(tw, "g%d\t\t%dx%d\n", i, c.Width(g), c.Height(g))
	}
}
