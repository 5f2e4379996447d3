package bitboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPlacementThreatsE6 is the spec's literal scenario: a 5x5 board
// with a single row of white flatstones on a1..d1 and e1 empty, no
// opposing piece on e1 or its neighbors. Filling e1 completes a
// horizontal road from the west edge straight through to the east
// edge, with no road-piece needed beyond e1 itself.
func TestPlacementThreatsE6(t *testing.T) {
	c := Precompute(5)

	// a1..d1: west edge (x=4) through x=1, at the south row (y=0).
	roadPieces := c.Square(1, 0) | c.Square(2, 0) | c.Square(3, 0) | c.Square(4, 0)
	e1 := c.Square(0, 0)

	horizontal, vertical := c.PlacementThreats(roadPieces, 0)

	assert.NotEqual(t, Bitmap(0), horizontal&e1, "e1 must be reported as a horizontal placement threat")
	assert.Equal(t, Bitmap(0), vertical&e1)
}

// TestPlacementThreatsSoundness checks property 7's horizontal half
// for one road layout on several board sizes: every reported
// horizontal threat is empty, and filling it with a road piece
// connects the west edge to the east edge.
func TestPlacementThreatsSoundness(t *testing.T) {
	for _, n := range []int{3, 5, 6, 8} {
		c := Precompute(n)

		// A broken road along the south row, with the east-edge
		// square left empty.
		var road Bitmap
		for x := 1; x < n; x++ {
			road |= c.Square(x, 0)
		}

		horizontal, _ := c.PlacementThreats(road, 0)
		empty := c.Complement(road)

		for i := 0; i < n*n; i++ {
			sq := Bitmap(1) << uint(i)
			if horizontal&sq == 0 {
				continue
			}
			assert.NotEqual(t, Bitmap(0), sq&empty, "threat square must be empty")

			filled := road | sq
			found := false
			for _, g := range c.Groups(filled) {
				if g&c.Edges[West] != 0 && g&c.Edges[East] != 0 {
					found = true
				}
			}
			assert.True(t, found, "filling a reported threat must connect west to east")
		}
	}
}

// TestGroupsSerpentineGroupConnects exercises a road group whose
// graph diameter exceeds the board size, verifying Groups converges
// to a single component rather than splitting it.
func TestGroupsSerpentineGroupConnects(t *testing.T) {
	c := Precompute(3)

	// Left column, top row, right column: a U-shape of graph distance
	// 6 from the bottom-left corner, on a board of size 3.
	var road Bitmap
	for y := 0; y < 3; y++ {
		road |= c.Square(0, y)
		road |= c.Square(2, y)
	}
	for x := 0; x < 3; x++ {
		road |= c.Square(x, 2)
	}

	groups := c.Groups(road)
	assert.Len(t, groups, 1)
	assert.Equal(t, road, groups[0])
}
