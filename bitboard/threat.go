package bitboard

// floodFrom grows seed, restricted to within, by repeated dilation
// until it stops changing. A winding group can be more than Size
// steps deep, so the loop is bounded the same way Groups is, by
// Size*Size steps.
func (c *Constants) floodFrom(seed, within Bitmap) Bitmap {
	reach := seed & within
	for i := 0; i < c.Size*c.Size; i++ {
		grown := reach | (c.Dilate(reach) & within)
		if grown == reach {
			break
		}
		reach = grown
	}
	return reach
}

// PlacementThreats returns the empty squares that would complete a
// horizontal (west-east) or vertical (south-north) road for a player
// if filled with one of that player's road pieces. blocking is every
// square that cannot itself become a road piece by a simple
// flatstone placement: the opponent's pieces plus this player's own
// standing stones.
func (c *Constants) PlacementThreats(roadPieces, blocking Bitmap) (horizontal, vertical Bitmap) {
	horizontal = c.axisThreats(roadPieces, blocking, West, East)
	vertical = c.axisThreats(roadPieces, blocking, South, North)
	return
}

func (c *Constants) axisThreats(roadPieces, blocking Bitmap, edge1, edge2 Direction) Bitmap {
	reachLo := c.floodFrom(c.Edges[edge1], roadPieces)
	reachHi := c.floodFrom(c.Edges[edge2], roadPieces)

	empty := c.Complement(roadPieces | blocking)

	// A square on edge1/edge2 itself satisfies that side of the road
	// with no further piece needed beyond the edge, so it counts as
	// reachable even when reachLo/reachHi hasn't touched anything
	// there yet.
	adjLo := (c.Dilate(reachLo) | c.Edges[edge1]) & empty
	adjHi := (c.Dilate(reachHi) | c.Edges[edge2]) & empty

	return adjLo & adjHi &^ (reachLo | reachHi)
}
