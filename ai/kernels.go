package ai

import (
	"github.com/tak-ai/evalcore/bitboard"
	"github.com/tak-ai/evalcore/tak"
)

// material scores a player's top-most pieces by kind. Division by n
// is integer division and is intentional: scores scale with board
// size.
func material(w *Weights, m *tak.Metadata, playerPieces bitboard.Bitmap, n Score) Score {
	flats := Score(bitboard.Popcount(playerPieces & m.Flatstones))
	standing := Score(bitboard.Popcount(playerPieces & m.StandingStones))
	caps := Score(bitboard.Popcount(playerPieces & m.Capstones))

	return flats*w.Flatstone/n + standing*w.StandingStone/n + caps*w.Capstone/n
}

// roadGroups scores a player's road-contributing groups by how much
// of the board their bounding box spans in each direction. RoadGroup
// is negative, so wider or taller groups are penalized more than
// compact ones: a road win wants groups aligned with the direction
// it's building toward, not sprawled across both axes.
func roadGroups(c *bitboard.Constants, w *Weights, playerRoadPieces bitboard.Bitmap, n Score) Score {
	var eval Score
	for _, g := range c.Groups(playerRoadPieces) {
		width := Score(c.Width(g))
		height := Score(c.Height(g))
		eval += w.RoadGroup*width/n + w.RoadGroup*height/n
	}
	return eval
}

// roadSlices awards a bonus for each row and column that contains at
// least one of the player's road-contributing pieces.
func roadSlices(c *bitboard.Constants, w *Weights, playerRoadPieces bitboard.Bitmap, n Score) Score {
	var eval Score

	row := c.Edges[bitboard.North]
	for i := 0; i < c.Size; i++ {
		if playerRoadPieces&row != 0 {
			eval += w.RoadSlice / n
		}
		row = c.South(row)
	}

	col := c.Edges[bitboard.West]
	for i := 0; i < c.Size; i++ {
		if playerRoadPieces&col != 0 {
			eval += w.RoadSlice / n
		}
		col = c.East(col)
	}

	return eval
}

// capturedFlats scores a player's stacks by how many friendly flats
// lie buried beneath the top piece (hard flats) versus how many enemy
// pieces do (soft flats). The bit-peel from the low end of
// playerPieces is the canonical iteration order: every owned square
// is visited exactly once.
func capturedFlats(w *Weights, m *tak.Metadata, owner tak.Color, n Score) Score {
	playerPieces := m.PlayerPieces(owner)
	playerStacks := m.PlayerStacks(owner)
	opponentStacks := m.PlayerStacks(owner.Opponent())

	var hard, soft Score
	remaining := playerPieces
	size := m.Size
	for remaining != 0 {
		lsb := remaining & (-remaining)
		i := trailingZeros(lsb)
		x, y := i%size, i/size
		remaining &^= lsb

		own := popcount8(playerStacks[x][y])
		enemy := popcount8(opponentStacks[x][y])

		hard += Score(own) - 1
		soft += Score(enemy)
	}

	return hard*w.HardFlat/n + soft*w.SoftFlat/n
}

// placementThreats scores the empty squares that would complete a
// road for the player if filled with one of their road pieces.
func placementThreats(c *bitboard.Constants, w *Weights, playerRoadPieces, blocking bitboard.Bitmap, n Score) Score {
	horizontal, vertical := c.PlacementThreats(playerRoadPieces, blocking)
	count := Score(bitboard.Popcount(horizontal) + bitboard.Popcount(vertical))
	return count * w.PlacementThreat / n
}

func trailingZeros(b bitboard.Bitmap) int {
	n := 0
	for b&1 == 0 {
		b >>= 1
		n++
	}
	return n
}

func popcount8(b uint8) int {
	n := 0
	for b != 0 {
		b &= b - 1
		n++
	}
	return n
}
