package features

import (
	"github.com/tak-ai/evalcore/bitboard"
	"github.com/tak-ai/evalcore/tak"
)

// Vector is the fixed-length, named feature vector extracted from a
// position for the learned evaluator. Every entry is a raw count or
// 0/1 flag; no normalization happens at this layer.
type Vector struct {
	Names  []string
	Values []float64
}

// AsVector returns the feature values in the vector's canonical
// order.
func (v *Vector) AsVector() []float64 {
	return v.Values
}

// Extract builds the feature vector for state, from the perspective
// of the side to move (the "Player" block) versus the other side (the
// "Opponent" block).
func Extract(state tak.PositionView) *Vector {
	m := state.Metadata()
	n := m.Size
	c := bitboard.Precompute(n)

	mover := state.ToMove()
	opponent := mover.Opponent()

	values := make([]float64, 0, len(Names(n)))

	values = append(values, boolF(mover == tak.White))
	values = append(values, float64(flatCount(m, mover)-flatCount(m, opponent)))

	values = append(values, playerBlock(&c, m, mover, opponent)...)
	values = append(values, playerBlock(&c, m, opponent, mover)...)

	return &Vector{Names: Names(n), Values: values}
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func flatCount(m *tak.Metadata, c tak.Color) int {
	return bitboard.Popcount(m.PlayerPieces(c) & m.Flatstones)
}

// playerBlock computes the per-player features (26 on a 6x6 board)
// for player, with opponent naming the other side.
func playerBlock(c *bitboard.Constants, m *tak.Metadata, player, opponent tak.Color) []float64 {
	n := m.Size

	reserveFlats := float64(tak.StandardStones(n) - stonesOnBoard(m, player))
	reserveCaps := float64(tak.StandardCapstones(n) - bitboard.Popcount(m.PlayerPieces(player)&m.Capstones))

	var friendFlat, friendStanding, friendCap float64
	var captiveFlat, captiveStanding, captiveCap float64

	flatClassCounts := make(map[string]float64)
	capClassCounts := make(map[string]float64)

	playerPieces := m.PlayerPieces(player)
	playerStacks := m.PlayerStacks(player)
	opponentStacks := m.PlayerStacks(opponent)

	remaining := playerPieces
	for remaining != 0 {
		lsb := remaining & (-remaining)
		i := indexOf(lsb)
		remaining &^= lsb
		x, y := i%n, i/n

		own := float64(popcount8(playerStacks[x][y])) - 1
		enemy := float64(popcount8(opponentStacks[x][y]))

		switch {
		case m.Flatstones&lsb != 0:
			friendFlat += own
			captiveFlat += enemy
			flatClassCounts[symmetryClass(x, y, n)]++
		case m.StandingStones&lsb != 0:
			friendStanding += own
			captiveStanding += enemy
		case m.Capstones&lsb != 0:
			friendCap += own
			captiveCap += enemy
			capClassCounts[symmetryClass(x, y, n)]++
		}
	}

	classes := symmetryClasses(n)
	flatSym := make([]float64, len(classes))
	capSym := make([]float64, len(classes))
	for idx, cl := range classes {
		flatSym[idx] = flatClassCounts[cl]
		capSym[idx] = capClassCounts[cl]
	}

	playerRoad := m.RoadPieces() & playerPieces
	roadGroups := float64(len(c.Groups(playerRoad)))
	linesOccupied := float64(occupiedLines(c, playerRoad))

	playerStanding := m.StandingStones & playerPieces
	playerCaps := m.Capstones & playerPieces
	opponentFlats := m.Flatstones & m.PlayerPieces(opponent)

	enemyNextToStanding := float64(bitboard.Popcount(c.Dilate(playerStanding) & opponentFlats))
	enemyNextToCaps := float64(bitboard.Popcount(c.Dilate(playerCaps) & opponentFlats))

	allPieces := m.AllPieces()
	unblockedH, unblockedV := c.PlacementThreats(playerRoad, allPieces&^playerRoad)
	unblocked := float64(bitboard.Popcount(unblockedH) + bitboard.Popcount(unblockedV))

	opponentPieces := m.PlayerPieces(opponent)
	opponentStanding := m.StandingStones & opponentPieces
	softBlocking := (opponentPieces &^ opponentStanding) | playerStanding
	softH, softV := c.PlacementThreats(playerRoad, softBlocking)
	soft := float64(bitboard.Popcount(softH) + bitboard.Popcount(softV))

	out := make([]float64, 0, 26)
	out = append(out, reserveFlats, reserveCaps)
	out = append(out, friendFlat, friendStanding, friendCap)
	out = append(out, captiveFlat, captiveStanding, captiveCap)
	out = append(out, flatSym...)
	out = append(out, capSym...)
	out = append(out, roadGroups, linesOccupied, enemyNextToStanding, enemyNextToCaps, unblocked, soft)
	return out
}

func stonesOnBoard(m *tak.Metadata, c tak.Color) int {
	return m.PiecesOnBoard(c) - bitboard.Popcount(m.PlayerPieces(c)&m.Capstones)
}

func occupiedLines(c *bitboard.Constants, b bitboard.Bitmap) int {
	n := 0
	row := c.Edges[bitboard.North]
	for i := 0; i < c.Size; i++ {
		if b&row != 0 {
			n++
		}
		row = c.South(row)
	}
	col := c.Edges[bitboard.West]
	for i := 0; i < c.Size; i++ {
		if b&col != 0 {
			n++
		}
		col = c.East(col)
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

func indexOf(lsb bitboard.Bitmap) int {
	i := 0
	for lsb > 1 {
		lsb >>= 1
		i++
	}
	return i
}
