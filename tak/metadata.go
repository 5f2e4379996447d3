package tak

import "github.com/tak-ai/evalcore/bitboard"

// MaxSize is the largest board size the bitmap substrate supports: an
// 8x8 board's 64 squares exactly fill a uint64.
const MaxSize = 8

// Metadata is the read-only projection of a position the evaluator
// consumes. Every bitmap lives in a Size*Size window of its word;
// bits outside that window are always zero. Stack arrays are sized to
// MaxSize regardless of Size so the type stays concrete without
// per-size generics; only the top-left Size*Size corner is live.
type Metadata struct {
	Size int

	Flatstones     bitboard.Bitmap
	StandingStones bitboard.Bitmap
	Capstones      bitboard.Bitmap

	P1Pieces bitboard.Bitmap
	P2Pieces bitboard.Bitmap

	// P1Stacks[x][y] and P2Stacks[x][y] are stack-composition words:
	// bit i is set iff the i-th piece from the bottom of the stack at
	// (x, y) belongs to that player. Popcount gives that player's
	// piece count in the stack, independent of which player owns the
	// square (owns the top piece).
	P1Stacks [MaxSize][MaxSize]uint8
	P2Stacks [MaxSize][MaxSize]uint8
}

// RoadPieces returns the road-contributing bitmap: flatstones and
// capstones, for either player.
func (m *Metadata) RoadPieces() bitboard.Bitmap {
	return m.Flatstones | m.Capstones
}

// AllPieces returns every occupied square, for either player.
func (m *Metadata) AllPieces() bitboard.Bitmap {
	return m.P1Pieces | m.P2Pieces
}

// PlayerPieces returns the top-piece ownership bitmap for c.
func (m *Metadata) PlayerPieces(c Color) bitboard.Bitmap {
	if c == White {
		return m.P1Pieces
	}
	return m.P2Pieces
}

// PlayerStacks returns the stack-composition array for c.
func (m *Metadata) PlayerStacks(c Color) *[MaxSize][MaxSize]uint8 {
	if c == White {
		return &m.P1Stacks
	}
	return &m.P2Stacks
}

// PositionView is the narrow interface the evaluator reads: a live
// game state snapshot owned by the rules engine, which this package
// never mutates.
type PositionView interface {
	ToMove() Color
	PlyCount() uint32
	Resolution() Resolution
	Metadata() *Metadata
}

// State is a concrete, self-contained PositionView. It's built either
// by a rules engine wrapping its live game state, or, for tests and
// tooling, by parsing a TPS string with ParseTPS.
type State struct {
	Meta     Metadata
	Mover    Color
	Ply      uint32
	Res      Resolution
	HalfKomi int32
}

func (s *State) ToMove() Color          { return s.Mover }
func (s *State) PlyCount() uint32       { return s.Ply }
func (s *State) Resolution() Resolution { return s.Res }
func (s *State) Metadata() *Metadata    { return &s.Meta }
