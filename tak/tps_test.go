package tak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTPSE1(t *testing.T) {
	state, err := ParseTPS("x6/x4,2,1/x2,2,2C,1,2/x2,2,x,1,1/x5,1/x6 1 6")
	require.NoError(t, err)

	assert.Equal(t, White, state.Mover)
	assert.Equal(t, 6, state.Meta.Size)

	whiteFlats := popcount8Bits(uint64(state.Meta.P1Pieces & state.Meta.Flatstones))
	blackFlats := popcount8Bits(uint64(state.Meta.P2Pieces & state.Meta.Flatstones))
	blackCaps := popcount8Bits(uint64(state.Meta.P2Pieces & state.Meta.Capstones))

	assert.Equal(t, 5, whiteFlats)
	assert.Equal(t, 4, blackFlats)
	assert.Equal(t, 1, blackCaps)
}

func TestParseTPSRejectsBadFieldCount(t *testing.T) {
	_, err := ParseTPS("x6/x6/x6/x6/x6/x6 1")
	assert.Error(t, err)
}

func TestParseTPSRejectsShortRow(t *testing.T) {
	_, err := ParseTPS("x5/x6/x6/x6/x6/x6 1 1")
	assert.Error(t, err)
}

func TestParseTPSPlyFromMoveNumber(t *testing.T) {
	white, err := ParseTPS("x6/x6/x6/x6/x6/x6 1 1")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), white.Ply)

	black, err := ParseTPS("x6/x6/x6/x6/x6/x6 2 1")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), black.Ply)
}

func popcount8Bits(b uint64) int {
	n := 0
	for b != 0 {
		b &= b - 1
		n++
	}
	return n
}
