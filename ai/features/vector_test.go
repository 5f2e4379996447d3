package features

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tak-ai/evalcore/tak"
)

func TestSymmetryClassesSixByBoard(t *testing.T) {
	assert.Equal(t, []string{"a1", "b1", "c1", "b2", "c2", "c3"}, symmetryClasses(6))
}

func TestNamesLengthMatchesFeatureCount(t *testing.T) {
	names := Names(6)
	require.Len(t, names, 54)
	assert.Equal(t, "White to move", names[0])
	assert.Equal(t, "Flat count differential", names[1])
	assert.Equal(t, "Player: Reserve flatstones", names[2])
	assert.Equal(t, "Opponent: Reserve flatstones", names[28])
}

func TestExtractEmptyBoardIsAllReserves(t *testing.T) {
	state, err := tak.ParseTPS("x6/x6/x6/x6/x6/x6 1 1")
	require.NoError(t, err)

	v := Extract(state)
	require.Len(t, v.Values, 54)

	assert.Equal(t, 1.0, v.Values[0])
	assert.Equal(t, 0.0, v.Values[1])

	names := GatherFeatures(v)
	for _, n := range names {
		assert.True(t, n == "White to move" || strings.Contains(n, "Reserve"), n)
	}
}

func TestExtractE1FlatCountDifferential(t *testing.T) {
	state, err := tak.ParseTPS("x6/x4,2,1/x2,2,2C,1,2/x2,2,x,1,1/x5,1/x6 1 6")
	require.NoError(t, err)

	v := Extract(state)
	assert.Equal(t, 1.0, v.Values[1])
}
