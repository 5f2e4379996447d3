package bench

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/context"
)

func TestRandomStateDisjointOwnership(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		state := RandomState(src, 6)
		m := state.Meta
		assert.Equal(t, uint64(0), uint64(m.P1Pieces&m.P2Pieces))
		assert.Equal(t, uint64(0), uint64(m.Flatstones&m.StandingStones))
		assert.Equal(t, uint64(0), uint64(m.StandingStones&m.Capstones))
		assert.Equal(t, uint64(0), uint64(m.Flatstones&m.Capstones))
	}
}

func TestRunRespectsDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	st := Run(ctx, Config{Size: 6, Seed: 1})
	assert.Greater(t, st.Evaluated, uint64(0))
}
