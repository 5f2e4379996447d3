// Package bench measures evaluator throughput over synthetic
// positions. It carries no move generator: positions are randomly
// populated bitmaps, not reachable game states, so the numbers here
// bound evaluation cost in isolation from search.
package bench

import (
	"log"
	"math/rand"
	"time"

	"golang.org/x/net/context"

	"github.com/tak-ai/evalcore/ai"
	"github.com/tak-ai/evalcore/bitboard"
	"github.com/tak-ai/evalcore/tak"
)

// Stats accumulates one run's counters.
type Stats struct {
	Evaluated uint64
	Elapsed   time.Duration
}

// Config controls a benchmark run.
type Config struct {
	Size  int
	Seed  int64
	Debug int

	Weights *ai.Weights
}

// Run evaluates freshly generated random positions until ctx is done,
// returning throughput stats.
func Run(ctx context.Context, cfg Config) Stats {
	src := rand.New(rand.NewSource(cfg.Seed))
	weights := cfg.Weights
	if weights == nil {
		weights = &ai.DefaultWeights
	}

	var st Stats
	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			st.Elapsed = time.Since(start)
			return st
		default:
		}

		state := RandomState(src, cfg.Size)
		_ = ai.EvaluateWith(weights, state)
		st.Evaluated++

		if cfg.Debug > 0 && st.Evaluated%10000 == 0 {
			log.Printf("[bench] evaluated=%d elapsed=%s rate=%.0f/s",
				st.Evaluated, time.Since(start), float64(st.Evaluated)/time.Since(start).Seconds())
		}
	}
}

// RandomState builds a structurally plausible, but not necessarily
// legal or reachable, position of the given size: pieces are scattered
// at random, each square occupied with probability 0.4, so most
// squares are left empty.
func RandomState(src *rand.Rand, size int) *tak.State {
	m := tak.Metadata{Size: size}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if src.Float64() > 0.4 {
				continue
			}
			bit := bitboard.Bitmap(1) << uint(y*size+x)
			depth := 1 + src.Intn(3)

			var p1Stack, p2Stack uint8
			for i := 0; i < depth; i++ {
				if src.Intn(2) == 0 {
					p1Stack |= 1 << uint(i)
				} else {
					p2Stack |= 1 << uint(i)
				}
			}

			top := depth - 1
			color := tak.White
			if p1Stack&(1<<uint(top)) == 0 {
				color = tak.Black
				p2Stack |= 1 << uint(top)
			} else {
				p1Stack |= 1 << uint(top)
			}

			m.P1Stacks[x][y] = p1Stack
			m.P2Stacks[x][y] = p2Stack
			if color == tak.White {
				m.P1Pieces |= bit
			} else {
				m.P2Pieces |= bit
			}

			switch src.Intn(10) {
			case 0:
				m.Capstones |= bit
			case 1:
				m.StandingStones |= bit
			default:
				m.Flatstones |= bit
			}
		}
	}

	mover := tak.White
	if src.Intn(2) == 1 {
		mover = tak.Black
	}

	return &tak.State{
		Meta:  m,
		Mover: mover,
		Ply:   uint32(src.Intn(200)),
	}
}
