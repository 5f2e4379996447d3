package tak

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tak-ai/evalcore/bitboard"
)

// cellRE matches one non-empty TPS cell: a run of stack digits (1 for
// white, 2 for black, bottom to top) with an optional trailing S or C
// naming the top piece's kind. No letter means the top is a flat.
var cellRE = regexp.MustCompile(`^([12]+)([SC]?)$`)

// ParseTPS reads a single TPS-like position string, e.g.
//
//	"x6/x4,2,1/x2,2,2C,1,2/x2,2,x,1,1/x5,1/x6 1 6"
//
// into a State. Rows run from rank N (north) down to rank 1 (south);
// within a row, cells run from file a (west) to the last file (east).
// The trailing "<mover> <move>" pair names the side to move (1 =
// white, 2 = black) and the PTN move number, from which ply count is
// derived (ply 2*(move-1), +1 if black is to move).
//
// ParseTPS exists to build fixtures for the evaluator's tests and the
// command-line tool; it has nothing to do with move legality, which
// is a rules engine's job.
func ParseTPS(s string) (*State, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 3 {
		return nil, fmt.Errorf("tak: bad TPS %q: want 3 space-separated fields", s)
	}
	board, moverField, moveField := fields[0], fields[1], fields[2]

	rows := strings.Split(board, "/")
	n := len(rows)
	if n < 3 || n > MaxSize {
		return nil, fmt.Errorf("tak: bad TPS %q: unsupported board size %d", s, n)
	}

	var meta Metadata
	meta.Size = n

	for rowIdx, row := range rows {
		y := n - 1 - rowIdx
		x := 0
		for _, cell := range strings.Split(row, ",") {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				return nil, fmt.Errorf("tak: bad TPS %q: empty cell", s)
			}
			if cell[0] == 'x' {
				count := 1
				if len(cell) > 1 {
					c, err := strconv.Atoi(cell[1:])
					if err != nil {
						return nil, fmt.Errorf("tak: bad TPS %q: bad empty-run %q", s, cell)
					}
					count = c
				}
				x += count
				continue
			}
			m := cellRE.FindStringSubmatch(cell)
			if m == nil {
				return nil, fmt.Errorf("tak: bad TPS %q: bad cell %q", s, cell)
			}
			if err := placeStack(&meta, n, x, y, m[1], m[2]); err != nil {
				return nil, fmt.Errorf("tak: bad TPS %q: %w", s, err)
			}
			x++
		}
		if x != n {
			return nil, fmt.Errorf("tak: bad TPS %q: row %d has %d columns, want %d", s, rowIdx, x, n)
		}
	}

	var mover Color
	switch moverField {
	case "1":
		mover = White
	case "2":
		mover = Black
	default:
		return nil, fmt.Errorf("tak: bad TPS %q: bad side to move %q", s, moverField)
	}

	move, err := strconv.Atoi(moveField)
	if err != nil || move < 1 {
		return nil, fmt.Errorf("tak: bad TPS %q: bad move number %q", s, moveField)
	}
	ply := uint32(2 * (move - 1))
	if mover == Black {
		ply++
	}

	return &State{
		Meta:  meta,
		Mover: mover,
		Ply:   ply,
	}, nil
}

// toFileX converts a west-to-east file index into the bitmap's x
// coordinate, where x grows toward the west edge.
func toFileX(n, file int) int {
	return n - 1 - file
}

func placeStack(meta *Metadata, n, file, y int, digits, modifier string) error {
	x := toFileX(n, file)
	if x < 0 || x >= n || y < 0 || y >= n {
		return fmt.Errorf("square out of range")
	}

	var whiteBits, blackBits uint8
	var topColor Color
	for i := 0; i < len(digits); i++ {
		switch digits[i] {
		case '1':
			whiteBits |= 1 << uint(i)
			topColor = White
		case '2':
			blackBits |= 1 << uint(i)
			topColor = Black
		}
	}
	meta.P1Stacks[x][y] = whiteBits
	meta.P2Stacks[x][y] = blackBits

	topKind := Flatstone
	switch modifier {
	case "S":
		topKind = StandingStone
	case "C":
		topKind = Capstone
	}

	sq := bitboard.Bitmap(1) << uint(y*n+x)
	switch topKind {
	case Flatstone:
		meta.Flatstones |= sq
	case StandingStone:
		meta.StandingStones |= sq
	case Capstone:
		meta.Capstones |= sq
	}
	if topColor == White {
		meta.P1Pieces |= sq
	} else {
		meta.P2Pieces |= sq
	}
	return nil
}
