package ai

import (
	"github.com/tak-ai/evalcore/bitboard"
	"github.com/tak-ai/evalcore/tak"
)

// Evaluate scores a position from the side-to-move's perspective:
// positive means the position favors whoever moves next. It is pure,
// allocates no persistent state, and is safe to call concurrently on
// distinct or shared read-only PositionViews.
func Evaluate(state tak.PositionView) Score {
	return EvaluateWith(&DefaultWeights, state)
}

// EvaluateWith is Evaluate parameterized by an explicit weight table,
// letting callers tune or explain the evaluation without touching the
// kernels.
func EvaluateWith(w *Weights, state tak.PositionView) Score {
	if res := state.Resolution(); res.IsTerminal() {
		return terminalScore(res, state.ToMove(), state.PlyCount())
	}

	m := state.Metadata()
	c := bitboard.Precompute(m.Size)

	p1Eval := evaluatePlayer(&c, w, m, tak.White)
	p2Eval := evaluatePlayer(&c, w, m, tak.Black)

	if state.ToMove() == tak.White {
		return p1Eval - p2Eval
	}
	return p2Eval - p1Eval
}

// terminalScore encodes "prefer shorter wins, longer losses": a win
// for the side to move scores WIN minus the ply it was reached at, a
// loss scores LOSE plus that ply, and a draw scores ZERO minus it.
// The margin of a Resolution{Kind: FlatsWin} is deliberately never
// consulted; mate distance is the sole terminal signal.
func terminalScore(res tak.Resolution, mover tak.Color, ply uint32) Score {
	if res.Kind == tak.Draw {
		return Zero - Score(ply)
	}
	if res.Color == mover {
		return Win - Score(ply)
	}
	return Lose + Score(ply)
}

// evaluatePlayer sums every sub-feature kernel for one player, in a
// fixed order, from that player's own perspective (not the mover's:
// the caller applies the final sign flip).
func evaluatePlayer(c *bitboard.Constants, w *Weights, m *tak.Metadata, player tak.Color) Score {
	n := Score(m.Size)

	roadPieces := m.RoadPieces()
	playerPieces := m.PlayerPieces(player)
	playerRoadPieces := roadPieces & playerPieces

	allPieces := m.AllPieces()
	blocking := allPieces &^ playerRoadPieces

	var eval Score
	eval += material(w, m, playerPieces, n)
	eval += roadGroups(c, w, playerRoadPieces, n)
	eval += roadSlices(c, w, playerRoadPieces, n)
	eval += capturedFlats(w, m, player, n)
	eval += placementThreats(c, w, playerRoadPieces, blocking, n)

	return eval
}
