package refengine

import gochess "github.com/notnil/chess"

var pieceValue = map[gochess.PieceType]int{
	gochess.Pawn:   1,
	gochess.Knight: 3,
	gochess.Bishop: 3,
	gochess.Rook:   5,
	gochess.Queen:  9,
}

// chooseMove picks a move from moves. The choice only depends on the move
// order, so the same position always gets the same reply.
func chooseMove(pos *gochess.Position, moves []*gochess.Move, level Level) *gochess.Move {
	if len(moves) == 0 {
		return nil
	}
	if level == Easy {
		return moves[0]
	}

	var best *gochess.Move
	bestScore := -1
	for _, m := range moves {
		score := scoreMove(pos, m)
		if score > bestScore {
			best, bestScore = m, score
		}
	}
	return best
}

func scoreMove(pos *gochess.Position, m *gochess.Move) int {
	next := pos.Update(m)
	if m.HasTag(gochess.Check) && len(next.ValidMoves()) == 0 {
		return 1000
	}
	score := 0
	if m.HasTag(gochess.Capture) {
		victim := pos.Board().Piece(m.S2())
		if victim == gochess.NoPiece {
			score += 10 * pieceValue[gochess.Pawn]
		} else {
			score += 10 * pieceValue[victim.Type()]
		}
	}
	if m.HasTag(gochess.Check) {
		score += 5
	}
	return score
}
