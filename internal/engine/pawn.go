package engine

import "github.com/lgbarn/gnuchess-board-go/internal/chess"

// findPawnSource finds the source square of a pawn move. The rules are tried
// in a fixed order and the first square holding an own pawn wins:
// two-square advance, single advance, then diagonal capture from the left
// and then the right.
func findPawnSource(reg *chess.Registry, colour chess.Colour, fromCol chess.Col, dest chess.Square) chess.Square {
	back := -chess.ColourOffset(colour)

	// The notation names another file, so the pawn captured diagonally
	// from that file.
	if fromCol != dest.Col {
		sq := chess.NewSquare(fromCol, dest.Rank).Offset(0, back)
		if isOwn(reg, colour, chess.Pawn, sq) {
			return sq
		}
		return chess.NoSquare
	}

	// Double pawn push
	if dest.Rank == chess.DoubleAdvanceRank(colour) {
		sq := chess.NewSquare(dest.Col, chess.PawnRank(colour))
		if isOwn(reg, colour, chess.Pawn, sq) {
			return sq
		}
	}

	if sq := dest.Offset(0, back); isOwn(reg, colour, chess.Pawn, sq) {
		return sq
	}

	for _, dc := range []int{-1, 1} {
		if sq := dest.Offset(dc, back); isOwn(reg, colour, chess.Pawn, sq) {
			return sq
		}
	}

	return chess.NoSquare
}
