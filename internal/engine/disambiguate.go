// Package engine interprets moves and board dumps against the piece registry:
// it finds which piece made a move and reconciles the registry with the
// engine's rendering of the board.
package engine

import (
	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/errors"
)

// FindSource returns the square from which the piece making move started.
// It only reads the registry. A miss yields NoSquare and an error wrapping
// ErrDisambiguationMiss; the move itself still stands.
//
// Knights, bishops and kings are not searched: their destination is
// returned as the source, so only the destination is highlighted.
func FindSource(reg *chess.Registry, move *chess.ParsedMove) (chess.Square, error) {
	dest := move.To()
	if dest == chess.NoSquare {
		return chess.NoSquare, errors.Wrapf(errors.ErrDisambiguationMiss, "move %q has no destination", move.Text)
	}

	var source chess.Square
	switch move.Piece {
	case chess.Pawn:
		source = findPawnSource(reg, move.Side, move.FromCol, dest)
	case chess.Rook:
		source = sweep(reg, move.Side, chess.Rook, dest, rookDirections)
	case chess.Queen:
		source = sweep(reg, move.Side, chess.Queen, dest, rookDirections)
		if source == chess.NoSquare {
			source = sweep(reg, move.Side, chess.Queen, dest, bishopDirections)
		}
	case chess.Knight, chess.Bishop, chess.King:
		return dest, nil
	}

	if source == chess.NoSquare {
		return chess.NoSquare, errors.Wrapf(errors.ErrDisambiguationMiss,
			"%s %s to %s", move.Side, move.Piece, dest)
	}
	return source, nil
}

// isOwn reports whether sq holds a piece of the given colour and kind.
func isOwn(reg *chess.Registry, colour chess.Colour, kind chess.Piece, sq chess.Square) bool {
	p, ok := reg.PieceAt(sq)
	return ok && p.Colour == colour && p.Kind == kind
}
