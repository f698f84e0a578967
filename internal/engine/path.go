package engine

import "github.com/lgbarn/gnuchess-board-go/internal/chess"

// direction is a unit step across the board.
type direction struct {
	dc, dr int
}

// rookDirections is the sweep order for straight lines: up the file, down
// the file, right along the rank, left along the rank.
var rookDirections = []direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// bishopDirections is the sweep order for diagonals.
var bishopDirections = []direction{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// sweep walks outward from dest in each direction and stops at the first
// occupied square. That square is the answer when it holds an own piece of
// the wanted kind; anything else blocks the direction.
func sweep(reg *chess.Registry, colour chess.Colour, kind chess.Piece, dest chess.Square, dirs []direction) chess.Square {
	for _, d := range dirs {
		for sq := dest.Offset(d.dc, d.dr); sq != chess.NoSquare; sq = sq.Offset(d.dc, d.dr) {
			p, ok := reg.PieceAt(sq)
			if !ok {
				continue
			}
			if p.Colour == colour && p.Kind == kind {
				return sq
			}
			break
		}
	}
	return chess.NoSquare
}
