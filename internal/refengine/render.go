package refengine

import (
	"fmt"
	"strings"

	gochess "github.com/notnil/chess"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
)

var pieceKinds = map[gochess.PieceType]chess.Piece{
	gochess.Pawn:   chess.Pawn,
	gochess.Knight: chess.Knight,
	gochess.Bishop: chess.Bishop,
	gochess.Rook:   chess.Rook,
	gochess.Queen:  chess.Queen,
	gochess.King:   chess.King,
}

// Board renders the position described by fen as "show board" would.
func Board(fen string) (string, error) {
	opt, err := gochess.FEN(fen)
	if err != nil {
		return "", fmt.Errorf("refengine: %w", err)
	}
	var sb strings.Builder
	writeBoard(&sb, gochess.NewGame(opt).Position())
	return sb.String(), nil
}

// writeBoard prints the side to move and castling rights, then the ranks
// from 8 down to 1 as "c " cells.
func writeBoard(out *strings.Builder, pos *gochess.Position) {
	side := "white"
	if pos.Turn() == gochess.Black {
		side = "black"
	}
	fmt.Fprintf(out, "%s  %s\n", side, pos.CastleRights())

	board := pos.Board()
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			out.WriteByte(cellLetter(board.Piece(gochess.Square(rank*8 + file))))
			out.WriteByte(' ')
		}
		out.WriteByte('\n')
	}
}

func cellLetter(p gochess.Piece) byte {
	if p == gochess.NoPiece {
		return '.'
	}
	colour := chess.White
	if p.Color() == gochess.Black {
		colour = chess.Black
	}
	return pieceKinds[p.Type()].ColouredLetter(colour)
}

// writeGame prints the move list under a "White   Black" header, one move
// pair per line, followed by a blank line.
func writeGame(out *strings.Builder, game *gochess.Game) {
	out.WriteString("White   Black\n")
	positions := game.Positions()
	for i, m := range game.Moves() {
		san := gochess.AlgebraicNotation{}.Encode(positions[i], m)
		if i%2 == 0 {
			fmt.Fprintf(out, "%3d.   %-8s", i/2+1, san)
		} else {
			fmt.Fprintf(out, "%s\n", san)
		}
	}
	if len(game.Moves())%2 == 1 {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
}
