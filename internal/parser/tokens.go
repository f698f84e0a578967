// Package parser reads the engine's algebraic move notation.
package parser

import "github.com/lgbarn/gnuchess-board-go/internal/chess"

// EchoMarker introduces the engine's own move (robot moves and hints).
const EchoMarker = "My move is : "

// movingPiece returns the piece kind named by a leading piece letter.
// Lowercase 'b' is never a bishop here: a leading file letter is a pawn.
func movingPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B':
		return chess.Bishop
	}
	return chess.Empty
}

// targetPiece returns the piece kind named inside a capture clause. Here a
// lowercase 'b' can be a bishop because the caller checks that a file
// letter follows it.
func targetPiece(c byte) chess.Piece {
	if c == 'b' {
		return chess.Bishop
	}
	return movingPiece(c)
}

// isCapture returns true if c is the capture marker.
func isCapture(c byte) bool {
	return c == 'x'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0'
}

// isAnnotation returns true for trailing check and commentary characters.
func isAnnotation(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}
