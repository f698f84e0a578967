package parser

import (
	"strings"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/errors"
)

// malformed builds the error returned for text outside the move grammar.
func malformed(text string, pos int, reason string) error {
	return &errors.NotationError{
		Err:    errors.ErrMalformedNotation,
		Move:   text,
		Pos:    pos,
		Reason: reason,
	}
}

// splitAnnotations separates trailing check and commentary characters
// from the move body.
func splitAnnotations(text string) (string, chess.CheckStatus) {
	end := len(text)
	for end > 0 && isAnnotation(text[end-1]) {
		end--
	}
	suffix := text[end:]

	status := chess.NoCheck
	switch {
	case strings.Contains(suffix, "#"), strings.Contains(suffix, "++"):
		status = chess.Checkmate
	case strings.Contains(suffix, "+"):
		status = chess.Check
	}
	return text[:end], status
}

// scanSquare reads an optional file letter followed by an optional rank
// digit starting at pos. Either part may be missing.
func scanSquare(s string, pos int) (chess.Col, chess.Rank, int) {
	var col chess.Col
	var rank chess.Rank
	if pos < len(s) && chess.IsCol(s[pos]) {
		col = chess.Col(s[pos])
		pos++
	}
	if pos < len(s) && chess.IsRank(s[pos]) {
		rank = chess.Rank(s[pos])
		pos++
	}
	return col, rank, pos
}

// parseCastle decodes O-O and O-O-O into a king move on the side's back rank.
func parseCastle(text, body string, side chess.Colour) (*chess.ParsedMove, error) {
	normalized := strings.ReplaceAll(body, "0", "O")

	move := &chess.ParsedMove{
		Text:     text,
		Side:     side,
		Piece:    chess.King,
		FromCol:  'e',
		FromRank: chess.HomeRank(side),
		ToRank:   chess.HomeRank(side),
	}
	switch normalized {
	case "O-O":
		move.Class = chess.KingsideCastle
		move.ToCol = 'g'
	case "O-O-O":
		move.Class = chess.QueensideCastle
		move.ToCol = 'c'
	default:
		return nil, malformed(text, 0, "bad castling")
	}
	return move, nil
}

// ParseMove decodes a move string for the given side. The side comes from
// the move history parity, never from the letter case of the text.
func ParseMove(text string, side chess.Colour) (*chess.ParsedMove, error) {
	body, checkStatus := splitAnnotations(strings.TrimSpace(text))
	if body == "" {
		return nil, malformed(text, 0, "empty move")
	}

	if isCastlingChar(body[0]) {
		move, err := parseCastle(text, body, side)
		if err != nil {
			return nil, err
		}
		move.CheckStatus = checkStatus
		return move, nil
	}

	move := &chess.ParsedMove{
		Text:        text,
		Side:        side,
		CheckStatus: checkStatus,
	}
	pos := 0

	// Make an initial distinction between pawn moves and piece moves
	if chess.IsCol(body[0]) {
		move.Class = chess.PawnMove
		move.Piece = chess.Pawn
		move.FromCol, move.FromRank, pos = scanSquare(body, 0)
	} else if piece := movingPiece(body[0]); piece != chess.Empty {
		move.Class = chess.PieceMove
		move.Piece = piece
		move.FromCol, move.FromRank, pos = scanSquare(body, 1)
	} else {
		return nil, malformed(text, 0, "unknown piece")
	}

	if pos < len(body) && isCapture(body[pos]) {
		move.Capture = true
		move.CaptureTarget = chess.Pawn
		pos++

		if pos+1 < len(body) && chess.IsCol(body[pos+1]) {
			if target := targetPiece(body[pos]); target != chess.Empty {
				move.CaptureTarget = target
				pos++
			}
		}

		start := pos
		move.ToCol, move.ToRank, pos = scanSquare(body, pos)
		if pos == start {
			return nil, malformed(text, pos, "capture clause has no square")
		}
	} else {
		move.ToCol, move.ToRank, pos = scanSquare(body, pos)
	}

	// Look for promotions
	if pos < len(body) && move.Piece == chess.Pawn {
		at := pos
		if body[pos] == '=' {
			pos++
		}
		if pos < len(body) && body[pos] == 'Q' {
			move.Promotion = true
			move.Class = chess.PawnMoveWithPromotion
			pos++
		} else {
			return nil, malformed(text, at, "only queen promotion is supported")
		}
	}

	if pos < len(body) {
		return nil, malformed(text, pos, "unexpected trailing text")
	}

	// Algebraic notation omits redundant coordinates: each side of the move
	// fills the other's gaps.
	if move.ToCol == 0 {
		move.ToCol = move.FromCol
	}
	if move.ToRank == 0 {
		move.ToRank = move.FromRank
	}
	if move.FromCol == 0 {
		move.FromCol = move.ToCol
	}
	if move.FromRank == 0 {
		move.FromRank = move.ToRank
	}

	if move.To() == chess.NoSquare {
		return nil, malformed(text, len(body), "no destination square")
	}
	if move.Promotion && move.ToRank != chess.PromotionRank(side) {
		return nil, malformed(text, len(body), "promotion off the last rank")
	}

	return move, nil
}

// ParseForHistory decodes a move for the side whose turn it is after
// ply moves have been played.
func ParseForHistory(text string, ply int) (*chess.ParsedMove, error) {
	side := chess.White
	if ply%2 == 1 {
		side = chess.Black
	}
	return ParseMove(text, side)
}
