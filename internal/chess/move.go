package chess

// ParsedMove is the structured reading of one algebraic move string.
type ParsedMove struct {
	// The move text as received (e.g., "Nxf3", "e4", "O-O").
	Text string

	// Side making the move, taken from the move history parity.
	Side Colour

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The kind of piece being moved.
	Piece Piece

	// Capture is set when the text contains a capture clause.
	Capture bool

	// Kind of the captured piece; Pawn unless the clause names a piece.
	// Empty when the move is not a capture.
	CaptureTarget Piece

	// Source hint. After defaulting this is the destination wherever the
	// notation gives no hint.
	FromCol  Col
	FromRank Rank

	// Destination square.
	ToCol  Col
	ToRank Rank

	// Whether the pawn promotes (always to a queen).
	Promotion bool

	// Check or checkmate annotation carried by the text.
	CheckStatus CheckStatus
}

// From returns the source hint as a square, NoSquare if incomplete.
func (m *ParsedMove) From() Square {
	sq := NewSquare(m.FromCol, m.FromRank)
	if !sq.Valid() {
		return NoSquare
	}
	return sq
}

// To returns the destination square.
func (m *ParsedMove) To() Square {
	sq := NewSquare(m.ToCol, m.ToRank)
	if !sq.Valid() {
		return NoSquare
	}
	return sq
}

// IsCapture returns true if this move is a capture.
func (m *ParsedMove) IsCapture() bool {
	return m.Capture
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *ParsedMove) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m *ParsedMove) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}
