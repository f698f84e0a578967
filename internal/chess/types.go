// Package chess provides the core board vocabulary: colours, piece kinds,
// squares, the piece registry and the move history.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece kind.
type Piece int

const (
	Empty Piece = iota // Empty square or no piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// ColouredLetter returns the board letter for a piece of the given colour:
// uppercase for White, lowercase for Black.
func (p Piece) ColouredLetter(colour Colour) byte {
	l := p.Letter()
	if colour == Black && l >= 'A' && l <= 'Z' {
		return l + ('a' - 'A')
	}
	return l
}

// PieceFromLetter converts a board letter (PRNBQK / prnbqk) into a piece kind
// and colour. ok is false for anything else.
func PieceFromLetter(c byte) (piece Piece, colour Colour, ok bool) {
	colour = White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return Pawn, colour, true
	case 'N':
		return Knight, colour, true
	case 'B':
		return Bishop, colour, true
	case 'R':
		return Rook, colour, true
	case 'Q':
		return Queen, colour, true
	case 'K':
		return King, colour, true
	}
	return Empty, White, false
}

// MoveClass categorizes the moves the notation parser recognises.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	PieceMove
	KingsideCastle
	QueensideCastle
	UnknownMove
)

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// IsCol returns true if c is a file letter a-h.
func IsCol(c byte) bool {
	return c >= FirstCol && c <= LastCol
}

// IsRank returns true if c is a rank digit 1-8.
func IsRank(c byte) bool {
	return c >= FirstRank && c <= LastRank
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of the given side.
func HomeRank(colour Colour) Rank {
	if colour == White {
		return '1'
	}
	return '8'
}

// PawnRank returns the rank a side's pawns start on.
func PawnRank(colour Colour) Rank {
	if colour == White {
		return '2'
	}
	return '7'
}

// DoubleAdvanceRank returns the rank a pawn lands on after its two-square
// opening advance (the side's fourth rank).
func DoubleAdvanceRank(colour Colour) Rank {
	if colour == White {
		return '4'
	}
	return '5'
}

// PromotionRank returns the rank on which a side's pawns promote.
func PromotionRank(colour Colour) Rank {
	return HomeRank(colour.Opposite())
}
