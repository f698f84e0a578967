package chess

// Square is a board coordinate. The zero value is NoSquare, which stands both
// for "unknown" and for the off-board parking position of captured pieces.
type Square struct {
	Col  Col
	Rank Rank
}

// NoSquare is the unknown / off-board sentinel.
var NoSquare = Square{}

// NewSquare builds a square from file and rank characters.
func NewSquare(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// ParseSquare parses "e4" style text. ok is false when s is not a square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || !IsCol(s[0]) || !IsRank(s[1]) {
		return NoSquare, false
	}
	return Square{Col: Col(s[0]), Rank: Rank(s[1])}, true
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return IsCol(byte(s.Col)) && IsRank(byte(s.Rank))
}

// Index maps a square to 0..63, a8 = 0 and h1 = 63, the order in which the
// engine draws the board. Returns -1 for an invalid square.
func (s Square) Index() int {
	if !s.Valid() {
		return -1
	}
	return int(s.Col-ColBase) + BoardSize*(BoardSize-1-int(s.Rank-RankBase))
}

// SquareFromIndex is the inverse of Square.Index.
func SquareFromIndex(i int) Square {
	if i < 0 || i >= NumSquares {
		return NoSquare
	}
	return Square{
		Col:  Col(ColBase + i%BoardSize),
		Rank: Rank(RankBase + BoardSize - 1 - i/BoardSize),
	}
}

// Offset returns the square dc files and dr ranks away, or NoSquare when that
// falls off the board.
func (s Square) Offset(dc, dr int) Square {
	if !s.Valid() {
		return NoSquare
	}
	n := Square{Col: Col(int(s.Col) + dc), Rank: Rank(int(s.Rank) + dr)}
	if !n.Valid() {
		return NoSquare
	}
	return n
}

// String returns "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}
