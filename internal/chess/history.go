package chess

// History is the ordered log of accepted move strings. Its length is the
// only record of whose turn it is.
type History struct {
	moves []string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Append records an accepted move.
func (h *History) Append(move string) {
	h.moves = append(h.moves, move)
}

// Undo drops the last move and returns how many entries were removed.
func (h *History) Undo() int {
	return h.Trim(1)
}

// Remove drops the last two moves (a human move and the engine's reply)
// and returns how many entries were removed.
func (h *History) Remove() int {
	return h.Trim(2)
}

// Trim drops up to n moves from the end.
func (h *History) Trim(n int) int {
	if n > len(h.moves) {
		n = len(h.moves)
	}
	if n <= 0 {
		return 0
	}
	h.moves = h.moves[:len(h.moves)-n]
	return n
}

// Clear empties the history for a new game.
func (h *History) Clear() {
	h.moves = nil
}

// Restore replaces the history with a saved move list.
func (h *History) Restore(moves []string) {
	h.moves = append([]string(nil), moves...)
}

// Len returns the number of moves played.
func (h *History) Len() int {
	return len(h.moves)
}

// ToMove returns the side to move: White on even length.
func (h *History) ToMove() Colour {
	if len(h.moves)%2 == 0 {
		return White
	}
	return Black
}

// Moves returns a copy of the move list.
func (h *History) Moves() []string {
	return append([]string(nil), h.moves...)
}

// Last returns the most recent move.
func (h *History) Last() (string, bool) {
	if len(h.moves) == 0 {
		return "", false
	}
	return h.moves[len(h.moves)-1], true
}
