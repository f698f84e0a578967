package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/errors"
)

// MinDumpLength is the shortest board block accepted, measured from the
// newline that ends the banner line: eight rows of eight "c " cells plus
// their line breaks.
const MinDumpLength = 136

// EmptyCell marks an empty square in a board dump.
const EmptyCell = '.'

// Banner returns the text that opens the board block when side is to move.
func Banner(side chess.Colour) string {
	if side == chess.White {
		return "white  "
	}
	return "black  "
}

// Occupant is the content of one square of a parsed dump.
type Occupant struct {
	Colour chess.Colour
	Piece  chess.Piece
}

// Empty reports whether the square is unoccupied.
func (o Occupant) Empty() bool {
	return o.Piece == chess.Empty
}

// Grid is a parsed board dump, indexed by chess.Square.Index.
type Grid [chess.NumSquares]Occupant

// At returns the occupant of sq. Off-board squares are empty.
func (g *Grid) At(sq chess.Square) Occupant {
	i := sq.Index()
	if i < 0 {
		return Occupant{}
	}
	return g[i]
}

// Count returns how many pieces of the given colour and kind the grid holds.
func (g *Grid) Count(colour chess.Colour, kind chess.Piece) int {
	n := 0
	for _, o := range g {
		if o.Piece == kind && o.Colour == colour {
			n++
		}
	}
	return n
}

// String renders the grid in the engine's row layout, without a banner.
func (g *Grid) String() string {
	var sb strings.Builder
	for i, o := range g {
		c := byte(EmptyCell)
		if !o.Empty() {
			c = o.Piece.ColouredLetter(o.Colour)
		}
		sb.WriteByte(c)
		sb.WriteByte(' ')
		if i%chess.BoardSize == chess.BoardSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// LocateBoard finds the board block for side in engine output. The last
// banner wins, since a script may print the board more than once.
func LocateBoard(output string, side chess.Colour) (string, error) {
	banner := Banner(side)
	at := strings.LastIndex(output, banner)
	if at < 0 {
		return "", errors.Wrapf(errors.ErrMalformedBoardDump, "no %q banner", strings.TrimSpace(banner))
	}
	nl := strings.IndexByte(output[at:], '\n')
	if nl < 0 {
		return "", errors.Wrap(errors.ErrMalformedBoardDump, "banner line not terminated")
	}
	block := output[at+nl:]
	if len(block) < MinDumpLength {
		return "", errors.Wrapf(errors.ErrMalformedBoardDump,
			"board block is %d characters, need %d", len(block), MinDumpLength)
	}
	return block, nil
}

// ParseGrid reads eight rows of cells. Blank lines before the first row are
// skipped; anything after the eighth row is ignored. ParseError lines count
// board rows from rank 8.
func ParseGrid(block string) (*Grid, error) {
	var grid Grid
	lines := strings.Split(block, "\n")
	row := 0
	for _, line := range lines {
		if row == chess.BoardSize {
			break
		}
		line = strings.TrimRight(line, "\r")
		if row == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) < 2*chess.BoardSize-1 {
			return nil, &errors.ParseError{
				Err:      errors.ErrMalformedBoardDump,
				Line:     row + 1,
				Column:   len(line) + 1,
				Expected: "8 board cells",
				Got:      line,
			}
		}
		for j := 0; j < chess.BoardSize; j++ {
			c := line[2*j]
			if c == EmptyCell {
				continue
			}
			piece, colour, ok := chess.PieceFromLetter(c)
			if !ok {
				return nil, &errors.ParseError{
					Err:      errors.ErrMalformedBoardDump,
					Line:     row + 1,
					Column:   2*j + 1,
					Expected: "piece letter or '.'",
					Got:      string(c),
				}
			}
			grid[row*chess.BoardSize+j] = Occupant{Colour: colour, Piece: piece}
		}
		row++
	}
	if row < chess.BoardSize {
		return nil, errors.Wrapf(errors.ErrMalformedBoardDump, "board has %d rows, need %d", row, chess.BoardSize)
	}
	return &grid, nil
}

// ParseDump locates the board block for side in output and parses it.
func ParseDump(output string, side chess.Colour) (*Grid, error) {
	block, err := LocateBoard(output, side)
	if err != nil {
		return nil, err
	}
	grid, err := ParseGrid(block)
	if err != nil {
		return nil, fmt.Errorf("%s to move: %w", side, err)
	}
	return grid, nil
}
