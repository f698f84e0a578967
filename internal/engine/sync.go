package engine

import (
	"fmt"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/errors"
)

// Assign maps every occupied square of grid to a roster slot. Squares are
// visited a8..h8, a7..h1 and each occupant takes the next unused slot for
// its kind. Slots left unused stay parked.
func Assign(grid *Grid) (chess.Placement, error) {
	var placement chess.Placement
	var used [2][chess.NumPieceValues]int

	for i, o := range grid {
		if o.Empty() {
			continue
		}
		slots := chess.SlotsFor(o.Piece)
		n := used[o.Colour][o.Piece]
		if n >= len(slots) {
			return chess.Placement{}, fmt.Errorf("%w: %w: %s %s on %s exceeds %d",
				errors.ErrMalformedBoardDump, errors.ErrRosterOverflow,
				o.Colour, o.Piece, chess.SquareFromIndex(i), len(slots))
		}
		placement[o.Colour][slots[n]] = chess.SquareFromIndex(i)
		used[o.Colour][o.Piece]++
	}
	return placement, nil
}

// SyncBoard moves every registry piece to match grid. On error the
// registry is left as it was.
func SyncBoard(reg *chess.Registry, grid *Grid) error {
	placement, err := Assign(grid)
	if err != nil {
		return err
	}
	reg.Apply(placement)
	return nil
}

// SyncText parses the dump for side out of engine output and applies it.
func SyncText(reg *chess.Registry, output string, side chess.Colour) (*Grid, error) {
	grid, err := ParseDump(output, side)
	if err != nil {
		return nil, err
	}
	if err := SyncBoard(reg, grid); err != nil {
		return nil, err
	}
	return grid, nil
}
