package chess

import "fmt"

// RosterSize is the number of slots in each side's roster.
const RosterSize = 17

// ReserveQueenSlot is the roster slot of the extra queen that only enters
// play when a pawn promotes.
const ReserveQueenSlot = 16

// rosterLayout is the piece kind held by each roster slot. The first eight
// slots follow the back rank from the a-file to the h-file.
var rosterLayout = [RosterSize]Piece{
	Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook,
	Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn, Pawn,
	Queen,
}

// slotAssignment lists, for each kind, the slots that pieces of that kind
// occupy in first-seen order.
var slotAssignment = map[Piece][]int{
	Rook:   {0, 7},
	Knight: {1, 6},
	Bishop: {2, 5},
	Queen:  {3, ReserveQueenSlot},
	King:   {4},
	Pawn:   {8, 9, 10, 11, 12, 13, 14, 15},
}

// SlotsFor returns the roster slots available to a piece kind, in the order
// they are filled.
func SlotsFor(kind Piece) []int {
	return slotAssignment[kind]
}

// SlotKind returns the kind held by a roster slot.
func SlotKind(slot int) Piece {
	if slot < 0 || slot >= RosterSize {
		return Empty
	}
	return rosterLayout[slot]
}

// RosterPiece is one tracked piece: a fixed identity plus its current square.
type RosterPiece struct {
	Colour Colour
	Kind   Piece
	Slot   int
	Square Square
}

// OnBoard reports whether the piece currently stands on the board.
func (p RosterPiece) OnBoard() bool {
	return p.Square.Valid()
}

// Reserve reports whether this is the side's reserve queen.
func (p RosterPiece) Reserve() bool {
	return p.Slot == ReserveQueenSlot
}

// String returns e.g. "White Rook#7@h1".
func (p RosterPiece) String() string {
	return fmt.Sprintf("%s %s#%d@%s", p.Colour, p.Kind, p.Slot, p.Square)
}

// Roster is one side's ordered set of pieces.
type Roster [RosterSize]RosterPiece

// RegistryState captures every piece position for save/restore and for
// comparing registries in tests.
type RegistryState struct {
	White Roster
	Black Roster
}

// Registry holds the live position of every piece on both sides.
// It performs no locking; callers own it exclusively.
type Registry struct {
	rosters [2]Roster
}

// NewRegistry creates a registry set up in the standard starting position.
func NewRegistry() *Registry {
	r := &Registry{}
	r.SetupInitialPosition()
	return r
}

// SetupInitialPosition resets both rosters to the standard starting layout.
// The reserve queens start parked.
func (r *Registry) SetupInitialPosition() {
	for _, colour := range []Colour{White, Black} {
		roster := &r.rosters[colour]
		for slot := 0; slot < RosterSize; slot++ {
			roster[slot] = RosterPiece{Colour: colour, Kind: rosterLayout[slot], Slot: slot}
		}
		for col := 0; col < BoardSize; col++ {
			roster[col].Square = NewSquare(Col(ColBase+col), HomeRank(colour))
			roster[8+col].Square = NewSquare(Col(ColBase+col), PawnRank(colour))
		}
	}
}

// Piece returns the piece held in a roster slot.
func (r *Registry) Piece(colour Colour, slot int) RosterPiece {
	return r.rosters[colour][slot]
}

// Roster returns a copy of one side's roster.
func (r *Registry) Roster(colour Colour) Roster {
	return r.rosters[colour]
}

// PieceAt finds the piece standing on sq, searching White then Black.
func (r *Registry) PieceAt(sq Square) (RosterPiece, bool) {
	if !sq.Valid() {
		return RosterPiece{}, false
	}
	for _, colour := range []Colour{White, Black} {
		for _, p := range r.rosters[colour] {
			if p.Square == sq {
				return p, true
			}
		}
	}
	return RosterPiece{}, false
}

// OnBoard returns the pieces of one side currently on the board, in slot order.
func (r *Registry) OnBoard(colour Colour) []RosterPiece {
	var pieces []RosterPiece
	for _, p := range r.rosters[colour] {
		if p.OnBoard() {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Placement is a complete target square for every slot of both rosters.
// Slots left at NoSquare are parked off the board.
type Placement [2][RosterSize]Square

// Apply relocates every piece to its square in p at once. This is the only
// way pieces move; the board synchronizer builds the Placement.
func (r *Registry) Apply(p Placement) {
	for colour := range r.rosters {
		for slot := range r.rosters[colour] {
			r.rosters[colour][slot].Square = p[colour][slot]
		}
	}
}

// Copy creates a deep copy of the registry.
func (r *Registry) Copy() *Registry {
	n := &Registry{}
	*n = *r
	return n
}

// SaveState captures the current piece positions.
func (r *Registry) SaveState() RegistryState {
	return RegistryState{White: r.rosters[White], Black: r.rosters[Black]}
}

// RestoreState restores previously saved piece positions.
func (r *Registry) RestoreState(s RegistryState) {
	r.rosters[White] = s.White
	r.rosters[Black] = s.Black
}
