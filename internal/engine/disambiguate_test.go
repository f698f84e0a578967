package engine

import (
	"testing"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/errors"
	"github.com/lgbarn/gnuchess-board-go/internal/parser"
	"github.com/lgbarn/gnuchess-board-go/internal/testutil"
)

// registryFromFEN builds a registry holding the pieces of a position.
func registryFromFEN(t *testing.T, fen string, side chess.Colour) *chess.Registry {
	t.Helper()
	reg := chess.NewRegistry()
	if _, err := SyncText(reg, testutil.DumpFromFEN(t, fen), side); err != nil {
		t.Fatalf("sync %q: %v", fen, err)
	}
	return reg
}

func TestFindSource(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		side chess.Colour
		move string
		want string
	}{
		{"double advance", testutil.StartFEN, chess.White, "e4", "e2"},
		{"single advance", testutil.StartFEN, chess.White, "e3", "e2"},
		{"black double advance", testutil.StartFEN, chess.Black, "d5", "d7"},
		{"black single advance", testutil.StartFEN, chess.Black, "h6", "h7"},
		{"pawn capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", chess.White, "exd5", "e4"},
		{"black pawn capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2", chess.Black, "dxe4", "d5"},
		{"pawn capture from the right", "4k3/8/8/8/8/2p5/1P1P4/4K3 w - - 0 1", chess.White, "dxc3", "d2"},
		{"pawn single advance past rank four", "4k3/8/8/4P3/8/8/8/4K3 w - - 0 1", chess.White, "e6", "e5"},
		{"knight returns destination", testutil.StartFEN, chess.White, "Nf3", "f3"},
		{"bishop returns destination", testutil.StartFEN, chess.Black, "Bxc3", "c3"},
		{"king returns destination", testutil.StartFEN, chess.White, "Kf1", "f1"},
		{"black castles kingside", testutil.StartFEN, chess.Black, "O-O", "g8"},
		{"white castles queenside", testutil.StartFEN, chess.White, "O-O-O", "c1"},
		{"rook up the file", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", chess.White, "Ra5", "a1"},
		{"rook along the rank", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", chess.White, "Rd1", "a1"},
		{"rook down the file", "R3k3/8/8/8/8/8/8/4K3 w - - 0 1", chess.White, "Ra3", "a8"},
		{"rook from the right", "4k3/8/8/8/8/8/8/4K2R w - - 0 1", chess.White, "Rg1", "h1"},
		{"black rook capture", "r3k3/8/8/8/P7/8/8/4K3 b - - 0 1", chess.Black, "Rxa4", "a8"},
		{"queen on a rank", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", chess.White, "Qa1", "d1"},
		{"queen on a diagonal", "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", chess.White, "Qh5", "d1"},
		{"black queen on a diagonal", "4k3/8/8/q7/8/8/8/4K3 b - - 0 1", chess.Black, "Qxe1", "a5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registryFromFEN(t, tt.fen, tt.side)
			m, err := parser.ParseMove(tt.move, tt.side)
			testutil.AssertNoError(t, err)
			got, err := FindSource(reg, m)
			testutil.AssertNoError(t, err)
			testutil.AssertSquare(t, got, tt.want, tt.move)
		})
	}
}

func TestFindSourceMisses(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		side chess.Colour
		move string
	}{
		{"pawn too far", testutil.StartFEN, chess.White, "e5"},
		{"no pawn on hinted file", testutil.StartFEN, chess.White, "axb5"},
		{"opponent pawn only", "4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", chess.White, "e3"},
		{"rook blocked by own pawn", "4k3/8/8/8/8/8/P7/R3K3 w - - 0 1", chess.White, "Ra5"},
		{"rook blocked by enemy piece", "4k3/8/8/8/8/8/8/R1n1K3 w - - 0 1", chess.White, "Rd1"},
		{"no rook at all", testutil.StartFEN, chess.White, "Rd4"},
		{"queen blocked", testutil.StartFEN, chess.White, "Qh5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registryFromFEN(t, tt.fen, tt.side)
			before := reg.SaveState()
			m, err := parser.ParseMove(tt.move, tt.side)
			testutil.AssertNoError(t, err)
			got, err := FindSource(reg, m)
			testutil.AssertErrorIs(t, err, errors.ErrDisambiguationMiss)
			testutil.AssertEqual(t, got, chess.NoSquare)
			testutil.AssertRegistryUnchanged(t, reg, before)
		})
	}
}

func TestFindSourceReserveQueen(t *testing.T) {
	// h7 is scanned before a1, so the a1 queen is the promoted one.
	reg := registryFromFEN(t, "4k3/7Q/8/8/8/8/8/Q3K3 w - - 0 1", chess.White)
	testutil.AssertSquare(t, reg.Piece(chess.White, chess.ReserveQueenSlot).Square, "a1")

	m, err := parser.ParseMove("Qd4", chess.White)
	testutil.AssertNoError(t, err)
	got, err := FindSource(reg, m)
	testutil.AssertNoError(t, err)
	testutil.AssertSquare(t, got, "a1")

	p, ok := reg.PieceAt(got)
	testutil.AssertTrue(t, ok && p.Reserve(), "piece at a1 = %v", p)
}

func TestFindSourceIsReadOnly(t *testing.T) {
	reg := chess.NewRegistry()
	before := reg.SaveState()
	for _, text := range []string{"e4", "Nf3", "Ra3", "Qd3", "O-O"} {
		m, err := parser.ParseMove(text, chess.White)
		testutil.AssertNoError(t, err)
		_, _ = FindSource(reg, m)
	}
	testutil.AssertRegistryUnchanged(t, reg, before)
}
