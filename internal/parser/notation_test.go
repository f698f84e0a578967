package parser

import (
	"testing"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/errors"
	"github.com/lgbarn/gnuchess-board-go/internal/testutil"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name string
		text string
		side chess.Colour
		want chess.ParsedMove
	}{
		{
			name: "pawn advance",
			text: "e4",
			side: chess.White,
			want: chess.ParsedMove{
				Text: "e4", Side: chess.White, Class: chess.PawnMove, Piece: chess.Pawn,
				FromCol: 'e', FromRank: '4', ToCol: 'e', ToRank: '4',
			},
		},
		{
			name: "knight capture",
			text: "Nxf3",
			side: chess.Black,
			want: chess.ParsedMove{
				Text: "Nxf3", Side: chess.Black, Class: chess.PieceMove, Piece: chess.Knight,
				Capture: true, CaptureTarget: chess.Pawn,
				FromCol: 'f', FromRank: '3', ToCol: 'f', ToRank: '3',
			},
		},
		{
			name: "queen capture with check",
			text: "Qxd7+",
			side: chess.White,
			want: chess.ParsedMove{
				Text: "Qxd7+", Side: chess.White, Class: chess.PieceMove, Piece: chess.Queen,
				Capture: true, CaptureTarget: chess.Pawn,
				FromCol: 'd', FromRank: '7', ToCol: 'd', ToRank: '7',
				CheckStatus: chess.Check,
			},
		},
		{
			name: "pawn capture keeps source file",
			text: "exd5",
			side: chess.White,
			want: chess.ParsedMove{
				Text: "exd5", Side: chess.White, Class: chess.PawnMove, Piece: chess.Pawn,
				Capture: true, CaptureTarget: chess.Pawn,
				FromCol: 'e', FromRank: '5', ToCol: 'd', ToRank: '5',
			},
		},
		{
			name: "file disambiguation",
			text: "Nbd7",
			side: chess.Black,
			want: chess.ParsedMove{
				Text: "Nbd7", Side: chess.Black, Class: chess.PieceMove, Piece: chess.Knight,
				FromCol: 'b', FromRank: '7', ToCol: 'd', ToRank: '7',
			},
		},
		{
			name: "rank disambiguation",
			text: "R1e2",
			side: chess.White,
			want: chess.ParsedMove{
				Text: "R1e2", Side: chess.White, Class: chess.PieceMove, Piece: chess.Rook,
				FromCol: 'e', FromRank: '1', ToCol: 'e', ToRank: '2',
			},
		},
		{
			name: "coordinate form",
			text: "e2e4",
			side: chess.White,
			want: chess.ParsedMove{
				Text: "e2e4", Side: chess.White, Class: chess.PawnMove, Piece: chess.Pawn,
				FromCol: 'e', FromRank: '2', ToCol: 'e', ToRank: '4',
			},
		},
		{
			name: "named capture target",
			text: "Bxnc6",
			side: chess.White,
			want: chess.ParsedMove{
				Text: "Bxnc6", Side: chess.White, Class: chess.PieceMove, Piece: chess.Bishop,
				Capture: true, CaptureTarget: chess.Knight,
				FromCol: 'c', FromRank: '6', ToCol: 'c', ToRank: '6',
			},
		},
		{
			name: "lowercase b in clause is a file",
			text: "Rxb7",
			side: chess.White,
			want: chess.ParsedMove{
				Text: "Rxb7", Side: chess.White, Class: chess.PieceMove, Piece: chess.Rook,
				Capture: true, CaptureTarget: chess.Pawn,
				FromCol: 'b', FromRank: '7', ToCol: 'b', ToRank: '7',
			},
		},
		{
			name: "white promotion",
			text: "e8Q",
			side: chess.White,
			want: chess.ParsedMove{
				Text: "e8Q", Side: chess.White, Class: chess.PawnMoveWithPromotion, Piece: chess.Pawn,
				FromCol: 'e', FromRank: '8', ToCol: 'e', ToRank: '8', Promotion: true,
			},
		},
		{
			name: "black capture promotion with equals and mate",
			text: "gxh1=Q#",
			side: chess.Black,
			want: chess.ParsedMove{
				Text: "gxh1=Q#", Side: chess.Black, Class: chess.PawnMoveWithPromotion, Piece: chess.Pawn,
				Capture: true, CaptureTarget: chess.Pawn,
				FromCol: 'g', FromRank: '1', ToCol: 'h', ToRank: '1', Promotion: true,
				CheckStatus: chess.Checkmate,
			},
		},
		{
			name: "double plus is mate",
			text: "Qh5++",
			side: chess.White,
			want: chess.ParsedMove{
				Text: "Qh5++", Side: chess.White, Class: chess.PieceMove, Piece: chess.Queen,
				FromCol: 'h', FromRank: '5', ToCol: 'h', ToRank: '5',
				CheckStatus: chess.Checkmate,
			},
		},
		{
			name: "lowercase piece letter",
			text: "nf6",
			side: chess.Black,
			want: chess.ParsedMove{
				Text: "nf6", Side: chess.Black, Class: chess.PieceMove, Piece: chess.Knight,
				FromCol: 'f', FromRank: '6', ToCol: 'f', ToRank: '6',
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.text, tt.side)
			testutil.AssertNoError(t, err, "ParseMove(%q)", tt.text)
			if got == nil {
				return
			}
			testutil.AssertEqual(t, *got, tt.want, "ParseMove(%q)", tt.text)
		})
	}
}

func TestParseCastling(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		ply       int
		wantClass chess.MoveClass
		wantFrom  string
		wantTo    string
	}{
		{"white kingside", "O-O", 0, chess.KingsideCastle, "e1", "g1"},
		{"black kingside", "O-O", 1, chess.KingsideCastle, "e8", "g8"},
		{"white queenside", "O-O-O", 2, chess.QueensideCastle, "e1", "c1"},
		{"black queenside with check", "O-O-O+", 3, chess.QueensideCastle, "e8", "c8"},
		{"zero digits", "0-0", 0, chess.KingsideCastle, "e1", "g1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseForHistory(tt.text, tt.ply)
			if err != nil {
				t.Fatalf("ParseForHistory(%q, %d) error = %v", tt.text, tt.ply, err)
			}
			if got.Piece != chess.King {
				t.Errorf("Piece = %v, want King", got.Piece)
			}
			if got.Class != tt.wantClass {
				t.Errorf("Class = %v, want %v", got.Class, tt.wantClass)
			}
			if !got.IsCastle() {
				t.Error("IsCastle() = false, want true")
			}
			testutil.AssertEqual(t, got.From().String(), tt.wantFrom, "From()")
			testutil.AssertEqual(t, got.To().String(), tt.wantTo, "To()")
		})
	}
}

func TestParseSideFollowsParity(t *testing.T) {
	even, err := ParseForHistory("e4", 4)
	testutil.AssertNoError(t, err)
	odd, err := ParseForHistory("e5", 5)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, even.Side, chess.White, "even ply side")
	testutil.AssertEqual(t, odd.Side, chess.Black, "odd ply side")
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
		side chess.Colour
	}{
		{"empty", "", chess.White},
		{"only annotations", "+#", chess.White},
		{"unknown leading character", "Zf3", chess.White},
		{"null move", "--", chess.White},
		{"truncated capture clause", "Nx", chess.White},
		{"capture clause without square", "exQ", chess.White},
		{"piece with no square", "N", chess.Black},
		{"file without rank", "Nb", chess.Black},
		{"underpromotion", "e8=N", chess.White},
		{"promotion off last rank", "e5Q", chess.White},
		{"promotion on wrong side's rank", "e8Q", chess.Black},
		{"trailing junk", "Nf3zz", chess.White},
		{"bad castling", "O-X", chess.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.text, tt.side)
			if err == nil {
				t.Fatalf("ParseMove(%q) = %+v, want error", tt.text, got)
			}
			if !errors.Is(err, errors.ErrMalformedNotation) {
				t.Errorf("ParseMove(%q) error = %v, want ErrMalformedNotation", tt.text, err)
			}
			var notationErr *errors.NotationError
			if !errors.As(err, &notationErr) {
				t.Fatalf("ParseMove(%q) error %T is not a NotationError", tt.text, err)
			}
			testutil.AssertEqual(t, notationErr.Move, tt.text)
		})
	}
}
