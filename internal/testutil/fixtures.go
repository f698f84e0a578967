package testutil

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/refengine"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// DumpFromFEN returns "show board" output for the given position.
func DumpFromFEN(t *testing.T, fen string) string {
	t.Helper()
	dump, err := refengine.Board(fen)
	if err != nil {
		t.Fatalf("bad fixture position %q: %v", fen, err)
	}
	return dump
}

// StartingDump returns "show board" output for the starting position.
func StartingDump(t *testing.T) string {
	t.Helper()
	return DumpFromFEN(t, StartFEN)
}

// DumpAfter plays moves from the starting position and returns the board the
// engine shows afterwards.
func DumpAfter(t *testing.T, moves ...string) string {
	t.Helper()
	var script strings.Builder
	script.WriteString("force manual\n")
	for _, m := range moves {
		script.WriteString(m + "\n")
	}
	script.WriteString("show board\nquit\n")
	out := refengine.New().Run(script.String())
	if strings.Contains(out, "Illegal move") {
		t.Fatalf("fixture moves %v rejected:\n%s", moves, out)
	}
	return out
}

// AssertSquare fails unless got is the square named want ("e4", or "-" for
// no square).
func AssertSquare(t *testing.T, got chess.Square, want string, msgAndArgs ...interface{}) {
	t.Helper()
	if got.String() != want {
		fail(t, msgAndArgs, "square = %s, want %s", got, want)
	}
}

// AssertRegistryUnchanged fails if the registry no longer matches before.
func AssertRegistryUnchanged(t *testing.T, reg *chess.Registry, before chess.RegistryState) {
	t.Helper()
	if diff := cmp.Diff(before, reg.SaveState()); diff != "" {
		t.Errorf("registry changed (-before +after):\n%s", diff)
	}
}

// Occupied maps every occupied square of reg to its board letter.
func Occupied(reg *chess.Registry) map[string]string {
	squares := map[string]string{}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range reg.OnBoard(colour) {
			squares[p.Square.String()] = string(p.Kind.ColouredLetter(colour))
		}
	}
	return squares
}
